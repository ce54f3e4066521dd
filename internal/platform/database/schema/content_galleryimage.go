package schema

// ContentGalleryImageTable represents the 'content.galleryimage' table
type ContentGalleryImageTable struct {
	Table       string
	ID          string
	Title       string
	Caption     string
	ImageURL    string
	Status      string
	SubmitterID string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// ContentGalleryImage is the schema definition for content.galleryimage
var ContentGalleryImage = ContentGalleryImageTable{
	Table:       "content.galleryimage",
	ID:          "id",
	Title:       "title",
	Caption:     "caption",
	ImageURL:    "imageurl",
	Status:      "status",
	SubmitterID: "submitterid",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}
