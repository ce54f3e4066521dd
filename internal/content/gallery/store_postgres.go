package gallery

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rafidhsn/smriti/internal/platform/database/schema"
	"github.com/rafidhsn/smriti/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func imageColumns() string {
	s := schema.ContentGalleryImage
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		s.ID, s.Title, s.Caption, s.ImageURL, s.Status, s.SubmitterID, s.CreatedAt, s.UpdatedAt,
	)
}

func scanImage(scanner interface{ Scan(...any) error }) (*Image, error) {
	img := &Image{}
	err := scanner.Scan(
		&img.ID, &img.Title, &img.Caption, &img.ImageURL,
		&img.Status, &img.SubmitterID, &img.CreatedAt, &img.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (repository *PostgresRepository) ListImages(context context.Context, f Filter, limit, offset int) ([]*Image, int, error) {
	s := schema.ContentGalleryImage
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s IS NULL`, imageColumns(), s.Table, s.DeletedAt)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s IS NULL`, s.Table, s.DeletedAt)

	args := []any{}
	countArgs := []any{}

	if f.Status != "" {
		args = append(args, f.Status)
		countArgs = append(countArgs, f.Status)
		clause := fmt.Sprintf(" AND %s = $%d", s.Status, len(args))
		query += clause
		countQuery += clause
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $", s.CreatedAt) + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_gallery_images")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_gallery_images")
	}
	defer rows.Close()

	var images []*Image
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_gallery_image")
		}
		images = append(images, img)
	}

	return images, total, nil
}

func (repository *PostgresRepository) GetImage(context context.Context, id string) (*Image, error) {
	s := schema.ContentGalleryImage
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		imageColumns(), s.Table, s.ID, s.DeletedAt,
	)

	img, err := scanImage(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_gallery_image")
	}
	return img, nil
}

func (repository *PostgresRepository) CreateImage(context context.Context, img *Image) error {
	s := schema.ContentGalleryImage
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		s.Table, s.ID, s.Title, s.Caption, s.ImageURL, s.Status, s.SubmitterID, s.CreatedAt, s.UpdatedAt,
		s.CreatedAt, s.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		img.ID, img.Title, img.Caption, img.ImageURL, img.Status, img.SubmitterID,
	).Scan(&img.CreatedAt, &img.UpdatedAt)
	return dberr.Wrap(err, "create_gallery_image")
}

func (repository *PostgresRepository) UpdateStatus(context context.Context, id string, status string) error {
	s := schema.ContentGalleryImage
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		s.Table, s.Status, s.UpdatedAt, s.ID, s.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id, status)
	if err != nil {
		return dberr.Wrap(err, "moderate_gallery_image")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteImage(context context.Context, id string) error {
	s := schema.ContentGalleryImage
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		s.Table, s.DeletedAt, s.ID, s.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_gallery_image")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
