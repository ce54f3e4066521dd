package writing

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

func writingColumns() string {
	s := schema.ContentWriting
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		s.ID, s.Kind, s.Title, s.Slug, s.SlugLatin, s.Body,
		s.Year, s.Collection, s.IsPublished, s.CreatedAt, s.UpdatedAt,
	)
}

func scanWriting(scanner interface{ Scan(...any) error }) (*Writing, error) {
	w := &Writing{}
	err := scanner.Scan(
		&w.ID, &w.Kind, &w.Title, &w.Slug, &w.SlugLatin, &w.Body,
		&w.Year, &w.Collection, &w.IsPublished, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (repository *PostgresRepository) ListWritings(context context.Context, f Filter, limit, offset int) ([]*Writing, int, error) {
	s := schema.ContentWriting
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s IS NULL`, writingColumns(), s.Table, s.DeletedAt)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s IS NULL`, s.Table, s.DeletedAt)

	args := []any{}
	countArgs := []any{}

	if f.Kind != "" {
		args = append(args, f.Kind)
		countArgs = append(countArgs, f.Kind)
		clause := fmt.Sprintf(" AND %s = $%d", s.Kind, len(args))
		query += clause
		countQuery += clause
	}

	if f.PublishedOnly {
		clause := fmt.Sprintf(" AND %s = TRUE", s.IsPublished)
		query += clause
		countQuery += clause
	}

	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		countArgs = append(countArgs, "%"+f.Query+"%")
		clause := fmt.Sprintf(" AND %s ILIKE $%d", s.Title, len(args))
		query += clause
		countQuery += clause
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $", s.CreatedAt) + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_writings")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_writings")
	}
	defer rows.Close()

	var writings []*Writing
	for rows.Next() {
		w, err := scanWriting(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_writing")
		}
		writings = append(writings, w)
	}

	return writings, total, nil
}

func (repository *PostgresRepository) GetWriting(context context.Context, id string) (*Writing, error) {
	s := schema.ContentWriting
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		writingColumns(), s.Table, s.ID, s.DeletedAt,
	)

	w, err := scanWriting(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_writing")
	}
	return w, nil
}

// GetWritingBySlug matches either the Bengali or the transliterated slug.
func (repository *PostgresRepository) GetWritingBySlug(context context.Context, slug string) (*Writing, error) {
	s := schema.ContentWriting
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE (%s = $1 OR %s = $1) AND %s IS NULL`,
		writingColumns(), s.Table, s.Slug, s.SlugLatin, s.DeletedAt,
	)

	w, err := scanWriting(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_writing_by_slug")
	}
	return w, nil
}

func (repository *PostgresRepository) CreateWriting(context context.Context, w *Writing) error {
	s := schema.ContentWriting
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s, %s
	`,
		s.Table, s.ID, s.Kind, s.Title, s.Slug, s.SlugLatin, s.Body,
		s.Year, s.Collection, s.IsPublished, s.CreatedAt, s.UpdatedAt,
		s.CreatedAt, s.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		w.ID, w.Kind, w.Title, w.Slug, w.SlugLatin, w.Body, w.Year, w.Collection, w.IsPublished,
	).Scan(&w.CreatedAt, &w.UpdatedAt)
	return dberr.Wrap(err, "create_writing")
}

func (repository *PostgresRepository) UpdateWriting(context context.Context, w *Writing) error {
	s := schema.ContentWriting
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		s.Table, s.Kind, s.Title, s.Body, s.Year, s.Collection, s.IsPublished, s.UpdatedAt,
		s.ID, s.DeletedAt, s.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		w.ID, w.Kind, w.Title, w.Body, w.Year, w.Collection, w.IsPublished,
	).Scan(&w.UpdatedAt)
	return dberr.Wrap(err, "update_writing")
}

func (repository *PostgresRepository) DeleteWriting(context context.Context, id string) error {
	s := schema.ContentWriting
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		s.Table, s.DeletedAt, s.ID, s.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_writing")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// SlugExists probes both slug columns, including soft-deleted rows so a
// deleted writing's URL is never silently reassigned.
func (repository *PostgresRepository) SlugExists(context context.Context, slug string) (bool, error) {
	s := schema.ContentWriting
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 OR %s = $1)`,
		s.Table, s.Slug, s.SlugLatin,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, slug).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "writing_slug_exists")
	}
	return exists, nil
}
