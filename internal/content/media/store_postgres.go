package media

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

func mediaColumns() string {
	s := schema.ContentMedia
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		s.ID, s.Kind, s.Title, s.Slug, s.SlugLatin, s.Description,
		s.SourceURL, s.DurationSec, s.CreatedAt, s.UpdatedAt,
	)
}

func scanMedia(scanner interface{ Scan(...any) error }) (*Media, error) {
	m := &Media{}
	err := scanner.Scan(
		&m.ID, &m.Kind, &m.Title, &m.Slug, &m.SlugLatin, &m.Description,
		&m.SourceURL, &m.DurationSec, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (repository *PostgresRepository) ListMedia(context context.Context, f Filter, limit, offset int) ([]*Media, int, error) {
	s := schema.ContentMedia
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s IS NULL`, mediaColumns(), s.Table, s.DeletedAt)
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
		return nil, 0, dberr.Wrap(err, "count_media")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_media")
	}
	defer rows.Close()

	var items []*Media
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_media")
		}
		items = append(items, m)
	}

	return items, total, nil
}

func (repository *PostgresRepository) GetMediaBySlug(context context.Context, slug string) (*Media, error) {
	s := schema.ContentMedia
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE (%s = $1 OR %s = $1) AND %s IS NULL`,
		mediaColumns(), s.Table, s.Slug, s.SlugLatin, s.DeletedAt,
	)

	m, err := scanMedia(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_media_by_slug")
	}
	return m, nil
}

func (repository *PostgresRepository) CreateMedia(context context.Context, m *Media) error {
	s := schema.ContentMedia
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s
	`,
		s.Table, s.ID, s.Kind, s.Title, s.Slug, s.SlugLatin, s.Description,
		s.SourceURL, s.DurationSec, s.CreatedAt, s.UpdatedAt,
		s.CreatedAt, s.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		m.ID, m.Kind, m.Title, m.Slug, m.SlugLatin, m.Description, m.SourceURL, m.DurationSec,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	return dberr.Wrap(err, "create_media")
}

func (repository *PostgresRepository) UpdateMedia(context context.Context, m *Media) error {
	s := schema.ContentMedia
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		s.Table, s.Kind, s.Title, s.Description, s.SourceURL, s.DurationSec, s.UpdatedAt,
		s.ID, s.DeletedAt, s.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		m.ID, m.Kind, m.Title, m.Description, m.SourceURL, m.DurationSec,
	).Scan(&m.UpdatedAt)
	return dberr.Wrap(err, "update_media")
}

func (repository *PostgresRepository) DeleteMedia(context context.Context, id string) error {
	s := schema.ContentMedia
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		s.Table, s.DeletedAt, s.ID, s.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_media")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SlugExists(context context.Context, slug string) (bool, error) {
	s := schema.ContentMedia
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 OR %s = $1)`,
		s.Table, s.Slug, s.SlugLatin,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, slug).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "media_slug_exists")
	}
	return exists, nil
}
