package book

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

func bookColumns() string {
	s := schema.ContentBook
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		s.ID, s.Title, s.Slug, s.SlugLatin, s.Description,
		s.CoverURL, s.Publisher, s.Year, s.CreatedAt, s.UpdatedAt,
	)
}

func scanBook(scanner interface{ Scan(...any) error }) (*Book, error) {
	b := &Book{}
	err := scanner.Scan(
		&b.ID, &b.Title, &b.Slug, &b.SlugLatin, &b.Description,
		&b.CoverURL, &b.Publisher, &b.Year, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (repository *PostgresRepository) ListBooks(context context.Context, f Filter, limit, offset int) ([]*Book, int, error) {
	s := schema.ContentBook
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s IS NULL`, bookColumns(), s.Table, s.DeletedAt)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s IS NULL`, s.Table, s.DeletedAt)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		countArgs = append(countArgs, "%"+f.Query+"%")
		clause := fmt.Sprintf(" AND %s ILIKE $%d", s.Title, len(args))
		query += clause
		countQuery += clause
	}

	query += fmt.Sprintf(" ORDER BY %s DESC NULLS LAST LIMIT $", s.Year) + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_books")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	var books []*Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_book")
		}
		books = append(books, b)
	}

	return books, total, nil
}

func (repository *PostgresRepository) GetBookBySlug(context context.Context, slug string) (*Book, error) {
	s := schema.ContentBook
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE (%s = $1 OR %s = $1) AND %s IS NULL`,
		bookColumns(), s.Table, s.Slug, s.SlugLatin, s.DeletedAt,
	)

	b, err := scanBook(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_book_by_slug")
	}
	return b, nil
}

func (repository *PostgresRepository) CreateBook(context context.Context, b *Book) error {
	s := schema.ContentBook
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s
	`,
		s.Table, s.ID, s.Title, s.Slug, s.SlugLatin, s.Description,
		s.CoverURL, s.Publisher, s.Year, s.CreatedAt, s.UpdatedAt,
		s.CreatedAt, s.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		b.ID, b.Title, b.Slug, b.SlugLatin, b.Description, b.CoverURL, b.Publisher, b.Year,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	return dberr.Wrap(err, "create_book")
}

func (repository *PostgresRepository) UpdateBook(context context.Context, b *Book) error {
	s := schema.ContentBook
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		s.Table, s.Title, s.Description, s.CoverURL, s.Publisher, s.Year, s.UpdatedAt,
		s.ID, s.DeletedAt, s.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		b.ID, b.Title, b.Description, b.CoverURL, b.Publisher, b.Year,
	).Scan(&b.UpdatedAt)
	return dberr.Wrap(err, "update_book")
}

func (repository *PostgresRepository) DeleteBook(context context.Context, id string) error {
	s := schema.ContentBook
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		s.Table, s.DeletedAt, s.ID, s.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_book")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SlugExists(context context.Context, slug string) (bool, error) {
	s := schema.ContentBook
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 OR %s = $1)`,
		s.Table, s.Slug, s.SlugLatin,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, slug).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "book_slug_exists")
	}
	return exists, nil
}
