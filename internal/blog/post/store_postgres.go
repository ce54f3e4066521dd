package post

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

func postColumns() string {
	s := schema.BlogPost
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		s.ID, s.Title, s.Slug, s.SlugLatin, s.Content, s.Status, s.AuthorID, s.CreatedAt, s.UpdatedAt,
	)
}

func scanPost(scanner interface{ Scan(...any) error }) (*Post, error) {
	p := &Post{}
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.SlugLatin, &p.Content,
		&p.Status, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (repository *PostgresRepository) ListPosts(context context.Context, f Filter, limit, offset int) ([]*Post, int, error) {
	s := schema.BlogPost
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s IS NULL`, postColumns(), s.Table, s.DeletedAt)
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

	if f.AuthorID != "" {
		args = append(args, f.AuthorID)
		countArgs = append(countArgs, f.AuthorID)
		clause := fmt.Sprintf(" AND %s = $%d", s.AuthorID, len(args))
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
		return nil, 0, dberr.Wrap(err, "count_posts")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_posts")
	}
	defer rows.Close()

	var posts []*Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_post")
		}
		posts = append(posts, p)
	}

	return posts, total, nil
}

func (repository *PostgresRepository) GetPost(context context.Context, id string) (*Post, error) {
	s := schema.BlogPost
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		postColumns(), s.Table, s.ID, s.DeletedAt,
	)

	p, err := scanPost(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_post")
	}
	return p, nil
}

func (repository *PostgresRepository) GetPostBySlug(context context.Context, slug string) (*Post, error) {
	s := schema.BlogPost
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE (%s = $1 OR %s = $1) AND %s IS NULL`,
		postColumns(), s.Table, s.Slug, s.SlugLatin, s.DeletedAt,
	)

	p, err := scanPost(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_post_by_slug")
	}
	return p, nil
}

func (repository *PostgresRepository) CreatePost(context context.Context, p *Post) error {
	s := schema.BlogPost
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`,
		s.Table, s.ID, s.Title, s.Slug, s.SlugLatin, s.Content, s.Status, s.AuthorID,
		s.CreatedAt, s.UpdatedAt,
		s.CreatedAt, s.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.Title, p.Slug, p.SlugLatin, p.Content, p.Status, p.AuthorID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, "create_post")
}

func (repository *PostgresRepository) UpdatePost(context context.Context, p *Post) error {
	s := schema.BlogPost
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		s.Table, s.Title, s.Content, s.Status, s.UpdatedAt,
		s.ID, s.DeletedAt, s.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, p.ID, p.Title, p.Content, p.Status).Scan(&p.UpdatedAt)
	return dberr.Wrap(err, "update_post")
}

func (repository *PostgresRepository) UpdateStatus(context context.Context, id string, status string) error {
	s := schema.BlogPost
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		s.Table, s.Status, s.UpdatedAt, s.ID, s.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id, status)
	if err != nil {
		return dberr.Wrap(err, "moderate_post")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeletePost(context context.Context, id string) error {
	s := schema.BlogPost
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		s.Table, s.DeletedAt, s.ID, s.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_post")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SlugExists(context context.Context, slug string) (bool, error) {
	s := schema.BlogPost
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 OR %s = $1)`,
		s.Table, s.Slug, s.SlugLatin,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, slug).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "post_slug_exists")
	}
	return exists, nil
}
