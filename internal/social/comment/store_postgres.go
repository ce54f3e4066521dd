package comment

import (
	"context"
	"fmt"

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

func commentColumns() string {
	s := schema.SocialComment
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s",
		s.ID, s.WritingID, s.PostID, s.AuthorID, s.Body, s.CreatedAt,
	)
}

func scanComment(scanner interface{ Scan(...any) error }) (*Comment, error) {
	c := &Comment{}
	err := scanner.Scan(&c.ID, &c.WritingID, &c.PostID, &c.AuthorID, &c.Body, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (repository *PostgresRepository) listByParent(context context.Context, parentColumn, parentID string, limit, offset int) ([]*Comment, int, error) {
	s := schema.SocialComment
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1 AND %s IS NULL
		ORDER BY %s ASC
		LIMIT $2 OFFSET $3
	`, commentColumns(), s.Table, parentColumn, s.DeletedAt, s.CreatedAt)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1 AND %s IS NULL`,
		s.Table, parentColumn, s.DeletedAt)

	var total int
	if err := repository.db.QueryRow(context, countQuery, parentID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_comments")
	}

	rows, err := repository.db.Query(context, query, parentID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	var comments []*Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, c)
	}

	return comments, total, nil
}

func (repository *PostgresRepository) ListByWriting(context context.Context, writingID string, limit, offset int) ([]*Comment, int, error) {
	return repository.listByParent(context, schema.SocialComment.WritingID, writingID, limit, offset)
}

func (repository *PostgresRepository) ListByPost(context context.Context, postID string, limit, offset int) ([]*Comment, int, error) {
	return repository.listByParent(context, schema.SocialComment.PostID, postID, limit, offset)
}

func (repository *PostgresRepository) GetComment(context context.Context, id string) (*Comment, error) {
	s := schema.SocialComment
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		commentColumns(), s.Table, s.ID, s.DeletedAt,
	)

	c, err := scanComment(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_comment")
	}
	return c, nil
}

func (repository *PostgresRepository) CreateComment(context context.Context, c *Comment) error {
	s := schema.SocialComment
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s
	`,
		s.Table, s.ID, s.WritingID, s.PostID, s.AuthorID, s.Body, s.CreatedAt,
		s.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ID, c.WritingID, c.PostID, c.AuthorID, c.Body,
	).Scan(&c.CreatedAt)
	return dberr.Wrap(err, "create_comment")
}

func (repository *PostgresRepository) DeleteComment(context context.Context, id string) error {
	s := schema.SocialComment
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		s.Table, s.DeletedAt, s.ID, s.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_comment")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
