package tribute

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

func tributeColumns() string {
	s := schema.SocialTribute
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
		s.ID, s.AuthorName, s.AuthorID, s.Body, s.Status, s.CreatedAt, s.UpdatedAt,
	)
}

func scanTribute(scanner interface{ Scan(...any) error }) (*Tribute, error) {
	t := &Tribute{}
	err := scanner.Scan(&t.ID, &t.AuthorName, &t.AuthorID, &t.Body, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (repository *PostgresRepository) ListTributes(context context.Context, f Filter, limit, offset int) ([]*Tribute, int, error) {
	s := schema.SocialTribute

	where := fmt.Sprintf("%s IS NULL", s.DeletedAt)
	args := []any{}
	if f.Status != "" {
		args = append(args, string(f.Status))
		where += fmt.Sprintf(" AND %s = $%d", s.Status, len(args))
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s`, s.Table, where)
	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_tributes")
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s
		ORDER BY %s DESC
		LIMIT $%d OFFSET $%d
	`, tributeColumns(), s.Table, where, s.CreatedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_tributes")
	}
	defer rows.Close()

	var tributes []*Tribute
	for rows.Next() {
		t, err := scanTribute(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_tribute")
		}
		tributes = append(tributes, t)
	}

	return tributes, total, nil
}

func (repository *PostgresRepository) CreateTribute(context context.Context, t *Tribute) error {
	s := schema.SocialTribute
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s
	`,
		s.Table, s.ID, s.AuthorName, s.AuthorID, s.Body, s.Status, s.CreatedAt, s.UpdatedAt,
		s.CreatedAt, s.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		t.ID, t.AuthorName, t.AuthorID, t.Body, string(t.Status),
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	return dberr.Wrap(err, "create_tribute")
}

func (repository *PostgresRepository) UpdateStatus(context context.Context, id string, status string) error {
	s := schema.SocialTribute
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		s.Table, s.Status, s.UpdatedAt, s.ID, s.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id, status)
	if err != nil {
		return dberr.Wrap(err, "moderate_tribute")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteTribute(context context.Context, id string) error {
	s := schema.SocialTribute
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		s.Table, s.DeletedAt, s.ID, s.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_tribute")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
