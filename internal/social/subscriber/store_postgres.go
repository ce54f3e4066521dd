package subscriber

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

func subscriberColumns() string {
	s := schema.SocialSubscriber
	return fmt.Sprintf("%s, %s, %s, %s", s.ID, s.Email, s.IsActive, s.CreatedAt)
}

func scanSubscriber(scanner interface{ Scan(...any) error }) (*Subscriber, error) {
	sub := &Subscriber{}
	err := scanner.Scan(&sub.ID, &sub.Email, &sub.IsActive, &sub.CreatedAt)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (repository *PostgresRepository) ListSubscribers(context context.Context, activeOnly bool, limit, offset int) ([]*Subscriber, int, error) {
	s := schema.SocialSubscriber

	where := "TRUE"
	if activeOnly {
		where = fmt.Sprintf("%s = TRUE", s.IsActive)
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s`, s.Table, where)
	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_subscribers")
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`, subscriberColumns(), s.Table, where, s.CreatedAt)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_subscribers")
	}
	defer rows.Close()

	var subscribers []*Subscriber
	for rows.Next() {
		sub, err := scanSubscriber(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_subscriber")
		}
		subscribers = append(subscribers, sub)
	}

	return subscribers, total, nil
}

func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*Subscriber, error) {
	s := schema.SocialSubscriber
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		subscriberColumns(), s.Table, s.Email,
	)

	sub, err := scanSubscriber(repository.db.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, "find_subscriber")
	}
	return sub, nil
}

func (repository *PostgresRepository) CreateSubscriber(context context.Context, sub *Subscriber) error {
	s := schema.SocialSubscriber
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s
	`,
		s.Table, s.ID, s.Email, s.IsActive, s.CreatedAt,
		s.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, sub.ID, sub.Email, sub.IsActive).Scan(&sub.CreatedAt)
	return dberr.Wrap(err, "create_subscriber")
}

func (repository *PostgresRepository) SetActive(context context.Context, email string, active bool) error {
	s := schema.SocialSubscriber
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		s.Table, s.IsActive, s.Email,
	)

	cmd, err := repository.db.Exec(context, query, email, active)
	if err != nil {
		return dberr.Wrap(err, "update_subscriber")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
