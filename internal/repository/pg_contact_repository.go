package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jevelon/backend/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Create inserts a new contact_messages row and populates msg.ID and
// msg.CreatedAt from the RETURNING clause.
func (r *PgContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, service, message, email_sent)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		msg.Name, msg.Email, msg.Service, msg.Message, msg.EmailSent,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

func (r *PgContactRepository) FindByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	var m model.ContactMessage
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, service, message, created_at, email_sent
		 FROM contact_messages WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Service, &m.Message, &m.CreatedAt, &m.EmailSent)
	if err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

func (r *PgContactRepository) MarkEmailSent(ctx context.Context, id string, sent bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_messages SET email_sent = $2 WHERE id = $1`, id, sent)
	if err != nil {
		return fmt.Errorf("update contact message %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
