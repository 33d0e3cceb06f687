package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jevelon/backend/internal/model"
)

// PgSupportTicketRepository is the PostgreSQL implementation of SupportTicketRepository.
type PgSupportTicketRepository struct {
	pool *pgxpool.Pool
}

// NewPgSupportTicketRepository creates a PgSupportTicketRepository backed by the given pool.
func NewPgSupportTicketRepository(pool *pgxpool.Pool) *PgSupportTicketRepository {
	return &PgSupportTicketRepository{pool: pool}
}

var _ SupportTicketRepository = (*PgSupportTicketRepository)(nil)

const ticketSelectCols = `id, name, email, priority, category, subject, message, status, created_at, updated_at, email_sent`

func scanTicket(scan func(...any) error) (*model.SupportTicket, error) {
	var t model.SupportTicket
	if err := scan(&t.ID, &t.Name, &t.Email, &t.Priority, &t.Category, &t.Subject, &t.Message,
		&t.Status, &t.CreatedAt, &t.UpdatedAt, &t.EmailSent); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a new support_tickets row.
func (r *PgSupportTicketRepository) Create(ctx context.Context, t *model.SupportTicket) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO support_tickets (name, email, priority, category, subject, message, status, email_sent)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		t.Name, t.Email, string(t.Priority), string(t.Category), t.Subject, t.Message, string(t.Status), t.EmailSent,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert support ticket: %w", err)
	}
	return nil
}

func (r *PgSupportTicketRepository) FindByID(ctx context.Context, id string) (*model.SupportTicket, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+ticketSelectCols+` FROM support_tickets WHERE id = $1`, id)
	t, err := scanTicket(row.Scan)
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

// List returns all tickets ordered by created_at DESC.
func (r *PgSupportTicketRepository) List(ctx context.Context) ([]*model.SupportTicket, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+ticketSelectCols+` FROM support_tickets ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list support tickets: %w", err)
	}
	defer rows.Close()

	tickets := []*model.SupportTicket{}
	for rows.Next() {
		t, err := scanTicket(rows.Scan)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *PgSupportTicketRepository) MarkEmailSent(ctx context.Context, id string, sent bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE support_tickets SET email_sent = $2, updated_at = NOW() WHERE id = $1`, id, sent)
	if err != nil {
		return fmt.Errorf("update support ticket %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
