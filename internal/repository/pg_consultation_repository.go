package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jevelon/backend/internal/model"
)

// PgConsultationRepository is the PostgreSQL implementation of ConsultationRepository.
type PgConsultationRepository struct {
	pool *pgxpool.Pool
}

// NewPgConsultationRepository creates a PgConsultationRepository backed by the given pool.
func NewPgConsultationRepository(pool *pgxpool.Pool) *PgConsultationRepository {
	return &PgConsultationRepository{pool: pool}
}

var _ ConsultationRepository = (*PgConsultationRepository)(nil)

// Create inserts a new consultation_requests row. Optional text columns are
// stored as empty strings, never NULL.
func (r *PgConsultationRepository) Create(ctx context.Context, c *model.ConsultationRequest) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO consultation_requests
		   (name, email, phone, company, project_type, preferred_date, preferred_time, additional_notes, status, email_sent)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at`,
		c.Name, c.Email, c.Phone, c.Company, c.ProjectType, c.PreferredDate.Time,
		c.PreferredTime, c.AdditionalNotes, string(c.Status), c.EmailSent,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert consultation request: %w", err)
	}
	return nil
}

func (r *PgConsultationRepository) FindByID(ctx context.Context, id string) (*model.ConsultationRequest, error) {
	var c model.ConsultationRequest
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, company, project_type, preferred_date, preferred_time,
		        additional_notes, status, created_at, email_sent
		 FROM consultation_requests WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.ProjectType, &c.PreferredDate.Time,
		&c.PreferredTime, &c.AdditionalNotes, &c.Status, &c.CreatedAt, &c.EmailSent)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *PgConsultationRepository) MarkEmailSent(ctx context.Context, id string, sent bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE consultation_requests SET email_sent = $2 WHERE id = $1`, id, sent)
	if err != nil {
		return fmt.Errorf("update consultation request %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
