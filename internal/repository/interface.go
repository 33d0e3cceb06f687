package repository

import (
	"context"

	"github.com/jevelon/backend/internal/model"
)

// DB is satisfied by anything that can report connection liveness.
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository persists contact form messages.
type ContactRepository interface {
	// Create inserts msg and fills ID and CreatedAt from the database.
	Create(ctx context.Context, msg *model.ContactMessage) error
	FindByID(ctx context.Context, id string) (*model.ContactMessage, error)
	MarkEmailSent(ctx context.Context, id string, sent bool) error
}

// SupportTicketRepository persists support tickets.
type SupportTicketRepository interface {
	// Create inserts t and fills ID, CreatedAt and UpdatedAt from the database.
	Create(ctx context.Context, t *model.SupportTicket) error
	FindByID(ctx context.Context, id string) (*model.SupportTicket, error)
	// List returns every ticket, most recent first.
	List(ctx context.Context) ([]*model.SupportTicket, error)
	// MarkEmailSent stores the flag and refreshes updated_at.
	MarkEmailSent(ctx context.Context, id string, sent bool) error
}

// ConsultationRepository persists consultation requests.
type ConsultationRepository interface {
	// Create inserts c and fills ID and CreatedAt from the database.
	Create(ctx context.Context, c *model.ConsultationRequest) error
	FindByID(ctx context.Context, id string) (*model.ConsultationRequest, error)
	MarkEmailSent(ctx context.Context, id string, sent bool) error
}

// AdminUserRepository persists operator accounts.
type AdminUserRepository interface {
	SuperuserExists(ctx context.Context) (bool, error)
	Create(ctx context.Context, u *model.AdminUser) error
}
