package service

import (
	"context"

	"github.com/jevelon/backend/internal/model"
)

// SupportTicketService handles support ticket submissions and listing.
type SupportTicketService interface {
	Submit(ctx context.Context, in model.SupportTicketInput) (*model.SupportTicket, error)
	// List returns every ticket, most recent first.
	List(ctx context.Context) ([]*model.SupportTicket, error)
}
