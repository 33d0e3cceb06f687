package service

import (
	"context"

	"github.com/jevelon/backend/internal/model"
)

// ConsultationService handles consultation booking requests.
type ConsultationService interface {
	// Schedule stores the request, then sends the client confirmation and
	// the admin notification in that order. EmailSent is true only when
	// both mails were delivered.
	Schedule(ctx context.Context, in model.ConsultationInput) (*model.ConsultationRequest, error)
}
