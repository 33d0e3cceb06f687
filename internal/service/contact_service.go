package service

import (
	"context"

	"github.com/jevelon/backend/internal/model"
)

// ContactService handles contact form submissions.
type ContactService interface {
	// Submit validates in, stores it, notifies the admin and records
	// whether the notification went out. Invalid input returns a
	// *model.ValidationError and stores nothing.
	Submit(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error)
}
