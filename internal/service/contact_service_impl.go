package service

import (
	"context"
	"fmt"

	"github.com/jevelon/backend/internal/model"
	"github.com/jevelon/backend/internal/repository"
	"github.com/jevelon/backend/internal/validation"
)

type contactServiceImpl struct {
	repo      repository.ContactRepository
	validator *validation.Validator
	notifier  Notifier
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository, v *validation.Validator, n Notifier) ContactService {
	return &contactServiceImpl{repo: repo, validator: v, notifier: n}
}

func (s *contactServiceImpl) Submit(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error) {
	msg, err := s.validator.Contact(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("store contact message: %w", err)
	}

	out := s.notifier.NotifyContact(ctx, msg)
	msg.EmailSent = out.Delivered
	recordFlag(ctx, "contact_message", msg.ID, msg.EmailSent, s.repo.MarkEmailSent)
	return msg, nil
}
