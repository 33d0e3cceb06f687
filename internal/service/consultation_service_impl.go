package service

import (
	"context"
	"fmt"

	"github.com/jevelon/backend/internal/model"
	"github.com/jevelon/backend/internal/notify"
	"github.com/jevelon/backend/internal/repository"
	"github.com/jevelon/backend/internal/validation"
)

type consultationServiceImpl struct {
	repo      repository.ConsultationRepository
	validator *validation.Validator
	notifier  Notifier
}

// NewConsultationService creates a ConsultationService backed by the given repository.
func NewConsultationService(repo repository.ConsultationRepository, v *validation.Validator, n Notifier) ConsultationService {
	return &consultationServiceImpl{repo: repo, validator: v, notifier: n}
}

func (s *consultationServiceImpl) Schedule(ctx context.Context, in model.ConsultationInput) (*model.ConsultationRequest, error) {
	req, err := s.validator.Consultation(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("store consultation request: %w", err)
	}

	client := s.notifier.ConfirmConsultation(ctx, req)
	admin := s.notifier.NotifyConsultation(ctx, req)
	req.EmailSent = notify.AllDelivered(client, admin)
	recordFlag(ctx, "consultation_request", req.ID, req.EmailSent, s.repo.MarkEmailSent)
	return req, nil
}
