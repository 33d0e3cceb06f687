package service

import (
	"context"
	"fmt"

	"github.com/jevelon/backend/internal/model"
	"github.com/jevelon/backend/internal/repository"
	"github.com/jevelon/backend/internal/validation"
)

type supportTicketServiceImpl struct {
	repo      repository.SupportTicketRepository
	validator *validation.Validator
	notifier  Notifier
}

// NewSupportTicketService creates a SupportTicketService backed by the given repository.
func NewSupportTicketService(repo repository.SupportTicketRepository, v *validation.Validator, n Notifier) SupportTicketService {
	return &supportTicketServiceImpl{repo: repo, validator: v, notifier: n}
}

func (s *supportTicketServiceImpl) Submit(ctx context.Context, in model.SupportTicketInput) (*model.SupportTicket, error) {
	ticket, err := s.validator.SupportTicket(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("store support ticket: %w", err)
	}

	out := s.notifier.NotifySupportTicket(ctx, ticket)
	ticket.EmailSent = out.Delivered
	recordFlag(ctx, "support_ticket", ticket.ID, ticket.EmailSent, s.repo.MarkEmailSent)
	return ticket, nil
}

func (s *supportTicketServiceImpl) List(ctx context.Context) ([]*model.SupportTicket, error) {
	tickets, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list support tickets: %w", err)
	}
	if tickets == nil {
		tickets = []*model.SupportTicket{}
	}
	return tickets, nil
}
