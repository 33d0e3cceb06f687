package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jevelon/backend/internal/model"
	"github.com/jevelon/backend/internal/notify"
	"github.com/jevelon/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockContactRepository
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	mu        sync.Mutex
	seq       int
	created   []*model.ContactMessage
	flags     map[string]bool
	createErr error
	markErr   error
}

func (m *mockContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.seq++
	msg.ID = fmt.Sprintf("contact-%d", m.seq)
	m.created = append(m.created, msg)
	return nil
}

func (m *mockContactRepository) FindByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	return nil, repository.ErrNotFound
}

func (m *mockContactRepository) MarkEmailSent(ctx context.Context, id string, sent bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.markErr != nil {
		return m.markErr
	}
	if m.flags == nil {
		m.flags = map[string]bool{}
	}
	m.flags[id] = sent
	return nil
}

// ---------------------------------------------------------------------------
// mockSupportTicketRepository
// ---------------------------------------------------------------------------

type mockSupportTicketRepository struct {
	created   []*model.SupportTicket
	flags     map[string]bool
	createErr error
	markErr   error
	listFunc  func(ctx context.Context) ([]*model.SupportTicket, error)
}

func (m *mockSupportTicketRepository) Create(ctx context.Context, t *model.SupportTicket) error {
	if m.createErr != nil {
		return m.createErr
	}
	t.ID = fmt.Sprintf("ticket-%d", len(m.created)+1)
	m.created = append(m.created, t)
	return nil
}

func (m *mockSupportTicketRepository) FindByID(ctx context.Context, id string) (*model.SupportTicket, error) {
	return nil, repository.ErrNotFound
}

func (m *mockSupportTicketRepository) List(ctx context.Context) ([]*model.SupportTicket, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockSupportTicketRepository) MarkEmailSent(ctx context.Context, id string, sent bool) error {
	if m.markErr != nil {
		return m.markErr
	}
	if m.flags == nil {
		m.flags = map[string]bool{}
	}
	m.flags[id] = sent
	return nil
}

// ---------------------------------------------------------------------------
// mockConsultationRepository
// ---------------------------------------------------------------------------

type mockConsultationRepository struct {
	created   []*model.ConsultationRequest
	flags     map[string]bool
	createErr error
}

func (m *mockConsultationRepository) Create(ctx context.Context, c *model.ConsultationRequest) error {
	if m.createErr != nil {
		return m.createErr
	}
	c.ID = fmt.Sprintf("consultation-%d", len(m.created)+1)
	m.created = append(m.created, c)
	return nil
}

func (m *mockConsultationRepository) FindByID(ctx context.Context, id string) (*model.ConsultationRequest, error) {
	return nil, repository.ErrNotFound
}

func (m *mockConsultationRepository) MarkEmailSent(ctx context.Context, id string, sent bool) error {
	if m.flags == nil {
		m.flags = map[string]bool{}
	}
	m.flags[id] = sent
	return nil
}

// ---------------------------------------------------------------------------
// mockNotifier
// ---------------------------------------------------------------------------

var errMailDown = errors.New("mail transport unavailable")

type mockNotifier struct {
	mu    sync.Mutex
	calls []string
	// fail names the methods whose outcome is undelivered.
	fail map[string]bool
}

func (m *mockNotifier) outcome(method, recipient, id string) notify.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, method)
	if m.fail[method] {
		return notify.Outcome{Recipient: recipient, Template: method, EntityID: id, Err: errMailDown}
	}
	return notify.Outcome{Recipient: recipient, Template: method, EntityID: id, Delivered: true}
}

func (m *mockNotifier) NotifyContact(ctx context.Context, c *model.ContactMessage) notify.Outcome {
	return m.outcome("NotifyContact", "admin", c.ID)
}

func (m *mockNotifier) NotifySupportTicket(ctx context.Context, t *model.SupportTicket) notify.Outcome {
	return m.outcome("NotifySupportTicket", "admin", t.ID)
}

func (m *mockNotifier) ConfirmConsultation(ctx context.Context, c *model.ConsultationRequest) notify.Outcome {
	return m.outcome("ConfirmConsultation", c.Email, c.ID)
}

func (m *mockNotifier) NotifyConsultation(ctx context.Context, c *model.ConsultationRequest) notify.Outcome {
	return m.outcome("NotifyConsultation", "admin", c.ID)
}
