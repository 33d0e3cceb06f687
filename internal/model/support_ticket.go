package model

import "time"

// Priority is the urgency a submitter attaches to a support ticket.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Priorities lists every Priority in display order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// DefaultPriority applies when a submission omits priority.
const DefaultPriority = PriorityMedium

// Valid reports whether p is one of Priorities.
func (p Priority) Valid() bool { return contains(Priorities, p) }

// Label is the human readable form used in notification mails.
func (p Priority) Label() string { return label(string(p)) }

// TicketCategory classifies a support ticket.
type TicketCategory string

const (
	CategoryBug         TicketCategory = "bug"
	CategoryFeature     TicketCategory = "feature"
	CategoryPerformance TicketCategory = "performance"
	CategorySecurity    TicketCategory = "security"
	CategoryOther       TicketCategory = "other"
)

// TicketCategories lists every TicketCategory in display order.
var TicketCategories = []TicketCategory{CategoryBug, CategoryFeature, CategoryPerformance, CategorySecurity, CategoryOther}

// DefaultCategory applies when a submission omits category.
const DefaultCategory = CategoryOther

// Valid reports whether c is a known category.
func (c TicketCategory) Valid() bool { return contains(TicketCategories, c) }

// Label returns the display name of c.
func (c TicketCategory) Label() string { return label(string(c)) }

// TicketStatus is the admin-managed state of a ticket. Any value may follow
// any other; only membership is checked.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

var TicketStatuses = []TicketStatus{TicketOpen, TicketInProgress, TicketResolved, TicketClosed}

func (s TicketStatus) Valid() bool { return contains(TicketStatuses, s) }

// SupportTicket represents a ticket submitted via the support form.
type SupportTicket struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Priority  Priority       `json:"priority"`
	Category  TicketCategory `json:"category"`
	Subject   string         `json:"subject"`
	Message   string         `json:"message"`
	Status    TicketStatus   `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	EmailSent bool           `json:"email_sent"`
}

// SupportTicketInput is the raw support form payload. Status is not accepted
// from submitters.
type SupportTicketInput struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Email    string  `json:"email" validate:"required,email_address"`
	Priority *string `json:"priority" validate:"omitnil,priority"`
	Category *string `json:"category" validate:"omitnil,ticket_category"`
	Subject  string  `json:"subject" validate:"required,max=200"`
	Message  string  `json:"message" validate:"required"`
}
