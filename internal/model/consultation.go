package model

import "time"

// ConsultationStatus is the admin-managed state of a consultation request.
type ConsultationStatus string

const (
	ConsultationPending   ConsultationStatus = "pending"
	ConsultationConfirmed ConsultationStatus = "confirmed"
	ConsultationCompleted ConsultationStatus = "completed"
	ConsultationCancelled ConsultationStatus = "cancelled"
)

// ConsultationStatuses lists every accepted consultation status.
var ConsultationStatuses = []ConsultationStatus{
	ConsultationPending, ConsultationConfirmed, ConsultationCompleted, ConsultationCancelled,
}

func (s ConsultationStatus) Valid() bool { return contains(ConsultationStatuses, s) }

// ConsultationRequest represents a consultation booking.
// EmailSent is true only when both the client confirmation and the admin
// notification were delivered.
type ConsultationRequest struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	Company         string             `json:"company"`
	ProjectType     string             `json:"project_type"`
	PreferredDate   Date               `json:"preferred_date"`
	PreferredTime   string             `json:"preferred_time"`
	AdditionalNotes string             `json:"additional_notes"`
	Status          ConsultationStatus `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	EmailSent       bool               `json:"email_sent"`
}

// ConsultationInput is the raw scheduling payload.
type ConsultationInput struct {
	Name            string `json:"name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email_address"`
	Phone           string `json:"phone" validate:"max=20"`
	Company         string `json:"company" validate:"max=100"`
	ProjectType     string `json:"project_type" validate:"required,max=50"`
	PreferredDate   string `json:"preferred_date" validate:"required,date"`
	PreferredTime   string `json:"preferred_time" validate:"required,max=20"`
	AdditionalNotes string `json:"additional_notes"`
}
