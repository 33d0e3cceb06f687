package model

import "time"

// ContactMessage represents a message submitted via the contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	EmailSent bool      `json:"email_sent"`
}

// ContactInput is the raw contact form payload.
type ContactInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email_address"`
	Service string `json:"service" validate:"required,max=50"`
	Message string `json:"message" validate:"required"`
}
