package notify

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/jevelon/backend/internal/logging"
	"github.com/jevelon/backend/internal/model"
)

// Template names, reported in Outcome and logs.
const (
	TemplateContactAdmin      = "contact_admin"
	TemplateSupportAdmin      = "support_admin"
	TemplateConsultationAdmin = "consultation_admin"
	TemplateConsultationGuest = "consultation_client"
)

var templates = template.Must(template.New("mail").Funcs(template.FuncMap{
	"orDefault": func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	},
}).Parse(`
{{define "contact_admin"}}New contact form submission:

Contact ID: {{.Record.ID}}
Name: {{.Record.Name}}
Email: {{.Record.Email}}
Service: {{.Record.Service}}
Message: {{.Record.Message}}

Submitted at: {{.Record.CreatedAt.Format "2006-01-02 15:04:05 MST"}}
{{end}}
{{define "support_admin"}}New support ticket submitted:

Ticket ID: {{.Record.ID}}
Name: {{.Record.Name}}
Email: {{.Record.Email}}
Priority: {{.Record.Priority.Label}}
Category: {{.Record.Category.Label}}
Subject: {{.Record.Subject}}
Message: {{.Record.Message}}

Please respond within the appropriate timeframe based on priority.
{{end}}
{{define "consultation_client"}}Dear {{.Record.Name}},

Your consultation has been successfully scheduled!

Date: {{.Record.PreferredDate}}
Time: {{.Record.PreferredTime}}
Project Type: {{.Record.ProjectType}}

We'll send you a calendar invite shortly with meeting details.

If you need to reschedule, please contact us at {{.AdminEmail}}

Best regards,
{{.Brand}} Team
{{end}}
{{define "consultation_admin"}}New consultation request received:

Consultation ID: {{.Record.ID}}
Name: {{.Record.Name}}
Email: {{.Record.Email}}
Phone: {{orDefault .Record.Phone "Not provided"}}
Company: {{orDefault .Record.Company "Not provided"}}
Project Type: {{.Record.ProjectType}}
Preferred Date: {{.Record.PreferredDate}}
Preferred Time: {{.Record.PreferredTime}}
Notes: {{orDefault .Record.AdditionalNotes "None"}}

Please follow up with the client.
{{end}}
`))

type templateData struct {
	Record     any
	Brand      string
	AdminEmail string
}

func (n *Notifier) render(name string, record any) (string, error) {
	var buf bytes.Buffer
	err := templates.ExecuteTemplate(&buf, name, templateData{
		Record:     record,
		Brand:      n.brandName,
		AdminEmail: n.adminEmail,
	})
	if err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func (n *Notifier) sendTemplate(ctx context.Context, name, recipient, subject, entityID string, record any) Outcome {
	body, err := n.render(name, record)
	if err != nil {
		logging.FromContext(ctx).Warn("notification failed",
			slog.String("recipient", recipient),
			slog.String("template", name),
			slog.String("entity_id", entityID),
			"error", err,
		)
		return Outcome{Recipient: recipient, Template: name, EntityID: entityID, Err: err}
	}
	return n.Send(ctx, Message{
		Template:  name,
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
		EntityID:  entityID,
	})
}

// NotifyContact sends the admin notification for a contact message.
func (n *Notifier) NotifyContact(ctx context.Context, c *model.ContactMessage) Outcome {
	subject := "New Contact Form Submission - " + n.brandName
	return n.sendTemplate(ctx, TemplateContactAdmin, n.adminEmail, subject, c.ID, c)
}

// NotifySupportTicket sends the admin notification for a support ticket.
func (n *Notifier) NotifySupportTicket(ctx context.Context, t *model.SupportTicket) Outcome {
	subject := fmt.Sprintf("New Support Ticket #%s - %s", t.ID, t.Subject)
	return n.sendTemplate(ctx, TemplateSupportAdmin, n.adminEmail, subject, t.ID, t)
}

// ConfirmConsultation sends the confirmation mail to the requester.
func (n *Notifier) ConfirmConsultation(ctx context.Context, c *model.ConsultationRequest) Outcome {
	subject := "Consultation Confirmed - " + n.brandName
	return n.sendTemplate(ctx, TemplateConsultationGuest, c.Email, subject, c.ID, c)
}

// NotifyConsultation sends the admin notification for a consultation request.
func (n *Notifier) NotifyConsultation(ctx context.Context, c *model.ConsultationRequest) Outcome {
	subject := "New Consultation Request - " + n.brandName
	return n.sendTemplate(ctx, TemplateConsultationAdmin, n.adminEmail, subject, c.ID, c)
}
