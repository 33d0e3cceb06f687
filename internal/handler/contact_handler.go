package handler

import (
	"net/http"

	"github.com/jevelon/backend/internal/logging"
	"github.com/jevelon/backend/internal/model"
	"github.com/jevelon/backend/internal/service"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
	debug          bool
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService, debug bool) *ContactHandler {
	return &ContactHandler{contactService: contactService, debug: debug}
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact/submit/.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in model.ContactInput
	if fe := decodeInput(w, r, &in); fe != nil {
		writeFieldErrors(w, fe)
		return
	}

	msg, err := h.contactService.Submit(r.Context(), in)
	if err != nil {
		writeSubmitError(w, r, h.debug, err)
		return
	}

	logging.FromContext(r.Context()).Info("contact message stored",
		"id", msg.ID, "email_sent", msg.EmailSent)
	writeJSON(w, http.StatusCreated, submitResponse{
		Success: true,
		Message: "Contact form submitted successfully",
	})
}
