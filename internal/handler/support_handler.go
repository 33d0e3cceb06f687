package handler

import (
	"net/http"

	"github.com/jevelon/backend/internal/logging"
	"github.com/jevelon/backend/internal/model"
	"github.com/jevelon/backend/internal/service"
)

// SupportHandler handles support ticket submission and listing.
type SupportHandler struct {
	ticketService service.SupportTicketService
	debug         bool
}

// NewSupportHandler creates a SupportHandler with the given service.
func NewSupportHandler(ticketService service.SupportTicketService, debug bool) *SupportHandler {
	return &SupportHandler{ticketService: ticketService, debug: debug}
}

type ticketSubmitResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	TicketID string `json:"ticket_id"`
}

type ticketListResponse struct {
	Success bool                   `json:"success"`
	Tickets []*model.SupportTicket `json:"tickets"`
}

// Submit handles POST /api/support/submit/.
func (h *SupportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in model.SupportTicketInput
	if fe := decodeInput(w, r, &in); fe != nil {
		writeFieldErrors(w, fe)
		return
	}

	ticket, err := h.ticketService.Submit(r.Context(), in)
	if err != nil {
		writeSubmitError(w, r, h.debug, err)
		return
	}

	logging.FromContext(r.Context()).Info("support ticket stored",
		"id", ticket.ID, "priority", ticket.Priority, "email_sent", ticket.EmailSent)
	writeJSON(w, http.StatusCreated, ticketSubmitResponse{
		Success:  true,
		Message:  "Support ticket submitted successfully",
		TicketID: ticket.ID,
	})
}

// List handles GET /api/support/tickets/. The endpoint is unauthenticated.
func (h *SupportHandler) List(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.ticketService.List(r.Context())
	if err != nil {
		writeFault(w, r, h.debug, err)
		return
	}
	if tickets == nil {
		tickets = []*model.SupportTicket{}
	}
	writeJSON(w, http.StatusOK, ticketListResponse{Success: true, Tickets: tickets})
}
