package handler

import (
	"net/http"

	"github.com/jevelon/backend/internal/logging"
	"github.com/jevelon/backend/internal/model"
	"github.com/jevelon/backend/internal/service"
)

// ConsultationHandler handles consultation booking requests.
type ConsultationHandler struct {
	consultationService service.ConsultationService
	debug               bool
}

// NewConsultationHandler creates a ConsultationHandler with the given service.
func NewConsultationHandler(consultationService service.ConsultationService, debug bool) *ConsultationHandler {
	return &ConsultationHandler{consultationService: consultationService, debug: debug}
}

type consultationResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	ConsultationID string `json:"consultation_id"`
}

// Schedule handles POST /api/consultation/schedule/.
func (h *ConsultationHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var in model.ConsultationInput
	if fe := decodeInput(w, r, &in); fe != nil {
		writeFieldErrors(w, fe)
		return
	}

	req, err := h.consultationService.Schedule(r.Context(), in)
	if err != nil {
		writeSubmitError(w, r, h.debug, err)
		return
	}

	logging.FromContext(r.Context()).Info("consultation request stored",
		"id", req.ID, "preferred_date", req.PreferredDate.String(), "email_sent", req.EmailSent)
	writeJSON(w, http.StatusCreated, consultationResponse{
		Success:        true,
		Message:        "Consultation scheduled successfully",
		ConsultationID: req.ID,
	})
}
