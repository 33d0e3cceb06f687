package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jevelon/backend/internal/logging"
	"github.com/jevelon/backend/internal/model"
)

type errorsResponse struct {
	Success bool              `json:"success"`
	Errors  model.FieldErrors `json:"errors"`
}

type faultResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to write response", "error", err)
	}
}

func writeFieldErrors(w http.ResponseWriter, fields model.FieldErrors) {
	writeJSON(w, http.StatusBadRequest, errorsResponse{Success: false, Errors: fields})
}

// writeFault sends the 500 envelope. The error text is exposed only in
// debug mode.
func writeFault(w http.ResponseWriter, r *http.Request, debug bool, err error) {
	logging.FromContext(r.Context()).Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	msg := "internal server error"
	if debug && err != nil {
		msg = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, faultResponse{Success: false, Error: msg})
}

// writeSubmitError maps a submission error to 400 or 500.
func writeSubmitError(w http.ResponseWriter, r *http.Request, debug bool, err error) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		writeFieldErrors(w, verr.Fields)
		return
	}
	writeFault(w, r, debug, err)
}
