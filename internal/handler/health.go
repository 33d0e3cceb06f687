package handler

import (
	"net/http"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health handles GET /api/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		msg := "database unavailable"
		if h.cfg.Debug {
			msg = err.Error()
		}
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:  "unhealthy",
			Message: msg,
		})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Message: "Jevelon API",
	})
}

type rootResponse struct {
	Status         string            `json:"status"`
	Message        string            `json:"message"`
	Debug          bool              `json:"debug"`
	AllowedHosts   []string          `json:"allowed_hosts"`
	CORSOrigins    []string          `json:"cors_origins"`
	DatabaseStatus string            `json:"database_status"`
	Endpoints      map[string]string `json:"endpoints"`
}

// Root handles GET /. It always answers 200 and reports the database state
// in the body.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	dbStatus := "connected"
	if err := h.db.Ping(r.Context()); err != nil {
		dbStatus = "error: " + err.Error()
	}
	writeJSON(w, http.StatusOK, rootResponse{
		Status:         "ok",
		Message:        "Jevelon Backend is running",
		Debug:          h.cfg.Debug,
		AllowedHosts:   nonNil(h.cfg.AllowedHosts),
		CORSOrigins:    nonNil(h.cfg.CORSAllowedOrigins),
		DatabaseStatus: dbStatus,
		Endpoints: map[string]string{
			"contact":         "/api/contact/submit/",
			"support":         "/api/support/submit/",
			"support_tickets": "/api/support/tickets/",
			"consultation":    "/api/consultation/schedule/",
			"health":          "/api/health",
		},
	})
}

type echoResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Method  string            `json:"method"`
	Headers map[string]string `json:"headers"`
}

// TestEcho handles GET /test/ and echoes the request method and headers.
func (h *Handler) TestEcho(w http.ResponseWriter, r *http.Request) {
	headers := make(map[string]string, len(r.Header)+1)
	for k := range r.Header {
		headers[k] = r.Header.Get(k)
	}
	if r.Host != "" {
		headers["Host"] = r.Host
	}
	writeJSON(w, http.StatusOK, echoResponse{
		Status:  "success",
		Message: "Test endpoint working",
		Method:  r.Method,
		Headers: headers,
	})
}

// Favicon answers browsers' favicon probes with an empty 204.
func (h *Handler) Favicon(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
