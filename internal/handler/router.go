package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/jevelon/backend/internal/config"
)

// Routes groups the handlers mounted by NewRouter.
type Routes struct {
	Handler      *Handler
	Contact      *ContactHandler
	Support      *SupportHandler
	Consultation *ConsultationHandler
}

// NewRouter builds the HTTP surface. Paths match with or without a
// trailing slash.
func NewRouter(cfg *config.Config, rt Routes) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(Recover(cfg.Debug))
	r.Use(SecurityHeaders)
	r.Use(CORS(cfg))
	r.Use(AllowedHosts(cfg))
	r.Use(chiMiddleware.StripSlashes)

	r.Get("/", rt.Handler.Root)
	r.Get("/test", rt.Handler.TestEcho)
	r.Get("/favicon.ico", rt.Handler.Favicon)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", rt.Handler.Health)
		api.Post("/contact/submit", rt.Contact.Submit)
		api.Post("/support/submit", rt.Support.Submit)
		api.Get("/support/tickets", rt.Support.List)
		api.Post("/consultation/schedule", rt.Consultation.Schedule)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, faultResponse{Success: false, Error: "not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, faultResponse{Success: false, Error: "method not allowed"})
	})
	return r
}
