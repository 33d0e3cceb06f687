package handler

import (
	"github.com/jevelon/backend/internal/config"
	"github.com/jevelon/backend/internal/repository"
)

// Handler serves the diagnostic endpoints that need the database and the
// runtime configuration.
type Handler struct {
	db  repository.DB
	cfg *config.Config
}

// New creates a Handler for the diagnostic routes.
func New(db repository.DB, cfg *config.Config) *Handler {
	return &Handler{db: db, cfg: cfg}
}
