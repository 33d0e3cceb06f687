// Command createadmin bootstraps the first superuser from
// SUPERUSER_USERNAME, SUPERUSER_EMAIL and SUPERUSER_PASSWORD. It does
// nothing when a superuser already exists.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jevelon/backend/internal/config"
	"github.com/jevelon/backend/internal/logging"
	"github.com/jevelon/backend/internal/repository"
	"github.com/jevelon/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	username := os.Getenv("SUPERUSER_USERNAME")
	email := os.Getenv("SUPERUSER_EMAIL")
	password := os.Getenv("SUPERUSER_PASSWORD")
	if username == "" || email == "" || password == "" {
		slog.Info("superuser environment variables not set, skipping")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	svc := service.NewAdminUserService(repository.NewPgAdminUserRepository(pool))
	u, err := svc.EnsureSuperuser(ctx, username, email, password)
	switch {
	case errors.Is(err, service.ErrSuperuserExists):
		slog.Info("superuser already exists")
	case errors.Is(err, repository.ErrDuplicate):
		slog.Warn("username already taken", "username", username)
	case err != nil:
		pool.Close()
		logging.Fatal("failed to create superuser", "error", err)
	default:
		slog.Info("superuser created", "id", u.ID, "username", u.Username)
	}
}
