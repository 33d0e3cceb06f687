package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jevelon/backend/internal/config"
	"github.com/jevelon/backend/internal/handler"
	"github.com/jevelon/backend/internal/logging"
	"github.com/jevelon/backend/internal/notify"
	"github.com/jevelon/backend/internal/repository"
	"github.com/jevelon/backend/internal/service"
	"github.com/jevelon/backend/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	sender, closeSender, err := notify.NewSender(cfg.Mail)
	if err != nil {
		logging.Fatal("failed to configure mail backend", "backend", cfg.Mail.Backend, "error", err)
	}
	defer func() {
		if err := closeSender(); err != nil {
			slog.Warn("mail backend close failed", "error", err)
		}
	}()
	notifier := notify.New(sender, cfg.Mail)
	validator := validation.New()

	contactRepo := repository.NewPgContactRepository(pool)
	ticketRepo := repository.NewPgSupportTicketRepository(pool)
	consultationRepo := repository.NewPgConsultationRepository(pool)

	contactService := service.NewContactService(contactRepo, validator, notifier)
	ticketService := service.NewSupportTicketService(ticketRepo, validator, notifier)
	consultationService := service.NewConsultationService(consultationRepo, validator, notifier)

	router := handler.NewRouter(cfg, handler.Routes{
		Handler:      handler.New(pool, cfg),
		Contact:      handler.NewContactHandler(contactService, cfg.Debug),
		Support:      handler.NewSupportHandler(ticketService, cfg.Debug),
		Consultation: handler.NewConsultationHandler(consultationService, cfg.Debug),
	})

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "env", cfg.Env, "mail_backend", cfg.Mail.Backend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
