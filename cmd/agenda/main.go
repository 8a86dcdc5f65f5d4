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

	"github.com/Venkatasai-102/agenda-tracker/internal/api"
	"github.com/Venkatasai-102/agenda-tracker/internal/api/calls"
	"github.com/Venkatasai-102/agenda-tracker/internal/api/contacts"
	"github.com/Venkatasai-102/agenda-tracker/internal/api/summary"
	"github.com/Venkatasai-102/agenda-tracker/internal/api/targets"
	"github.com/Venkatasai-102/agenda-tracker/internal/api/ui"
	"github.com/Venkatasai-102/agenda-tracker/internal/config"
	"github.com/Venkatasai-102/agenda-tracker/internal/database"
	"github.com/Venkatasai-102/agenda-tracker/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	s := store.New(db)

	mux := http.NewServeMux()

	targets.RegisterRoutes(mux, s)
	calls.RegisterRoutes(mux, s)
	contacts.RegisterRoutes(mux, s)
	summary.RegisterRoutes(mux, s)

	// Dashboard
	ui.RegisterRoutes(mux)

	// Catch-all: JSON 404 for unknown routes.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		api.WriteError(w, http.StatusNotFound,
			fmt.Sprintf("No route found for %s %s", r.Method, r.URL.Path))
	})

	handler := api.Chain(mux,
		api.Recovery(),
		api.RequestID(),
		api.CORS(),
		api.Logging(),
	)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		slog.Info("shutting down server")
		if err := srv.Shutdown(context.Background()); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	slog.Info("starting agenda-tracker server", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}
