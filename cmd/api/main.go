// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the panelkit HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the state backend (postgres + redis, sqlite, or memory).
//  4. Build the entity catalog and widget registry.
//  5. Apply the definitions file (components, explorers, workspaces, fixtures).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/panelkit/internal/api"
	"github.com/taibuivan/panelkit/internal/definition"
	"github.com/taibuivan/panelkit/internal/entity"
	"github.com/taibuivan/panelkit/internal/explorer"
	"github.com/taibuivan/panelkit/internal/platform/config"
	"github.com/taibuivan/panelkit/internal/platform/constants"
	"github.com/taibuivan/panelkit/internal/platform/sec"
	"github.com/taibuivan/panelkit/internal/widget"
	"github.com/taibuivan/panelkit/internal/workspace"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("state_backend", cfg.StateBackend),
	)

	// Misconfiguration should fail fast rather than hang.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. State Backend ──────────────────────────────────────────────────
	stores, err := openBackend(startupCtx, cfg, log)
	must(log, err, "open state backend")
	defer stores.close()

	// ── 4. Catalog & Registry ─────────────────────────────────────────────
	entities, err := entity.NewRegistry(entity.Catalog()...)
	must(log, err, "build entity catalog")

	widgets := widget.NewRegistry()
	must(log, widget.RegisterBuiltins(widgets), "register builtin widgets")

	explorers := explorer.NewService(entities, widgets, stores.selections, stores.records, log)
	workspaces := workspace.NewService(widgets, stores.tabs, log)

	// ── 5. Definitions ────────────────────────────────────────────────────
	definitions, err := definition.Load(cfg.DefinitionsPath)
	must(log, err, "load definitions")
	must(log, definitions.Apply(widgets, explorers, workspaces), "apply definitions")

	if stores.fixtures != nil {
		must(log, definitions.Seed(entities, stores.fixtures), "seed fixtures")
	} else if len(definitions.Fixtures) > 0 {
		log.Info("fixtures_skipped", slog.String("state_backend", cfg.StateBackend))
	}

	log.Info("definitions_applied",
		slog.Int("components", len(widgets.Names())),
		slog.Int("explorers", len(explorers.Names())),
		slog.Int("workspaces", len(workspaces.Names())),
		slog.Int("fixtures", len(definitions.Fixtures)),
	)

	// ── 6. HTTP Handlers ──────────────────────────────────────────────────
	tokens, err := sec.NewSessionTokens(cfg.SessionSecret, constants.SessionIssuer, cfg.SessionTTL)
	must(log, err, "initialize session tokens")

	liveness, readiness := api.NewHealthHandlers(stores.checks, log)

	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Components: api.NewComponentsHandler(widgets, explorers, workspaces),
		Explorer:   explorer.NewHandler(explorers),
		Workspace:  workspace.NewHandler(workspaces),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokens, handlers)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the process-wide JSON logger and installs it as default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
