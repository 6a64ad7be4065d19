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

	"github.com/danielhkuo/quickly-spin/cliparse"
	"github.com/danielhkuo/quickly-spin/logging"
	"github.com/danielhkuo/quickly-spin/middleware"
	"github.com/danielhkuo/quickly-spin/router"
	"github.com/danielhkuo/quickly-spin/spin"
	"github.com/danielhkuo/quickly-spin/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		return err
	}

	logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open store and apply migrations
	st, err := store.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer st.Close()
	slog.Info("store ready", "type", cfg.DatabaseType)

	if seeded, out := st.Seed(ctx); out.Kind != store.KindOK {
		slog.Warn("seeding failed", "outcome", out.Kind)
	} else if seeded {
		slog.Info("seeded built-in roulettes", "count", len(store.BuiltInThemes))
	}

	wheel := spin.NewWheel(spin.WithDuration(cfg.SpinDuration))
	// A spin still pending at shutdown must not write a result
	defer wheel.Cancel()

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(router.NewRouter(st, wheel, cfg)),
		Addr:              cfg.Addr(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	// Start server
	slog.Info("Listening", "addr", cfg.Addr())
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("Server closed")
	return nil
}
