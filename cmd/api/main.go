package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"ledgerly/internal/config"
	"ledgerly/internal/kvstore"
	"ledgerly/internal/ledger"
	"ledgerly/internal/logger"
	"ledgerly/internal/server"
	"ledgerly/internal/validator"
)

// @title           Ledgerly API
// @version         1.0
// @description     Personal finance ledger: transactions, budgets, loans, analytics and insights.

// @host      localhost:8080
// @BasePath  /api/v1

const shutdownTimeout = 30 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	backend, err := kvstore.New(appConfig)
	if err != nil {
		return fmt.Errorf("failed to open ledger store: %w", err)
	}
	defer func() {
		if err := backend.Cleanup(); err != nil {
			log.Warnw("ledger store cleanup failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := ledger.NewStore(backend.Store)
	if _, err := store.Load(ctx); err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}

	validator.Register()

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           server.NewRouter(store, server.OptionsFromConfig(appConfig)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting Ledgerly server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
