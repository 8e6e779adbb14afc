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

	"bhph_crm_backend/internal/email"
	"bhph_crm_backend/internal/events"
	"bhph_crm_backend/internal/exports"
	apphttp "bhph_crm_backend/internal/http"
	"bhph_crm_backend/internal/http/router"
	"bhph_crm_backend/internal/importer"
	"bhph_crm_backend/internal/leads"
	"bhph_crm_backend/internal/notification"
	"bhph_crm_backend/internal/scheduler"
	"bhph_crm_backend/platform/config"
	"bhph_crm_backend/platform/db"
	"bhph_crm_backend/platform/logger"
	"bhph_crm_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Infrastructure

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	eventBus := events.NewInMemoryBus(log)
	val := validator.New()

	// Domain modules

	leadsModule := leads.NewModule(pool, eventBus, val, log)

	if cfg.IsSchedulerEnabled() {
		rescoreClient, err := scheduler.NewClient(cfg)
		if err != nil {
			log.Error("failed to initialize rescore queue client", "error", err)
			panic("failed to initialize rescore queue client: " + err.Error())
		}
		defer rescoreClient.Close()
		leadsModule.Service().SetRescoreEnqueuer(rescoreClient)
		log.Info("rescore queue client initialized", "queue", cfg.GetAsynqQueueName())
	} else {
		log.Warn("REDIS_URL not configured; batch rescoring disabled")
	}

	notifier := notification.New(newEmailSender(cfg, log), cfg.GetUnderwritingAlertEmail(), log)
	notifier.Register(eventBus)

	importerModule := importer.NewModule(leadsModule.Service(), eventBus, log)
	exportsModule := exports.NewModule(pool)

	// HTTP layer

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		RateLimiter: &apphttp.RateLimiter{
			PerSecond: cfg.RequestRatePerSecond,
			Burst:     cfg.RequestRateBurst,
		},
		Modules: []apphttp.Module{
			leadsModule,
			importerModule,
			exportsModule,
		},
	}

	engine := router.New(app)
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: engine,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func newEmailSender(cfg *config.Config, log *logger.Logger) email.Sender {
	if !cfg.IsEmailEnabled() {
		log.Warn("SMTP not configured; underwriting alert emails disabled")
		return email.NoopSender{}
	}
	return email.NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUsername(),
		cfg.GetSMTPPassword(),
		cfg.GetEmailFromAddress(),
		cfg.GetEmailFromName(),
	)
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
