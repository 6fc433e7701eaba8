package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume_portal_backend/internal/email"
	"resume_portal_backend/internal/events"
	apphttp "resume_portal_backend/internal/http"
	"resume_portal_backend/internal/http/router"
	"resume_portal_backend/internal/leads"
	"resume_portal_backend/internal/likes"
	"resume_portal_backend/internal/notification"
	"resume_portal_backend/internal/resume"
	"resume_portal_backend/platform/config"
	"resume_portal_backend/platform/db"
	"resume_portal_backend/platform/httpkit"
	"resume_portal_backend/platform/logger"
	"resume_portal_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
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

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

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

	redisOpt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Error("invalid redis url", "error", err)
		panic("invalid redis url: " + err.Error())
	}
	redisClient := redis.NewClient(redisOpt)
	defer redisClient.Close()

	if err := withRetry(ctx, log, "redis connection", 5, 2*time.Second, func() error {
		return redisClient.Ping(ctx).Err()
	}); err != nil {
		log.Error("failed to connect to redis", "error", err)
		panic("failed to connect to redis: " + err.Error())
	}
	log.Info("redis connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	siteContent, err := resume.LoadContent(cfg.ResumeFile)
	if err != nil {
		log.Error("failed to load resume content", "error", err)
		panic("failed to load resume content: " + err.Error())
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Notification module subscribes to domain events (not HTTP-facing)
	sender := email.NewSender(cfg)
	notification.New(sender, cfg, log).RegisterHandlers(eventBus)

	leadsModule := leads.NewModule(pool, eventBus, val, log)
	likesModule := likes.NewModule(redisClient, val, log)
	resumeModule := resume.NewModule(siteContent)

	app := &apphttp.App{
		Config:       cfg,
		Logger:       log,
		Health:       pool,
		EventBus:     eventBus,
		WriteLimiter: httpkit.NewIPRateLimiter(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst, log),
		Modules:      []apphttp.Module{resumeModule, leadsModule, likesModule},
	}

	engine := router.New(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// withRetry runs fn up to attempts times, waiting delay between tries.
func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, delay time.Duration, fn func() error) error {
	var err error
	for i := 1; i <= attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		log.Warn("retrying", "operation", name, "attempt", i, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return err
}
