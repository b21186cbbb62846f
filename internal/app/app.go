package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres"
	commentrepo "github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres/comment"
	idearepo "github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres/idea"
	projectrepo "github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres/project"
	tokenrepo "github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres/token"
	userrepo "github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres/user"
	"github.com/buildhub-dev/buildhub-backend/internal/auth"
	"github.com/buildhub-dev/buildhub-backend/internal/config"
	authsvc "github.com/buildhub-dev/buildhub-backend/internal/service/auth"
	"github.com/buildhub-dev/buildhub-backend/internal/service/catalog"
	"github.com/buildhub-dev/buildhub-backend/internal/service/counter"
	"github.com/buildhub-dev/buildhub-backend/internal/service/discussion"
	"github.com/buildhub-dev/buildhub-backend/internal/service/project"
	"github.com/buildhub-dev/buildhub-backend/internal/transport/middleware"
	"github.com/buildhub-dev/buildhub-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// storage, service, and transport layers, starts the periodic jobs, and
// serves HTTP until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	ideas := idearepo.New(pool)
	comments := commentrepo.New(pool)
	projects := projectrepo.New(pool)
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	maintainer := counter.NewMaintainer(logger, ideas)
	reconciler := counter.NewReconciler(logger, ideas)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	catalogSvc := catalog.NewService(logger, ideas, maintainer)
	discussionSvc := discussion.NewService(logger, comments, ideas, users, maintainer, txManager, cfg.Catalog.MaxCommentsPerFetch)
	projectSvc := project.NewService(logger, projects, ideas, maintainer, cfg.Catalog.MaxProjectsPerIdea)
	authSvc := authsvc.NewService(logger, users, tokens, jwtManager, authsvc.BcryptHasher{}, cfg.Auth)

	scheduler := NewScheduler(logger)
	if cfg.Catalog.ReconcileSchedule != "" {
		err := scheduler.Add(cfg.Catalog.ReconcileSchedule, "reconcile_counters", func(ctx context.Context) error {
			reconciler.Run(ctx)
			return nil
		})
		if err != nil {
			return fmt.Errorf("register reconcile job: %w", err)
		}
	}
	err = scheduler.Add("@daily", "cleanup_refresh_tokens", func(ctx context.Context) error {
		deleted, err := tokens.DeleteExpired(ctx, time.Now())
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "expired refresh tokens deleted", slog.Int64("count", deleted))
		return nil
	})
	if err != nil {
		return fmt.Errorf("register token cleanup job: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(jwtManager),
	)

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
		Auth:     rest.NewAuthHandler(authSvc, logger),
		Ideas:    rest.NewIdeaHandler(catalogSvc, logger),
		Comments: rest.NewCommentHandler(discussionSvc, logger),
		Projects: rest.NewProjectHandler(projectSvc, logger),
	}, chain)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
