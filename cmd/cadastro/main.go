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

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/fornecedores/cadastro/internal/app"
	"github.com/fornecedores/cadastro/internal/auth"
	"github.com/fornecedores/cadastro/internal/observability"
	"github.com/fornecedores/cadastro/internal/platform/cache"
	"github.com/fornecedores/cadastro/internal/shared"
	"github.com/fornecedores/cadastro/internal/suppliers"
	"github.com/fornecedores/cadastro/internal/view"
	"github.com/fornecedores/cadastro/jobs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	store := suppliers.NewStore(newPersister(cfg, redisClient))
	if err := store.Load(ctx); err != nil {
		logger.Debug("load suppliers, starting empty", slog.Any("error", err))
	}
	logger.Info("suppliers loaded", slog.Int("count", store.Count()), slog.String("backend", cfg.StoreBackend))

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	metrics := observability.NewMetrics()
	sessionManager := shared.NewSessionManager(redisClient, cfg.SessionCookie, cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())

	authService := auth.NewService(newVerifier(cfg), metrics)
	authHandler := auth.NewHandler(logger, authService, templates, sessionManager)
	guard := auth.Guard{Templates: templates, Logger: logger}

	var notifier suppliers.Notifier
	var jobHandler *jobs.Handler
	if cfg.JobsEnabled {
		redisOpts := asynq.RedisClientOpt{Addr: cfg.RedisAddr}
		jobClient := jobs.NewClient(redisOpts)
		defer func() {
			if err := jobClient.Close(); err != nil {
				logger.Warn("jobs client close", slog.Any("error", err))
			}
		}()
		inspector := asynq.NewInspector(redisOpts)
		defer func() {
			if err := inspector.Close(); err != nil {
				logger.Warn("inspector close", slog.Any("error", err))
			}
		}()
		notifier = jobClient
		jobHandler = jobs.NewHandler(inspector, logger)
	}

	supplierService := suppliers.NewService(store, notifier, metrics, logger)
	supplierHandler := suppliers.NewHandler(logger, supplierService, templates, guard.RequireLogin)

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		Templates:       templates,
		SessionManager:  sessionManager,
		AuthHandler:     authHandler,
		SupplierHandler: supplierHandler,
		JobHandler:      jobHandler,
		Metrics:         metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("http server", slog.Any("error", err))
		os.Exit(1)
	}
}

func newPersister(cfg *app.Config, client *redis.Client) suppliers.Persister {
	if cfg.StoreBackend == app.StoreBackendRedis {
		return suppliers.NewRedisPersister(client, cfg.StoreRedisKey)
	}
	return suppliers.NewFilePersister(cfg.StoreFile)
}

func newVerifier(cfg *app.Config) auth.Verifier {
	if cfg.AuthPassBcrypt != "" {
		return auth.BcryptVerifier{Username: cfg.AuthUser, PasswordHash: cfg.AuthPassBcrypt}
	}
	return auth.FixedVerifier{Username: cfg.AuthUser, Password: cfg.AuthPass}
}
