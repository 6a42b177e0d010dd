package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/ayto/budgetledger/internal/adapter/http"
	"github.com/ayto/budgetledger/internal/adapter/http/handler"
	"github.com/ayto/budgetledger/internal/adapter/http/middleware"
	postgresRepo "github.com/ayto/budgetledger/internal/adapter/repository/postgres"
	redisRepo "github.com/ayto/budgetledger/internal/adapter/repository/redis"
	"github.com/ayto/budgetledger/internal/infrastructure/auth"
	"github.com/ayto/budgetledger/internal/infrastructure/config"
	"github.com/ayto/budgetledger/internal/infrastructure/eventpublisher"
	"github.com/ayto/budgetledger/internal/infrastructure/logger"
	"github.com/ayto/budgetledger/internal/infrastructure/logging"
	"github.com/ayto/budgetledger/internal/infrastructure/metrics"
	"github.com/ayto/budgetledger/internal/infrastructure/postgres"
	"github.com/ayto/budgetledger/internal/infrastructure/redis"
	"github.com/ayto/budgetledger/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "budgetledger",
	})

	slogger := logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Msg("migrations applied")

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	idGen := postgresRepo.NewULIDGenerator()
	budgetRepo := postgresRepo.NewBudgetRepository(pool)
	itemRepo := postgresRepo.NewBudgetItemRepository(pool)
	modRepo := postgresRepo.NewModificationRepository(pool)
	auditRepo := postgresRepo.NewAuditRepository(pool, idGen)

	var outboxRepo usecase.OutboxRepository = postgresRepo.NewOutboxRepository(pool)
	if !cfg.OutboxEnabled {
		outboxRepo = postgresRepo.NewNullOutboxRepository()
	}
	retrier := postgresRepo.NewRetrier(m)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	cache := redisRepo.NewCache(redisClient, m)

	// Use cases
	modUC := usecase.NewModificationUseCase(
		txManager, budgetRepo, itemRepo, modRepo, outboxRepo, auditRepo,
		idGen, retrier, cache, m,
	)
	queryUC := usecase.NewQueryUseCase(budgetRepo, itemRepo, modRepo, cache)
	consistencyUC := usecase.NewConsistencyUseCase(budgetRepo, itemRepo, modRepo)

	// Handlers
	modHandler := handler.NewModificationHandler(modUC, queryUC, auditRepo)
	budgetHandler := handler.NewBudgetHandler(queryUC, consistencyUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	var jwtManager *auth.JWTManager
	if cfg.AuthEnabled && cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
		log.Info().Msg("jwt authentication enabled")
	}

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ModificationHandler: modHandler,
		BudgetHandler:       budgetHandler,
		HealthHandler:       healthHandler,
		Auth:                middleware.NewAuth(jwtManager),
		IdempotencyStore:    idempotencyStore,
		Metrics:             m,
		RateLimit:           rateLimiter,
	})

	// Outbox publisher drains modification events in the background so API
	// writes never block on downstream consumers.
	publisherCtx, stopPublisher := context.WithCancel(ctx)
	defer stopPublisher()

	if cfg.OutboxEnabled {
		publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
			OutboxRepo: outboxRepo,
			Publisher:  eventpublisher.NewLogPublisher(slogger.Logger),
			Logger:     slogger.Logger,
			Metrics:    m,
			BatchSize:  cfg.OutboxBatchSize,
			Interval:   cfg.OutboxPollInterval,
		})
		go func() {
			if err := publisher.Start(publisherCtx); err != nil && publisherCtx.Err() == nil {
				log.Error().Err(err).Msg("event publisher stopped")
			}
		}()
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	stopPublisher()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
