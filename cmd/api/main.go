// Package main is the entry point for the canpoli API server: the metered
// HTTP surface over the parliamentary dataset, plus the account and billing
// endpoints that manage API keys and subscriptions.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.uber.org/zap"

	"github.com/BradleyExton/canpoli-api/internal/auth"
	"github.com/BradleyExton/canpoli-api/internal/billing"
	"github.com/BradleyExton/canpoli-api/internal/config"
	"github.com/BradleyExton/canpoli-api/internal/counter"
	"github.com/BradleyExton/canpoli-api/internal/handler"
	"github.com/BradleyExton/canpoli-api/internal/repository"
	"github.com/BradleyExton/canpoli-api/internal/service"
	"github.com/BradleyExton/canpoli-api/internal/telemetry"
)

func main() {
	_ = godotenv.Load()

	// ── Structured Logger ──────────────────────────────────────────────────
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// ── OpenTelemetry Tracer ───────────────────────────────────────────────
	otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otelEndpoint != "" {
		tp, err := telemetry.InitTracer(context.Background(), "canpoli-api", otelEndpoint)
		if err != nil {
			logger.Error("failed to init OTel tracer", zap.Error(err))
		} else {
			defer tp.Shutdown(context.Background())
			logger.Info("OTel tracer initialized", zap.String("endpoint", otelEndpoint))
		}
	}

	// ── Configuration (env + optional Vault overlay) ───────────────────────
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("configuration invalid", zap.Error(err))
	}

	// ── Database Connection Pool (instrumented with OTel) ──────────────────
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to parse DATABASE_URL", zap.Error(err))
	}
	poolCfg.ConnConfig.Tracer = otelpgx.NewTracer()

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()
	logger.Info("connected to database (OTel-instrumented)")

	store := repository.NewStore(pool)

	// ── Counter Store (rate limits, usage, reveal cache) ───────────────────
	var counters counter.Store
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal("failed to parse REDIS_URL", zap.Error(err))
		}
		redisClient := redis.NewClient(redisOpts)
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Fatal("Redis connection failed", zap.Error(err))
		}
		logger.Info("Redis connected", zap.String("addr", redisOpts.Addr))
		counters = counter.NewRedis(redisClient)
	} else {
		// config.Load only permits an empty REDIS_URL in dev-like
		// environments. In-process counters do not survive restarts and do
		// not coordinate across replicas.
		logger.Warn("REDIS_URL not set; using in-process counters")
		counters = counter.NewMemory()
	}

	// ── Bearer-Token Verifier ──────────────────────────────────────────────
	// Left nil when Clerk is unconfigured; account and billing endpoints
	// then answer 500 rather than letting unverified tokens through.
	var verifier auth.Verifier
	if cfg.Clerk.JWKSURL != "" {
		v, err := auth.NewClerkVerifier(cfg.Clerk.JWKSURL, cfg.Clerk.Issuer, cfg.Clerk.Audience)
		if err != nil {
			logger.Fatal("Clerk JWKS initialization failed", zap.Error(err))
		}
		verifier = v
		logger.Info("Clerk verifier ready", zap.String("issuer", cfg.Clerk.Issuer))
	} else {
		logger.Warn("CLERK_JWKS_URL not set; account endpoints will reject bearer tokens")
	}

	// ── Services ───────────────────────────────────────────────────────────
	provider := billing.NewStripeClient(billing.DefaultBaseURL, cfg.Stripe.SecretKey)
	identitySvc := service.NewIdentityService(store)
	accountSvc := service.NewAccountService(store, counters, cfg.APIKeyHMACSecret, cfg.RateLimitPaidPerMin, logger)
	billingSvc := service.NewBillingService(store, counters, provider, cfg.Stripe, cfg.APIKeyHMACSecret, logger)

	// ── HTTP Server ────────────────────────────────────────────────────────
	e := echo.New()
	e.HideBanner = true

	e.Use(otelecho.Middleware("canpoli-api"))

	if len(cfg.CORSAllowOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType, "X-API-Key"},
			AllowCredentials: true,
			MaxAge:           3600,
		}))
	} else {
		// No configured origins: stay permissive but never allow credentials
		// on a wildcard.
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, "X-API-Key"},
			MaxAge:       3600,
		}))
	}

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("HTTP request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	handler.New(store, counters, verifier, identitySvc, accountSvc, billingSvc, cfg, logger).Register(e)

	go func() {
		logger.Info("canpoli-api listening", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failure", zap.Error(err))
		}
	}()

	// ── Graceful Shutdown ──────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Echo shutdown error", zap.Error(err))
	}
	logger.Info("canpoli-api shut down cleanly")
}
