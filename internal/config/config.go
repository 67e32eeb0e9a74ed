// Package config loads runtime settings for the API server, the worker and
// the ingestion CLI from the environment, with an optional Vault KV v2
// overlay for secret material.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every runtime setting shared by the binaries.
type Config struct {
	Environment string
	Port        string
	DatabaseURL string
	RedisURL    string

	CORSAllowOrigins []string

	APIKeyHMACSecret    string
	RateLimitFreePerMin int
	RateLimitPaidPerMin int

	NATSURL        string
	IngestCronSpec string

	Ingest Ingest
	Stripe Stripe
	Clerk  Clerk
}

// Ingest configures the upstream fetch pool and the ingestion pipelines.
type Ingest struct {
	BaseURL            string
	LegisinfoBaseURL   string
	Timeout            time.Duration
	MaxConcurrency     int
	MinRequestInterval time.Duration

	Parliament int
	Session    int

	DebatesMaxSitting int
	DebatesLookahead  int
	DebatesMaxMissing int
	DebateLanguages   []string

	EnableMembers        bool
	EnablePartyStandings bool
	EnableRoles          bool
	EnableVotes          bool
	EnablePetitions      bool
	EnableDebates        bool
	EnableExpenditures   bool
	EnableBills          bool
}

// Stripe holds the billing provider credentials and redirect URLs.
type Stripe struct {
	SecretKey          string
	WebhookSecret      string
	PriceID            string
	CheckoutSuccessURL string
	CheckoutCancelURL  string
	PortalReturnURL    string
}

// Clerk holds the bearer-token verification settings.
type Clerk struct {
	JWKSURL  string
	Issuer   string
	Audience string
}

// Load builds a Config from the environment, applies the Vault overlay when
// VAULT_ADDR is set, and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		CORSAllowOrigins: getEnvList("CORS_ALLOW_ORIGINS", nil),

		APIKeyHMACSecret:    os.Getenv("API_KEY_HMAC_SECRET"),
		RateLimitFreePerMin: getEnvInt("RATE_LIMIT_FREE_PER_MIN", 50),
		RateLimitPaidPerMin: getEnvInt("RATE_LIMIT_PAID_PER_MIN", 500),

		NATSURL:        getEnv("NATS_URL", "nats://localhost:4222"),
		IngestCronSpec: getEnv("INGEST_CRON_SPEC", "0 0 * * * *"),

		Ingest: Ingest{
			BaseURL:            getEnv("HOC_API_BASE_URL", "https://www.ourcommons.ca"),
			LegisinfoBaseURL:   getEnv("LEGISINFO_BASE_URL", "https://www.parl.ca"),
			Timeout:            time.Duration(getEnvInt("HOC_API_TIMEOUT_SECONDS", 10)) * time.Second,
			MaxConcurrency:     getEnvInt("HOC_MAX_CONCURRENCY", 4),
			MinRequestInterval: time.Duration(getEnvInt("HOC_MIN_REQUEST_INTERVAL_MS", 250)) * time.Millisecond,

			Parliament: getEnvInt("HOC_PARLIAMENT", 45),
			Session:    getEnvInt("HOC_SESSION", 1),

			DebatesMaxSitting: getEnvInt("HOC_DEBATES_MAX_SITTING", 400),
			DebatesLookahead:  getEnvInt("HOC_DEBATES_LOOKAHEAD", 30),
			DebatesMaxMissing: getEnvInt("HOC_DEBATES_MAX_MISSING", 20),
			DebateLanguages:   getEnvList("HOC_DEBATES_LANGUAGES", []string{"en", "fr"}),

			EnableMembers:        getEnvBool("HOC_ENABLE_MEMBERS", true),
			EnablePartyStandings: getEnvBool("HOC_ENABLE_PARTY_STANDINGS", true),
			EnableRoles:          getEnvBool("HOC_ENABLE_ROLES", true),
			EnableVotes:          getEnvBool("HOC_ENABLE_VOTES", true),
			EnablePetitions:      getEnvBool("HOC_ENABLE_PETITIONS", true),
			EnableDebates:        getEnvBool("HOC_ENABLE_DEBATES", true),
			EnableExpenditures:   getEnvBool("HOC_ENABLE_EXPENDITURES", true),
			EnableBills:          getEnvBool("HOC_ENABLE_BILLS", true),
		},

		Stripe: Stripe{
			SecretKey:          os.Getenv("STRIPE_SECRET_KEY"),
			WebhookSecret:      os.Getenv("STRIPE_WEBHOOK_SECRET"),
			PriceID:            os.Getenv("STRIPE_PRICE_ID"),
			CheckoutSuccessURL: os.Getenv("STRIPE_CHECKOUT_SUCCESS_URL"),
			CheckoutCancelURL:  os.Getenv("STRIPE_CHECKOUT_CANCEL_URL"),
			PortalReturnURL:    os.Getenv("STRIPE_PORTAL_RETURN_URL"),
		},

		Clerk: Clerk{
			JWKSURL:  os.Getenv("CLERK_JWKS_URL"),
			Issuer:   os.Getenv("CLERK_ISSUER"),
			Audience: os.Getenv("CLERK_AUDIENCE"),
		},
	}

	if vaultConfigured() {
		if err := applyVaultOverlay(cfg); err != nil {
			return nil, fmt.Errorf("vault overlay failed: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.RedisURL == "" && !c.IsDevLike() {
		return fmt.Errorf("REDIS_URL is required outside development/test")
	}
	return nil
}

// IsDevLike reports whether the environment permits the in-process counter
// fallback instead of Redis.
func (c *Config) IsDevLike() bool {
	switch strings.ToLower(c.Environment) {
	case "development", "dev", "test", "testing":
		return true
	}
	return false
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
