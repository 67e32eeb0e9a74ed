package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/vault/api"
)

// applyVaultOverlay reads the KV v2 secret at VAULT_SECRET_PATH and writes
// the known keys over the env-derived config. Secret material lives in Vault
// in deployed environments; local setups keep using plain env vars.
func applyVaultOverlay(cfg *Config) error {
	addr := getEnv("VAULT_ADDR", "http://localhost:8200")
	token := getEnv("VAULT_TOKEN", "root")
	path := getEnv("VAULT_SECRET_PATH", "secret/data/canpoli/api")

	vc := api.DefaultConfig()
	vc.Address = addr

	client, err := api.NewClient(vc)
	if err != nil {
		return fmt.Errorf("vault client initialization failed: %w", err)
	}
	client.SetToken(token)

	secret, err := client.Logical().Read(path)
	if err != nil {
		return fmt.Errorf("failed to read secret at %s: %w", path, err)
	}
	if secret == nil || secret.Data == nil {
		return fmt.Errorf("no data found at %s", path)
	}
	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return fmt.Errorf("unexpected data format at %s", path)
	}

	overlay := map[string]*string{
		"DATABASE_URL":          &cfg.DatabaseURL,
		"REDIS_URL":             &cfg.RedisURL,
		"API_KEY_HMAC_SECRET":   &cfg.APIKeyHMACSecret,
		"NATS_URL":              &cfg.NATSURL,
		"STRIPE_SECRET_KEY":     &cfg.Stripe.SecretKey,
		"STRIPE_WEBHOOK_SECRET": &cfg.Stripe.WebhookSecret,
		"STRIPE_PRICE_ID":       &cfg.Stripe.PriceID,
		"CLERK_JWKS_URL":        &cfg.Clerk.JWKSURL,
		"CLERK_ISSUER":          &cfg.Clerk.Issuer,
		"CLERK_AUDIENCE":        &cfg.Clerk.Audience,
	}
	for key, dst := range overlay {
		if v, ok := data[key].(string); ok && v != "" {
			*dst = v
		}
	}
	return nil
}

// vaultConfigured reports whether the process opted into the Vault overlay.
func vaultConfigured() bool {
	return os.Getenv("VAULT_ADDR") != ""
}
