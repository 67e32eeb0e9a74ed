package auth

import (
	"context"
	"fmt"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// ClerkVerifier validates RS256 tokens against the Clerk instance JWKS.
// keyfunc keeps the key set cached and refreshes it in the background, so
// key rotations and unknown kids resolve without a restart.
type ClerkVerifier struct {
	jwks     keyfunc.Keyfunc
	issuer   string
	audience string
}

// NewClerkVerifier fetches the JWKS once and starts its refresh loop.
func NewClerkVerifier(jwksURL, issuer, audience string) (*ClerkVerifier, error) {
	k, err := keyfunc.NewDefault([]string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("auth: jwks init: %w", err)
	}
	return &ClerkVerifier{jwks: k, issuer: issuer, audience: audience}, nil
}

// Verify parses and validates a raw token. The sub claim is required; the
// email is taken from the first of the claim names Clerk templates emit.
func (v *ClerkVerifier) Verify(ctx context.Context, raw string) (Identity, error) {
	tok, err := jwt.Parse(raw, v.jwks.KeyfuncCtx(ctx),
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
	)
	if err != nil || !tok.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{Subject: sub, Email: extractEmail(claims)}, nil
}

func extractEmail(claims jwt.MapClaims) *string {
	for _, name := range []string{"email", "email_address", "primary_email_address"} {
		if v, ok := claims[name].(string); ok && v != "" {
			return &v
		}
	}
	return nil
}
