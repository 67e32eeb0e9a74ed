// Package auth verifies Clerk-issued bearer tokens against the instance
// JWKS and resolves the platform identity they carry.
package auth

import (
	"context"
	"errors"
)

// ErrInvalidToken marks a token that fails signature, issuer, audience or
// claim checks. Callers map it to 401 without leaking the cause.
var ErrInvalidToken = errors.New("auth: invalid token")

// Identity is the subject a verified token asserts.
type Identity struct {
	Subject string
	Email   *string
}

// Verifier turns a raw bearer token into an Identity. Tests swap in a stub.
type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}
