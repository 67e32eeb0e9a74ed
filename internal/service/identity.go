package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/BradleyExton/canpoli-api/internal/auth"
	"github.com/BradleyExton/canpoli-api/internal/repository"
)

// IdentityService upserts platform users from verified token identities.
type IdentityService interface {
	EnsureUser(ctx context.Context, identity auth.Identity) (repository.User, error)
}

type identityService struct {
	store repository.Store
}

func NewIdentityService(store repository.Store) IdentityService {
	return &identityService{store: store}
}

// EnsureUser returns the user a verified identity maps to, creating it on
// first sight and refreshing a changed email.
func (s *identityService) EnsureUser(ctx context.Context, identity auth.Identity) (repository.User, error) {
	user, err := s.store.GetUserByAuthUserID(ctx, repository.GetUserByAuthUserIDParams{
		AuthProvider: authProviderClerk,
		AuthUserID:   identity.Subject,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		user, err = s.store.CreateUser(ctx, repository.CreateUserParams{
			ID:           newUUID(),
			AuthProvider: authProviderClerk,
			AuthUserID:   identity.Subject,
			Email:        identity.Email,
		})
		if err != nil {
			return repository.User{}, fmt.Errorf("create user: %w", err)
		}
		return user, nil
	}
	if err != nil {
		return repository.User{}, fmt.Errorf("load user: %w", err)
	}

	if identity.Email != nil && (user.Email == nil || *user.Email != *identity.Email) {
		user, err = s.store.UpdateUserEmail(ctx, repository.UpdateUserEmailParams{
			ID:    user.ID,
			Email: identity.Email,
		})
		if err != nil {
			return repository.User{}, fmt.Errorf("update user email: %w", err)
		}
	}
	return user, nil
}
