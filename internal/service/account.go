package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/BradleyExton/canpoli-api/internal/apikey"
	"github.com/BradleyExton/canpoli-api/internal/counter"
	"github.com/BradleyExton/canpoli-api/internal/repository"
)

// APIKeyDetails is the masked view of the active key. APIKey carries the
// plaintext exactly once, straight after checkout minted the key.
type APIKeyDetails struct {
	APIKey     *string
	KeyPrefix  string
	MaskedKey  string
	Active     bool
	CreatedAt  pgtype.Timestamptz
	RevokedAt  pgtype.Timestamptz
	LastUsedAt pgtype.Timestamptz
}

// RotatedKey is returned on rotation. The plaintext is shown only here.
type RotatedKey struct {
	APIKey    string
	KeyPrefix string
	CreatedAt pgtype.Timestamptz
}

// UsageReport is the metered consumption of the current billing period.
type UsageReport struct {
	UsageCount     int64
	PeriodStart    pgtype.Timestamptz
	PeriodEnd      pgtype.Timestamptz
	LimitPerMinute int
}

// AccountService serves the bearer-authenticated key-management surface.
type AccountService interface {
	GetAPIKey(ctx context.Context, userID pgtype.UUID) (APIKeyDetails, error)
	RotateAPIKey(ctx context.Context, userID pgtype.UUID) (RotatedKey, error)
	Usage(ctx context.Context, userID pgtype.UUID) (UsageReport, error)
}

type accountService struct {
	store      repository.Store
	counters   counter.Store
	hmacSecret string
	paidPerMin int
	logger     *zap.Logger
}

func NewAccountService(store repository.Store, counters counter.Store, hmacSecret string, paidPerMin int, logger *zap.Logger) AccountService {
	return &accountService{
		store:      store,
		counters:   counters,
		hmacSecret: hmacSecret,
		paidPerMin: paidPerMin,
		logger:     logger,
	}
}

// GetAPIKey returns the most recent active key, masked. When checkout left a
// plaintext stash for this user, the first read consumes it.
func (s *accountService) GetAPIKey(ctx context.Context, userID pgtype.UUID) (APIKeyDetails, error) {
	key, err := s.store.GetActiveApiKeyForUser(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return APIKeyDetails{}, ErrAPIKeyNotFound
	}
	if err != nil {
		return APIKeyDetails{}, fmt.Errorf("load api key: %w", err)
	}

	details := APIKeyDetails{
		KeyPrefix:  key.KeyPrefix,
		MaskedKey:  apikey.Mask(key.KeyPrefix),
		Active:     key.Active,
		CreatedAt:  key.CreatedAt,
		RevokedAt:  key.RevokedAt,
		LastUsedAt: key.LastUsedAt,
	}

	revealKey := fmt.Sprintf(counter.RevealKeyFmt, uuidString(userID))
	plaintext, err := s.counters.Get(ctx, revealKey)
	switch {
	case err == nil && plaintext != "":
		details.APIKey = &plaintext
		if err := s.counters.Del(ctx, revealKey); err != nil {
			s.logger.Warn("reveal stash delete failed", zap.Error(err))
		}
	case err != nil && !errors.Is(err, counter.ErrNil):
		s.logger.Warn("reveal stash read failed", zap.Error(err))
	}

	return details, nil
}

// RotateAPIKey revokes every key the subscriber holds and mints a fresh one.
// The user row lock serializes concurrent rotations so exactly one active
// key survives.
func (s *accountService) RotateAPIKey(ctx context.Context, userID pgtype.UUID) (RotatedKey, error) {
	if s.hmacSecret == "" {
		return RotatedKey{}, ErrHashingNotConfigured
	}

	bill, err := s.store.GetBillingByUserID(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return RotatedKey{}, ErrSubscriptionInactive
	}
	if err != nil {
		return RotatedKey{}, fmt.Errorf("load billing: %w", err)
	}
	if !SubscriptionActive(bill.Status) {
		return RotatedKey{}, ErrSubscriptionInactive
	}

	plaintext, err := apikey.Generate()
	if err != nil {
		return RotatedKey{}, err
	}

	var created repository.ApiKey
	err = s.store.WithTransaction(ctx, func(q repository.Querier) error {
		if _, err := q.GetUserForUpdate(ctx, userID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}
		if err := q.DeactivateApiKeysForUser(ctx, userID); err != nil {
			return fmt.Errorf("deactivate keys: %w", err)
		}
		key, err := q.CreateApiKey(ctx, repository.CreateApiKeyParams{
			ID:        newUUID(),
			UserID:    userID,
			KeyPrefix: apikey.DisplayPrefix(plaintext),
			KeyHash:   apikey.Hash(s.hmacSecret, plaintext),
			Active:    true,
		})
		if err != nil {
			return fmt.Errorf("create key: %w", err)
		}
		created = key
		return nil
	})
	if err != nil {
		return RotatedKey{}, err
	}

	return RotatedKey{
		APIKey:    plaintext,
		KeyPrefix: created.KeyPrefix,
		CreatedAt: created.CreatedAt,
	}, nil
}

// Usage reads the request counter for the current billing period.
func (s *accountService) Usage(ctx context.Context, userID pgtype.UUID) (UsageReport, error) {
	bill, err := s.store.GetBillingByUserID(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return UsageReport{}, ErrNoBillingPeriod
	}
	if err != nil {
		return UsageReport{}, fmt.Errorf("load billing: %w", err)
	}
	if !bill.CurrentPeriodStart.Valid {
		return UsageReport{}, ErrNoBillingPeriod
	}

	key, err := s.store.GetActiveApiKeyForUser(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return UsageReport{}, ErrAPIKeyNotFound
	}
	if err != nil {
		return UsageReport{}, fmt.Errorf("load api key: %w", err)
	}

	usageKey := fmt.Sprintf(counter.UsageKeyFmt, uuidString(key.ID), bill.CurrentPeriodStart.Time.Unix())
	raw, err := s.counters.Get(ctx, usageKey)
	var count int64
	switch {
	case errors.Is(err, counter.ErrNil):
		count = 0
	case err != nil:
		return UsageReport{}, fmt.Errorf("read usage: %w", err)
	default:
		count, _ = strconv.ParseInt(raw, 10, 64)
	}

	return UsageReport{
		UsageCount:     count,
		PeriodStart:    bill.CurrentPeriodStart,
		PeriodEnd:      bill.CurrentPeriodEnd,
		LimitPerMinute: s.paidPerMin,
	}, nil
}
