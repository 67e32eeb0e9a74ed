package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/BradleyExton/canpoli-api/internal/apikey"
	"github.com/BradleyExton/canpoli-api/internal/billing"
	"github.com/BradleyExton/canpoli-api/internal/config"
	"github.com/BradleyExton/canpoli-api/internal/counter"
	"github.com/BradleyExton/canpoli-api/internal/repository"
)

// revealTTL bounds how long a freshly minted key plaintext stays readable.
const revealTTL = time.Hour

// BillingService drives the Stripe checkout/portal flows and reconciles
// webhook events into the billing table and the API key state.
type BillingService interface {
	CreateCheckoutSession(ctx context.Context, user repository.User) (string, error)
	CreatePortalSession(ctx context.Context, userID pgtype.UUID) (string, error)
	HandleWebhook(ctx context.Context, event billing.Event) error
}

type billingService struct {
	store      repository.Store
	counters   counter.Store
	provider   billing.Provider
	cfg        config.Stripe
	hmacSecret string
	logger     *zap.Logger
}

func NewBillingService(store repository.Store, counters counter.Store, provider billing.Provider, cfg config.Stripe, hmacSecret string, logger *zap.Logger) BillingService {
	return &billingService{
		store:      store,
		counters:   counters,
		provider:   provider,
		cfg:        cfg,
		hmacSecret: hmacSecret,
		logger:     logger,
	}
}

// CreateCheckoutSession opens a subscription checkout for the user, creating
// and persisting a Stripe customer first when none exists yet.
func (s *billingService) CreateCheckoutSession(ctx context.Context, user repository.User) (string, error) {
	if s.cfg.PriceID == "" {
		return "", ErrPriceNotConfigured
	}
	if s.cfg.CheckoutSuccessURL == "" || s.cfg.CheckoutCancelURL == "" {
		return "", ErrCheckoutURLsNotConfigured
	}

	userID := uuidString(user.ID)

	bill, err := s.store.GetBillingByUserID(ctx, user.ID)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		customer, cerr := s.provider.CreateCustomer(ctx, user.Email, userID)
		if cerr != nil {
			return "", fmt.Errorf("create customer: %w", cerr)
		}
		bill, err = s.store.CreateBilling(ctx, repository.CreateBillingParams{
			UserID:           user.ID,
			StripeCustomerID: &customer.ID,
		})
		if err != nil {
			return "", fmt.Errorf("create billing: %w", err)
		}
	case err != nil:
		return "", fmt.Errorf("load billing: %w", err)
	case bill.StripeCustomerID == nil || *bill.StripeCustomerID == "":
		customer, cerr := s.provider.CreateCustomer(ctx, user.Email, userID)
		if cerr != nil {
			return "", fmt.Errorf("create customer: %w", cerr)
		}
		bill.StripeCustomerID = &customer.ID
		bill, err = s.store.UpdateBilling(ctx, billingUpdateParams(bill))
		if err != nil {
			return "", fmt.Errorf("assign customer: %w", err)
		}
	}

	session, err := s.provider.CreateCheckoutSession(ctx, billing.CheckoutParams{
		PriceID:    s.cfg.PriceID,
		SuccessURL: s.cfg.CheckoutSuccessURL,
		CancelURL:  s.cfg.CheckoutCancelURL,
		CustomerID: *bill.StripeCustomerID,
		UserID:     userID,
	})
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return session.URL, nil
}

// CreatePortalSession opens the self-serve billing portal for an existing
// customer.
func (s *billingService) CreatePortalSession(ctx context.Context, userID pgtype.UUID) (string, error) {
	if s.cfg.PortalReturnURL == "" {
		return "", ErrPortalURLNotConfigured
	}

	bill, err := s.store.GetBillingByUserID(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrCustomerNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load billing: %w", err)
	}
	if bill.StripeCustomerID == nil || *bill.StripeCustomerID == "" {
		return "", ErrCustomerNotFound
	}

	session, err := s.provider.CreatePortalSession(ctx, *bill.StripeCustomerID, s.cfg.PortalReturnURL)
	if err != nil {
		return "", fmt.Errorf("create portal session: %w", err)
	}
	return session.URL, nil
}

// HandleWebhook reconciles a verified provider event. Every update is an
// overwrite, so replaying an event converges to the same state. Unhandled
// event types are acknowledged without effect.
func (s *billingService) HandleWebhook(ctx context.Context, event billing.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event.Data.Object)
	case "customer.subscription.updated", "customer.subscription.deleted":
		return s.handleSubscriptionChanged(ctx, event.Data.Object)
	}
	return nil
}

func (s *billingService) handleCheckoutCompleted(ctx context.Context, obj billing.EventObject) error {
	rawUserID := obj.UserID()
	if rawUserID == "" {
		return nil
	}
	userID, err := parseUUID(rawUserID)
	if err != nil {
		// A malformed reference can never become valid; retrying the event
		// would loop forever.
		s.logger.Warn("checkout session carries malformed user id", zap.String("user_id", rawUserID))
		return nil
	}

	var sub *billing.Subscription
	if obj.Subscription != nil && *obj.Subscription != "" {
		got, err := s.provider.GetSubscription(ctx, *obj.Subscription)
		if err != nil {
			return fmt.Errorf("retrieve subscription: %w", err)
		}
		sub = &got
	}

	return s.store.WithTransaction(ctx, func(q repository.Querier) error {
		bill, err := q.GetBillingByUserID(ctx, userID)
		if errors.Is(err, pgx.ErrNoRows) {
			bill, err = q.CreateBilling(ctx, repository.CreateBillingParams{UserID: userID})
			if err != nil {
				return fmt.Errorf("create billing: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("load billing: %w", err)
		}

		bill.StripeCustomerID = obj.Customer
		bill.StripeSubscriptionID = obj.Subscription
		if sub != nil {
			status := sub.Status
			bill.Status = &status
			bill.PriceID = sub.Items.PriceID()
			if sub.CurrentPeriodStart != nil {
				bill.CurrentPeriodStart = pgtype.Timestamptz{Time: time.Unix(*sub.CurrentPeriodStart, 0).UTC(), Valid: true}
			}
			if sub.CurrentPeriodEnd != nil {
				bill.CurrentPeriodEnd = pgtype.Timestamptz{Time: time.Unix(*sub.CurrentPeriodEnd, 0).UTC(), Valid: true}
			}
		}
		bill, err = q.UpdateBilling(ctx, billingUpdateParams(bill))
		if err != nil {
			return fmt.Errorf("update billing: %w", err)
		}

		key, err := q.GetActiveApiKeyForUser(ctx, userID)
		if errors.Is(err, pgx.ErrNoRows) {
			plaintext, gerr := apikey.Generate()
			if gerr != nil {
				return gerr
			}
			if _, err := q.CreateApiKey(ctx, repository.CreateApiKeyParams{
				ID:        newUUID(),
				UserID:    userID,
				KeyPrefix: apikey.DisplayPrefix(plaintext),
				KeyHash:   apikey.Hash(s.hmacSecret, plaintext),
				Active:    SubscriptionActive(bill.Status),
			}); err != nil {
				return fmt.Errorf("create api key: %w", err)
			}
			// Stash inside the transaction: if the stash write fails the key
			// row rolls back and the provider retry re-mints it.
			revealKey := fmt.Sprintf(counter.RevealKeyFmt, rawUserID)
			if err := s.counters.Set(ctx, revealKey, plaintext, revealTTL); err != nil {
				return fmt.Errorf("stash reveal: %w", err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("load api key: %w", err)
		}
		return q.SetApiKeyActive(ctx, repository.SetApiKeyActiveParams{
			ID:     key.ID,
			Active: SubscriptionActive(bill.Status),
		})
	})
}

func (s *billingService) handleSubscriptionChanged(ctx context.Context, obj billing.EventObject) error {
	if obj.Customer == nil || *obj.Customer == "" {
		return nil
	}

	return s.store.WithTransaction(ctx, func(q repository.Querier) error {
		bill, err := q.GetBillingByCustomerID(ctx, *obj.Customer)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("load billing: %w", err)
		}

		subID := obj.ID
		bill.StripeSubscriptionID = &subID
		bill.Status = obj.Status
		bill.PriceID = obj.Items.PriceID()
		if obj.CurrentPeriodStart != nil {
			bill.CurrentPeriodStart = pgtype.Timestamptz{Time: time.Unix(*obj.CurrentPeriodStart, 0).UTC(), Valid: true}
		}
		if obj.CurrentPeriodEnd != nil {
			bill.CurrentPeriodEnd = pgtype.Timestamptz{Time: time.Unix(*obj.CurrentPeriodEnd, 0).UTC(), Valid: true}
		}
		bill, err = q.UpdateBilling(ctx, billingUpdateParams(bill))
		if err != nil {
			return fmt.Errorf("update billing: %w", err)
		}

		key, err := q.GetActiveApiKeyForUser(ctx, bill.UserID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("load api key: %w", err)
		}
		return q.SetApiKeyActive(ctx, repository.SetApiKeyActiveParams{
			ID:     key.ID,
			Active: SubscriptionActive(bill.Status),
		})
	})
}
