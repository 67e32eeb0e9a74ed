package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/BradleyExton/canpoli-api/internal/apikey"
	"github.com/BradleyExton/canpoli-api/internal/billing"
	"github.com/BradleyExton/canpoli-api/internal/config"
	"github.com/BradleyExton/canpoli-api/internal/counter"
	"github.com/BradleyExton/canpoli-api/internal/repository"
	mockdb "github.com/BradleyExton/canpoli-api/internal/repository/mock"
	"github.com/BradleyExton/canpoli-api/internal/service"
)

func testStripeConfig() config.Stripe {
	return config.Stripe{
		SecretKey:          "sk_test_123",
		WebhookSecret:      "whsec_123",
		PriceID:            "price_basic",
		CheckoutSuccessURL: "https://canpoli.ca/billing/success",
		CheckoutCancelURL:  "https://canpoli.ca/billing/cancel",
		PortalReturnURL:    "https://canpoli.ca/account",
	}
}

func newBillingService(q repository.Querier, counters counter.Store, provider billing.Provider, cfg config.Stripe) service.BillingService {
	return service.NewBillingService(fakeStore{q}, counters, provider, cfg, "hmac-secret", zap.NewNop())
}

func priceItems(priceID string) billing.Items {
	return billing.Items{Data: []billing.Item{{Price: billing.Price{ID: priceID}}}}
}

func TestCreateCheckoutSession(t *testing.T) {
	user := repository.User{ID: mustUUID(testUserID), Email: sp("mp@example.ca")}

	t.Run("price not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cfg := testStripeConfig()
		cfg.PriceID = ""
		svc := newBillingService(mockdb.NewMockQuerier(ctrl), counter.NewMemory(), stubProvider{}, cfg)

		_, err := svc.CreateCheckoutSession(context.Background(), user)
		require.ErrorIs(t, err, service.ErrPriceNotConfigured)
	})

	t.Run("redirect urls not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cfg := testStripeConfig()
		cfg.CheckoutCancelURL = ""
		svc := newBillingService(mockdb.NewMockQuerier(ctrl), counter.NewMemory(), stubProvider{}, cfg)

		_, err := svc.CreateCheckoutSession(context.Background(), user)
		require.ErrorIs(t, err, service.ErrCheckoutURLsNotConfigured)
	})

	t.Run("creates and persists a customer on first checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := mockdb.NewMockQuerier(ctrl)
		q.EXPECT().GetBillingByUserID(gomock.Any(), user.ID).Return(repository.Billing{}, pgx.ErrNoRows)
		q.EXPECT().CreateBilling(gomock.Any(), repository.CreateBillingParams{
			UserID:           user.ID,
			StripeCustomerID: sp("cus_123"),
		}).Return(repository.Billing{UserID: user.ID, StripeCustomerID: sp("cus_123")}, nil)

		provider := stubProvider{
			createCustomer: func(_ context.Context, email *string, userID string) (billing.Customer, error) {
				require.NotNil(t, email)
				assert.Equal(t, "mp@example.ca", *email)
				assert.Equal(t, testUserID, userID)
				return billing.Customer{ID: "cus_123"}, nil
			},
			createCheckout: func(_ context.Context, arg billing.CheckoutParams) (billing.CheckoutSession, error) {
				assert.Equal(t, "price_basic", arg.PriceID)
				assert.Equal(t, "https://canpoli.ca/billing/success", arg.SuccessURL)
				assert.Equal(t, "https://canpoli.ca/billing/cancel", arg.CancelURL)
				assert.Equal(t, "cus_123", arg.CustomerID)
				assert.Equal(t, testUserID, arg.UserID)
				return billing.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/cs_1"}, nil
			},
		}

		svc := newBillingService(q, counter.NewMemory(), provider, testStripeConfig())
		url, err := svc.CreateCheckoutSession(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, "https://checkout.stripe.com/c/cs_1", url)
	})

	t.Run("backfills a billing row missing its customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := mockdb.NewMockQuerier(ctrl)
		q.EXPECT().GetBillingByUserID(gomock.Any(), user.ID).Return(repository.Billing{UserID: user.ID}, nil)
		q.EXPECT().UpdateBilling(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, arg repository.UpdateBillingParams) (repository.Billing, error) {
				require.NotNil(t, arg.StripeCustomerID)
				assert.Equal(t, "cus_456", *arg.StripeCustomerID)
				return repository.Billing{UserID: arg.UserID, StripeCustomerID: arg.StripeCustomerID}, nil
			})

		provider := stubProvider{
			createCustomer: func(_ context.Context, _ *string, _ string) (billing.Customer, error) {
				return billing.Customer{ID: "cus_456"}, nil
			},
			createCheckout: func(_ context.Context, arg billing.CheckoutParams) (billing.CheckoutSession, error) {
				assert.Equal(t, "cus_456", arg.CustomerID)
				return billing.CheckoutSession{URL: "https://checkout.stripe.com/c/cs_2"}, nil
			},
		}

		svc := newBillingService(q, counter.NewMemory(), provider, testStripeConfig())
		url, err := svc.CreateCheckoutSession(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, "https://checkout.stripe.com/c/cs_2", url)
	})

	t.Run("reuses the stored customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := mockdb.NewMockQuerier(ctrl)
		q.EXPECT().GetBillingByUserID(gomock.Any(), user.ID).Return(repository.Billing{
			UserID:           user.ID,
			StripeCustomerID: sp("cus_789"),
		}, nil)

		provider := stubProvider{
			createCheckout: func(_ context.Context, arg billing.CheckoutParams) (billing.CheckoutSession, error) {
				assert.Equal(t, "cus_789", arg.CustomerID)
				return billing.CheckoutSession{URL: "https://checkout.stripe.com/c/cs_3"}, nil
			},
		}

		svc := newBillingService(q, counter.NewMemory(), provider, testStripeConfig())
		url, err := svc.CreateCheckoutSession(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, "https://checkout.stripe.com/c/cs_3", url)
	})
}

func TestCreatePortalSession(t *testing.T) {
	userID := mustUUID(testUserID)

	t.Run("return url not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cfg := testStripeConfig()
		cfg.PortalReturnURL = ""
		svc := newBillingService(mockdb.NewMockQuerier(ctrl), counter.NewMemory(), stubProvider{}, cfg)

		_, err := svc.CreatePortalSession(context.Background(), userID)
		require.ErrorIs(t, err, service.ErrPortalURLNotConfigured)
	})

	t.Run("no billing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := mockdb.NewMockQuerier(ctrl)
		q.EXPECT().GetBillingByUserID(gomock.Any(), userID).Return(repository.Billing{}, pgx.ErrNoRows)

		svc := newBillingService(q, counter.NewMemory(), stubProvider{}, testStripeConfig())
		_, err := svc.CreatePortalSession(context.Background(), userID)
		require.ErrorIs(t, err, service.ErrCustomerNotFound)
	})

	t.Run("billing without a customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := mockdb.NewMockQuerier(ctrl)
		q.EXPECT().GetBillingByUserID(gomock.Any(), userID).Return(repository.Billing{UserID: userID}, nil)

		svc := newBillingService(q, counter.NewMemory(), stubProvider{}, testStripeConfig())
		_, err := svc.CreatePortalSession(context.Background(), userID)
		require.ErrorIs(t, err, service.ErrCustomerNotFound)
	})

	t.Run("opens the portal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := mockdb.NewMockQuerier(ctrl)
		q.EXPECT().GetBillingByUserID(gomock.Any(), userID).Return(repository.Billing{
			UserID:           userID,
			StripeCustomerID: sp("cus_123"),
		}, nil)

		provider := stubProvider{
			createPortal: func(_ context.Context, customerID, returnURL string) (billing.PortalSession, error) {
				assert.Equal(t, "cus_123", customerID)
				assert.Equal(t, "https://canpoli.ca/account", returnURL)
				return billing.PortalSession{URL: "https://billing.stripe.com/p/session_1"}, nil
			},
		}

		svc := newBillingService(q, counter.NewMemory(), provider, testStripeConfig())
		url, err := svc.CreatePortalSession(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, "https://billing.stripe.com/p/session_1", url)
	})
}

func TestHandleWebhookCheckoutCompleted(t *testing.T) {
	userID := mustUUID(testUserID)
	periodStart := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	checkoutObject := billing.EventObject{
		ID:                "cs_test_1",
		Customer:          sp("cus_123"),
		Subscription:      sp("sub_123"),
		ClientReferenceID: sp(testUserID),
	}

	activeSubscription := billing.Subscription{
		ID:                 "sub_123",
		Status:             "active",
		CurrentPeriodStart: i64(periodStart.Unix()),
		CurrentPeriodEnd:   i64(periodEnd.Unix()),
		Items:              priceItems("price_basic"),
	}

	t.Run("mints a key for a new subscriber and stashes the plaintext", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var created repository.CreateApiKeyParams

		q := mockdb.NewMockQuerier(ctrl)
		q.EXPECT().GetBillingByUserID(gomock.Any(), userID).Return(repository.Billing{}, pgx.ErrNoRows)
		q.EXPECT().CreateBilling(gomock.Any(), repository.CreateBillingParams{UserID: userID}).
			Return(repository.Billing{UserID: userID}, nil)
		q.EXPECT().UpdateBilling(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, arg repository.UpdateBillingParams) (repository.Billing, error) {
				require.NotNil(t, arg.StripeCustomerID)
				assert.Equal(t, "cus_123", *arg.StripeCustomerID)
				require.NotNil(t, arg.StripeSubscriptionID)
				assert.Equal(t, "sub_123", *arg.StripeSubscriptionID)
				require.NotNil(t, arg.Status)
				assert.Equal(t, "active", *arg.Status)
				require.NotNil(t, arg.PriceID)
				assert.Equal(t, "price_basic", *arg.PriceID)
				assert.True(t, arg.CurrentPeriodStart.Time.Equal(periodStart))
				assert.True(t, arg.CurrentPeriodEnd.Time.Equal(periodEnd))
				return repository.Billing{
					UserID:               arg.UserID,
					StripeCustomerID:     arg.StripeCustomerID,
					StripeSubscriptionID: arg.StripeSubscriptionID,
					Status:               arg.Status,
					PriceID:              arg.PriceID,
					CurrentPeriodStart:   arg.CurrentPeriodStart,
					CurrentPeriodEnd:     arg.CurrentPeriodEnd,
				}, nil
			})
		q.EXPECT().GetActiveApiKeyForUser(gomock.Any(), userID).Return(repository.ApiKey{}, pgx.ErrNoRows)
		q.EXPECT().CreateApiKey(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, arg repository.CreateApiKeyParams) (repository.ApiKey, error) {
				created = arg
				return repository.ApiKey{ID: arg.ID, UserID: arg.UserID, KeyPrefix: arg.KeyPrefix, KeyHash: arg.KeyHash, Active: arg.Active}, nil
			})

		provider := stubProvider{
			getSubscription: func(_ context.Context, id string) (billing.Subscription, error) {
				assert.Equal(t, "sub_123", id)
				return activeSubscription, nil
			},
		}

		ctx := context.Background()
		counters := counter.NewMemory()
		svc := newBillingService(q, counters, provider, testStripeConfig())
		require.NoError(t, svc.HandleWebhook(ctx, newEvent("checkout.session.completed", checkoutObject)))

		assert.Equal(t, userID, created.UserID)
		assert.True(t, created.Active)

		plaintext, err := counters.Get(ctx, fmt.Sprintf(counter.RevealKeyFmt, testUserID))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(plaintext, "cpk_live_"))
		assert.Equal(t, apikey.DisplayPrefix(plaintext), created.KeyPrefix)
		assert.Equal(t, apikey.Hash("hmac-secret", plaintext), created.KeyHash)
	})

	t.Run("mints an inactive key when the subscription is incomplete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var created repository.CreateApiKeyParams

		q := mockdb.NewMockQuerier(ctrl)
		q.EXPECT().GetBillingByUserID(gomock.Any(), userID).Return(repository.Billing{UserID: userID}, nil)
		q.EXPECT().UpdateBilling(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, arg repository.UpdateBillingParams) (repository.Billing, error) {
				return repository.Billing{UserID: arg.UserID, Status: arg.Status}, nil
			})
		q.EXPECT().GetActiveApiKeyForUser(gomock.Any(), userID).Return(repository.ApiKey{}, pgx.ErrNoRows)
		q.EXPECT().CreateApiKey(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, arg repository.CreateApiKeyParams) (repository.ApiKey, error) {
				created = arg
				return repository.ApiKey{ID: arg.ID, Active: arg.Active}, nil
			})

		incomplete := activeSubscription
		incomplete.Status = "incomplete"
		provider := stubProvider{
			getSubscription: func(_ context.Context, _ string) (billing.Subscription, error) {
				return incomplete, nil
			},
		}

		svc := newBillingService(q, counter.NewMemory(), provider, testStripeConfig())
		require.NoError(t, svc.HandleWebhook(context.Background(), newEvent("checkout.session.completed", checkoutObject)))
		assert.False(t, created.Active)
	})

	t.Run("syncs the flag on an existing key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		keyID := newTestUUID(9)

		q := mockdb.NewMockQuerier(ctrl)
		q.EXPECT().GetBillingByUserID(gomock.Any(), userID).Return(repository.Billing{UserID: userID}, nil)
		q.EXPECT().UpdateBilling(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, arg repository.UpdateBillingParams) (repository.Billing, error) {
				return repository.Billing{UserID: arg.UserID, Status: arg.Status}, nil
			})
		q.EXPECT().GetActiveApiKeyForUser(gomock.Any(), userID).Return(repository.ApiKey{ID: keyID, UserID: userID, Active: true}, nil)
		q.EXPECT().SetApiKeyActive(gomock.Any(), repository.SetApiKeyActiveParams{ID: keyID, Active: true}).Return(nil)

		provider := stubProvider{
			getSubscription: func(_ context.Context, _ string) (billing.Subscription, error) {
				return activeSubscription, nil
			},
		}

		svc := newBillingService(q, counter.NewMemory(), provider, testStripeConfig())
		require.NoError(t, svc.HandleWebhook(context.Background(), newEvent("checkout.session.completed", checkoutObject)))
	})

	t.Run("acknowledges a session without a user reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := mockdb.NewMockQuerier(ctrl)
		svc := newBillingService(q, counter.NewMemory(), stubProvider{}, testStripeConfig())

		obj := billing.EventObject{ID: "cs_test_2", Customer: sp("cus_123")}
		require.NoError(t, svc.HandleWebhook(context.Background(), newEvent("checkout.session.completed", obj)))
	})

	t.Run("acknowledges a malformed user reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := mockdb.NewMockQuerier(ctrl)
		svc := newBillingService(q, counter.NewMemory(), stubProvider{}, testStripeConfig())

		obj := billing.EventObject{ID: "cs_test_3", ClientReferenceID: sp("not-a-uuid")}
		require.NoError(t, svc.HandleWebhook(context.Background(), newEvent("checkout.session.completed", obj)))
	})
}

func TestHandleWebhookSubscriptionChanged(t *testing.T) {
	userID := mustUUID(testUserID)
	keyID := newTestUUID(9)
	periodStart := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	tests := []struct {
		name       string
		eventType  string
		status     string
		wantActive bool
	}{
		{"cancellation deactivates the key", "customer.subscription.updated", "canceled", false},
		{"past_due deactivates the key", "customer.subscription.updated", "past_due", false},
		{"trialing keeps the key active", "customer.subscription.updated", "trialing", true},
		{"deletion deactivates the key", "customer.subscription.deleted", "canceled", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			q := mockdb.NewMockQuerier(ctrl)
			q.EXPECT().GetBillingByCustomerID(gomock.Any(), "cus_123").Return(repository.Billing{
				UserID:               userID,
				StripeCustomerID:     sp("cus_123"),
				StripeSubscriptionID: sp("sub_old"),
				Status:               sp("active"),
			}, nil)
			q.EXPECT().UpdateBilling(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, arg repository.UpdateBillingParams) (repository.Billing, error) {
					require.NotNil(t, arg.StripeSubscriptionID)
					assert.Equal(t, "sub_123", *arg.StripeSubscriptionID)
					require.NotNil(t, arg.Status)
					assert.Equal(t, tc.status, *arg.Status)
					require.NotNil(t, arg.PriceID)
					assert.Equal(t, "price_basic", *arg.PriceID)
					assert.True(t, arg.CurrentPeriodStart.Time.Equal(periodStart))
					assert.True(t, arg.CurrentPeriodEnd.Time.Equal(periodEnd))
					return repository.Billing{UserID: arg.UserID, Status: arg.Status}, nil
				})
			q.EXPECT().GetActiveApiKeyForUser(gomock.Any(), userID).Return(repository.ApiKey{ID: keyID, UserID: userID, Active: true}, nil)
			q.EXPECT().SetApiKeyActive(gomock.Any(), repository.SetApiKeyActiveParams{ID: keyID, Active: tc.wantActive}).Return(nil)

			obj := billing.EventObject{
				ID:                 "sub_123",
				Customer:           sp("cus_123"),
				Status:             sp(tc.status),
				Items:              priceItems("price_basic"),
				CurrentPeriodStart: i64(periodStart.Unix()),
				CurrentPeriodEnd:   i64(periodEnd.Unix()),
			}

			svc := newBillingService(q, counter.NewMemory(), stubProvider{}, testStripeConfig())
			require.NoError(t, svc.HandleWebhook(context.Background(), newEvent(tc.eventType, obj)))
		})
	}

	t.Run("acknowledges an unknown customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := mockdb.NewMockQuerier(ctrl)
		q.EXPECT().GetBillingByCustomerID(gomock.Any(), "cus_unknown").Return(repository.Billing{}, pgx.ErrNoRows)

		obj := billing.EventObject{ID: "sub_123", Customer: sp("cus_unknown"), Status: sp("canceled")}
		svc := newBillingService(q, counter.NewMemory(), stubProvider{}, testStripeConfig())
		require.NoError(t, svc.HandleWebhook(context.Background(), newEvent("customer.subscription.updated", obj)))
	})

	t.Run("acknowledges an event without a customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := mockdb.NewMockQuerier(ctrl)
		obj := billing.EventObject{ID: "sub_123", Status: sp("canceled")}
		svc := newBillingService(q, counter.NewMemory(), stubProvider{}, testStripeConfig())
		require.NoError(t, svc.HandleWebhook(context.Background(), newEvent("customer.subscription.updated", obj)))
	})

	t.Run("tolerates a subscriber with no key yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := mockdb.NewMockQuerier(ctrl)
		q.EXPECT().GetBillingByCustomerID(gomock.Any(), "cus_123").Return(repository.Billing{
			UserID:           userID,
			StripeCustomerID: sp("cus_123"),
		}, nil)
		q.EXPECT().UpdateBilling(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, arg repository.UpdateBillingParams) (repository.Billing, error) {
				return repository.Billing{UserID: arg.UserID, Status: arg.Status}, nil
			})
		q.EXPECT().GetActiveApiKeyForUser(gomock.Any(), userID).Return(repository.ApiKey{}, pgx.ErrNoRows)

		obj := billing.EventObject{ID: "sub_123", Customer: sp("cus_123"), Status: sp("active")}
		svc := newBillingService(q, counter.NewMemory(), stubProvider{}, testStripeConfig())
		require.NoError(t, svc.HandleWebhook(context.Background(), newEvent("customer.subscription.updated", obj)))
	})
}

func TestHandleWebhookIgnoresOtherEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := mockdb.NewMockQuerier(ctrl)
	svc := newBillingService(q, counter.NewMemory(), stubProvider{}, testStripeConfig())

	obj := billing.EventObject{ID: "in_123", Customer: sp("cus_123")}
	require.NoError(t, svc.HandleWebhook(context.Background(), newEvent("invoice.paid", obj)))
}
