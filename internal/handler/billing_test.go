package handler_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/BradleyExton/canpoli-api/internal/billing"
	"github.com/BradleyExton/canpoli-api/internal/counter"
	"github.com/BradleyExton/canpoli-api/internal/repository"
	mockdb "github.com/BradleyExton/canpoli-api/internal/repository/mock"
)

// ── POST /v1/billing/checkout ───────────────────────────────────────────

func TestCheckoutCreatesCustomerOnFirstPurchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := newUUID(0x22)

	provider := stubProvider{
		createCustomer: func(_ context.Context, _ *string, uid string) (billing.Customer, error) {
			assert.Equal(t, uuidStr(userID), uid)
			return billing.Customer{ID: "cus_123"}, nil
		},
		createCheckout: func(_ context.Context, arg billing.CheckoutParams) (billing.CheckoutSession, error) {
			assert.Equal(t, "price_pro_monthly", arg.PriceID)
			assert.Equal(t, "cus_123", arg.CustomerID)
			assert.Equal(t, uuidStr(userID), arg.UserID)
			assert.Equal(t, "https://canpoli.ca/billing/success", arg.SuccessURL)
			assert.Equal(t, "https://canpoli.ca/billing/cancel", arg.CancelURL)
			return billing.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/cs_1"}, nil
		},
	}

	q := mockdb.NewMockQuerier(ctrl)
	q.EXPECT().GetBillingByUserID(gomock.Any(), userID).Return(repository.Billing{}, pgx.ErrNoRows)
	q.EXPECT().
		CreateBilling(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.CreateBillingParams) (repository.Billing, error) {
			assert.Equal(t, userID, arg.UserID)
			require.NotNil(t, arg.StripeCustomerID)
			assert.Equal(t, "cus_123", *arg.StripeCustomerID)
			return repository.Billing{UserID: arg.UserID, StripeCustomerID: arg.StripeCustomerID}, nil
		})

	e := authedAPI(t, q, counter.NewMemory(), testConfig(), provider, userID, 1)
	rec := serve(e, authedRequest(http.MethodPost, "/v1/billing/checkout"))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "https://checkout.stripe.com/c/cs_1", decode(t, rec)["url"])
}

func TestCheckoutWithoutPriceConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := newUUID(0x22)
	cfg := testConfig()
	cfg.Stripe.PriceID = ""

	e := authedAPI(t, mockdb.NewMockQuerier(ctrl), counter.NewMemory(), cfg, stubProvider{}, userID, 1)
	rec := serve(e, authedRequest(http.MethodPost, "/v1/billing/checkout"))

	requireDetail(t, rec, http.StatusInternalServerError, "Stripe price is not configured")
}

// ── POST /v1/billing/portal ─────────────────────────────────────────────

func TestPortalSessionForExistingCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := newUUID(0x22)

	provider := stubProvider{
		createPortal: func(_ context.Context, customerID, returnURL string) (billing.PortalSession, error) {
			assert.Equal(t, "cus_123", customerID)
			assert.Equal(t, "https://canpoli.ca/account", returnURL)
			return billing.PortalSession{ID: "bps_1", URL: "https://billing.stripe.com/p/session_1"}, nil
		},
	}

	q := mockdb.NewMockQuerier(ctrl)
	q.EXPECT().
		GetBillingByUserID(gomock.Any(), userID).
		Return(repository.Billing{UserID: userID, StripeCustomerID: sp("cus_123")}, nil)

	e := authedAPI(t, q, counter.NewMemory(), testConfig(), provider, userID, 1)
	rec := serve(e, authedRequest(http.MethodPost, "/v1/billing/portal"))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "https://billing.stripe.com/p/session_1", decode(t, rec)["url"])
}

func TestPortalWithoutStripeCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := newUUID(0x22)

	q := mockdb.NewMockQuerier(ctrl)
	q.EXPECT().
		GetBillingByUserID(gomock.Any(), userID).
		Return(repository.Billing{UserID: userID}, nil)

	e := authedAPI(t, q, counter.NewMemory(), testConfig(), stubProvider{}, userID, 1)
	rec := serve(e, authedRequest(http.MethodPost, "/v1/billing/portal"))

	requireDetail(t, rec, http.StatusNotFound, "Stripe customer not found")
}

// ── POST /billing/webhook ───────────────────────────────────────────────

func webhookRequest(payload []byte, header string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/billing/webhook", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if header != "" {
		req.Header.Set("Stripe-Signature", header)
	}
	return req
}

func TestWebhookRejectsMissingSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := newDataAPI(t, mockdb.NewMockQuerier(ctrl))
	rec := serve(e, webhookRequest([]byte(`{}`), ""))

	requireDetail(t, rec, http.StatusBadRequest, "Missing Stripe signature")
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := newDataAPI(t, mockdb.NewMockQuerier(ctrl))
	rec := serve(e, webhookRequest([]byte(`{}`), "t=1700000000,v1=deadbeef"))

	requireDetail(t, rec, http.StatusBadRequest, "Invalid Stripe signature")
}

func TestWebhookWithoutSecretConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.Stripe.WebhookSecret = ""
	e := newHandler(t, mockdb.NewMockQuerier(ctrl), counter.NewMemory(), cfg, stubVerifier{}, stubProvider{})

	rec := serve(e, webhookRequest([]byte(`{}`), "t=1,v1=00"))

	requireDetail(t, rec, http.StatusInternalServerError, "Stripe webhook secret not configured")
}

func TestWebhookSubscriptionUpdatedSyncsBillingAndKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := newUUID(0x22)
	keyID := newUUID(0x11)
	periodStart := int64(1754006400)
	periodEnd := int64(1756684800)

	payload := []byte(`{
		"id": "evt_1",
		"type": "customer.subscription.updated",
		"data": {"object": {
			"id": "sub_9",
			"customer": "cus_123",
			"status": "active",
			"items": {"data": [{"price": {"id": "price_pro_monthly"}}]},
			"current_period_start": 1754006400,
			"current_period_end": 1756684800
		}}
	}`)

	q := mockdb.NewMockQuerier(ctrl)
	q.EXPECT().
		GetBillingByCustomerID(gomock.Any(), "cus_123").
		Return(repository.Billing{UserID: userID, StripeCustomerID: sp("cus_123")}, nil)
	q.EXPECT().
		UpdateBilling(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.UpdateBillingParams) (repository.Billing, error) {
			require.NotNil(t, arg.StripeSubscriptionID)
			assert.Equal(t, "sub_9", *arg.StripeSubscriptionID)
			require.NotNil(t, arg.Status)
			assert.Equal(t, "active", *arg.Status)
			require.NotNil(t, arg.PriceID)
			assert.Equal(t, "price_pro_monthly", *arg.PriceID)
			require.True(t, arg.CurrentPeriodStart.Valid)
			assert.Equal(t, periodStart, arg.CurrentPeriodStart.Time.Unix())
			require.True(t, arg.CurrentPeriodEnd.Valid)
			assert.Equal(t, periodEnd, arg.CurrentPeriodEnd.Time.Unix())
			return repository.Billing{UserID: arg.UserID, Status: arg.Status}, nil
		})
	q.EXPECT().
		GetActiveApiKeyForUser(gomock.Any(), userID).
		Return(repository.ApiKey{ID: keyID, UserID: userID, Active: false}, nil)
	q.EXPECT().
		SetApiKeyActive(gomock.Any(), repository.SetApiKeyActiveParams{ID: keyID, Active: true}).
		Return(nil)

	e := newDataAPI(t, q)
	header := billing.SignatureHeader(payload, "whsec_test", time.Now())
	rec := serve(e, webhookRequest(payload, header))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, decode(t, rec)["received"])
}

func TestWebhookIgnoresUnhandledEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payload := []byte(`{"id": "evt_2", "type": "invoice.paid", "data": {"object": {"id": "in_1"}}}`)

	e := newDataAPI(t, mockdb.NewMockQuerier(ctrl))
	header := billing.SignatureHeader(payload, "whsec_test", time.Now())
	rec := serve(e, webhookRequest(payload, header))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, decode(t, rec)["received"])
}
