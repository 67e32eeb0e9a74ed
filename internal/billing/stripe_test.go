package billing_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BradleyExton/canpoli-api/internal/billing"
)

func TestCreateCheckoutSessionEncodesForm(t *testing.T) {
	var gotAuth string
	var gotForm map[string]string

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/checkout/sessions", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{}
		for k := range r.PostForm {
			gotForm[k] = r.PostForm.Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "cs_test_1", "url": "https://checkout.stripe.com/pay/cs_test_1"}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := billing.NewStripeClient(server.URL, "sk_test_secret")
	session, err := client.CreateCheckoutSession(context.Background(), billing.CheckoutParams{
		PriceID:    "price_123",
		SuccessURL: "https://app.example.com/success",
		CancelURL:  "https://app.example.com/cancel",
		CustomerID: "cus_42",
		UserID:     "user-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_1", session.URL)
	assert.Equal(t, "Bearer sk_test_secret", gotAuth)
	assert.Equal(t, "subscription", gotForm["mode"])
	assert.Equal(t, "price_123", gotForm["line_items[0][price]"])
	assert.Equal(t, "1", gotForm["line_items[0][quantity]"])
	assert.Equal(t, "cus_42", gotForm["customer"])
	assert.Equal(t, "user-1", gotForm["client_reference_id"])
	assert.Equal(t, "user-1", gotForm["metadata[user_id]"])
}

func TestCreateCustomerOmitsEmptyEmail(t *testing.T) {
	var hasEmail bool
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/customers", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		_, hasEmail = r.PostForm["email"]
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "cus_7"}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := billing.NewStripeClient(server.URL, "sk_test_secret")
	customer, err := client.CreateCustomer(context.Background(), nil, "user-7")
	require.NoError(t, err)

	assert.Equal(t, "cus_7", customer.ID)
	assert.False(t, hasEmail)
}

func TestGetSubscriptionDecodesNestedPrice(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/subscriptions/sub_9", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "sub_9",
			"status": "active",
			"current_period_start": 1750000000,
			"current_period_end": 1752592000,
			"items": {"data": [{"price": {"id": "price_123"}}]}
		}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := billing.NewStripeClient(server.URL, "sk_test_secret")
	sub, err := client.GetSubscription(context.Background(), "sub_9")
	require.NoError(t, err)

	assert.Equal(t, "active", sub.Status)
	require.NotNil(t, sub.CurrentPeriodStart)
	assert.Equal(t, int64(1750000000), *sub.CurrentPeriodStart)
	require.NotNil(t, sub.Items.PriceID())
	assert.Equal(t, "price_123", *sub.Items.PriceID())
}

func TestStripeErrorStatusSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "No such customer"}}`, http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	client := billing.NewStripeClient(server.URL, "sk_test_secret")
	_, err := client.CreatePortalSession(context.Background(), "cus_missing", "https://app.example.com/account")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestParseEventResolvesUserID(t *testing.T) {
	payload := []byte(`{
		"id": "evt_1",
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": "cs_1",
			"customer": "cus_42",
			"subscription": "sub_9",
			"metadata": {"user_id": "meta-user"}
		}}
	}`)

	ev, err := billing.ParseEvent(payload)
	require.NoError(t, err)

	assert.Equal(t, "checkout.session.completed", ev.Type)
	assert.Equal(t, "meta-user", ev.Data.Object.UserID())
	require.NotNil(t, ev.Data.Object.Customer)
	assert.Equal(t, "cus_42", *ev.Data.Object.Customer)

	ref := "ref-user"
	obj := ev.Data.Object
	obj.ClientReferenceID = &ref
	assert.Equal(t, "ref-user", obj.UserID())
}

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"id": "evt_1"}`)
	secret := "whsec_test"

	header := billing.SignatureHeader(payload, secret, time.Now())
	assert.NoError(t, billing.VerifySignature(payload, header, secret, billing.DefaultTolerance))

	assert.ErrorIs(t, billing.VerifySignature(payload, "", secret, billing.DefaultTolerance), billing.ErrMissingSignature)

	wrongSecret := billing.SignatureHeader(payload, "whsec_other", time.Now())
	assert.ErrorIs(t, billing.VerifySignature(payload, wrongSecret, secret, billing.DefaultTolerance), billing.ErrInvalidSignature)

	stale := billing.SignatureHeader(payload, secret, time.Now().Add(-time.Hour))
	assert.ErrorIs(t, billing.VerifySignature(payload, stale, secret, billing.DefaultTolerance), billing.ErrInvalidSignature)

	tampered := billing.SignatureHeader([]byte(`{"id": "evt_2"}`), secret, time.Now())
	assert.ErrorIs(t, billing.VerifySignature(payload, tampered, secret, billing.DefaultTolerance), billing.ErrInvalidSignature)
}
