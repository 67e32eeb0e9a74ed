// Package billing integrates the Stripe subscription lifecycle: customer and
// hosted-session creation over the REST API, webhook signature verification
// and the event payloads the reconciler consumes.
package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the production Stripe REST endpoint.
const DefaultBaseURL = "https://api.stripe.com"

// Customer is the subset of the Stripe customer object the platform reads.
type Customer struct {
	ID    string  `json:"id"`
	Email *string `json:"email"`
}

// CheckoutSession is a hosted checkout session.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// PortalSession is a hosted billing-portal session.
type PortalSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Subscription is the subset of the Stripe subscription object that feeds
// the billing table.
type Subscription struct {
	ID                 string `json:"id"`
	Status             string `json:"status"`
	CurrentPeriodStart *int64 `json:"current_period_start"`
	CurrentPeriodEnd   *int64 `json:"current_period_end"`
	Items              Items  `json:"items"`
}

// Items wraps the item list nested inside subscription payloads.
type Items struct {
	Data []Item `json:"data"`
}

// Item is a single subscription line item.
type Item struct {
	Price Price `json:"price"`
}

// Price identifies the subscribed price.
type Price struct {
	ID string `json:"id"`
}

// PriceID returns the price id of the first item, or nil when the payload
// carries none.
func (i Items) PriceID() *string {
	if len(i.Data) == 0 || i.Data[0].Price.ID == "" {
		return nil
	}
	return &i.Data[0].Price.ID
}

// CheckoutParams describes a subscription checkout session. UserID travels
// as both client_reference_id and metadata so the completion webhook can
// resolve the platform user.
type CheckoutParams struct {
	PriceID    string
	SuccessURL string
	CancelURL  string
	CustomerID string
	UserID     string
}

// Provider is the billing surface the services depend on. Tests swap in a
// stub.
type Provider interface {
	CreateCustomer(ctx context.Context, email *string, userID string) (Customer, error)
	CreateCheckoutSession(ctx context.Context, arg CheckoutParams) (CheckoutSession, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (PortalSession, error)
	GetSubscription(ctx context.Context, id string) (Subscription, error)
}

// stripeClient is the production implementation backed by form-encoded
// requests against the Stripe REST API.
type stripeClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// NewStripeClient constructs a ready-to-use Provider.
//
//   - baseURL is the API root, normally DefaultBaseURL (no trailing slash).
//   - secretKey is the account's secret key, sent as a bearer token.
func NewStripeClient(baseURL, secretKey string) Provider {
	return &stripeClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *stripeClient) postForm(ctx context.Context, path string, form url.Values, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("stripe client: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	return c.do(req, dest)
}

func (c *stripeClient) getJSON(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("stripe client: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	return c.do(req, dest)
}

// do executes req and decodes a successful (2xx) response body into dest.
// Non-2xx status codes are treated as errors.
func (c *stripeClient) do(req *http.Request, dest any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("stripe client: http do: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("stripe client: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("stripe client: unexpected status %d: %s", resp.StatusCode, string(raw))
	}

	if dest != nil {
		if err := json.Unmarshal(raw, dest); err != nil {
			return fmt.Errorf("stripe client: unmarshal response: %w", err)
		}
	}
	return nil
}

// CreateCustomer registers a customer tagged with the platform user id.
func (c *stripeClient) CreateCustomer(ctx context.Context, email *string, userID string) (Customer, error) {
	form := url.Values{}
	if email != nil && *email != "" {
		form.Set("email", *email)
	}
	form.Set("metadata[user_id]", userID)

	var out Customer
	if err := c.postForm(ctx, "/v1/customers", form, &out); err != nil {
		return Customer{}, fmt.Errorf("CreateCustomer: %w", err)
	}
	return out, nil
}

// CreateCheckoutSession opens a subscription checkout for one seat of the
// configured price.
func (c *stripeClient) CreateCheckoutSession(ctx context.Context, arg CheckoutParams) (CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "subscription")
	form.Set("line_items[0][price]", arg.PriceID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", arg.SuccessURL)
	form.Set("cancel_url", arg.CancelURL)
	form.Set("customer", arg.CustomerID)
	form.Set("client_reference_id", arg.UserID)
	form.Set("metadata[user_id]", arg.UserID)

	var out CheckoutSession
	if err := c.postForm(ctx, "/v1/checkout/sessions", form, &out); err != nil {
		return CheckoutSession{}, fmt.Errorf("CreateCheckoutSession: %w", err)
	}
	return out, nil
}

// CreatePortalSession opens the self-serve billing portal for a customer.
func (c *stripeClient) CreatePortalSession(ctx context.Context, customerID, returnURL string) (PortalSession, error) {
	form := url.Values{}
	form.Set("customer", customerID)
	form.Set("return_url", returnURL)

	var out PortalSession
	if err := c.postForm(ctx, "/v1/billing_portal/sessions", form, &out); err != nil {
		return PortalSession{}, fmt.Errorf("CreatePortalSession: %w", err)
	}
	return out, nil
}

// GetSubscription fetches a subscription by id.
func (c *stripeClient) GetSubscription(ctx context.Context, id string) (Subscription, error) {
	var out Subscription
	if err := c.getJSON(ctx, "/v1/subscriptions/"+url.PathEscape(id), &out); err != nil {
		return Subscription{}, fmt.Errorf("GetSubscription: %w", err)
	}
	return out, nil
}
