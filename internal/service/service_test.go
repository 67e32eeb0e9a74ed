package service_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/BradleyExton/canpoli-api/internal/billing"
	"github.com/BradleyExton/canpoli-api/internal/repository"
)

// fakeStore runs transaction bodies directly against the wrapped querier.
type fakeStore struct {
	repository.Querier
}

func (s fakeStore) WithTransaction(_ context.Context, fn func(repository.Querier) error) error {
	return fn(s.Querier)
}

// stubProvider satisfies billing.Provider with per-test function fields. A
// nil field makes the call fail, which surfaces as a service error.
type stubProvider struct {
	createCustomer  func(ctx context.Context, email *string, userID string) (billing.Customer, error)
	createCheckout  func(ctx context.Context, arg billing.CheckoutParams) (billing.CheckoutSession, error)
	createPortal    func(ctx context.Context, customerID, returnURL string) (billing.PortalSession, error)
	getSubscription func(ctx context.Context, id string) (billing.Subscription, error)
}

func (s stubProvider) CreateCustomer(ctx context.Context, email *string, userID string) (billing.Customer, error) {
	if s.createCustomer == nil {
		return billing.Customer{}, errors.New("unexpected CreateCustomer call")
	}
	return s.createCustomer(ctx, email, userID)
}

func (s stubProvider) CreateCheckoutSession(ctx context.Context, arg billing.CheckoutParams) (billing.CheckoutSession, error) {
	if s.createCheckout == nil {
		return billing.CheckoutSession{}, errors.New("unexpected CreateCheckoutSession call")
	}
	return s.createCheckout(ctx, arg)
}

func (s stubProvider) CreatePortalSession(ctx context.Context, customerID, returnURL string) (billing.PortalSession, error) {
	if s.createPortal == nil {
		return billing.PortalSession{}, errors.New("unexpected CreatePortalSession call")
	}
	return s.createPortal(ctx, customerID, returnURL)
}

func (s stubProvider) GetSubscription(ctx context.Context, id string) (billing.Subscription, error) {
	if s.getSubscription == nil {
		return billing.Subscription{}, errors.New("unexpected GetSubscription call")
	}
	return s.getSubscription(ctx, id)
}

// mustUUID builds a pgtype.UUID whose string form is known to the test.
func mustUUID(s string) pgtype.UUID {
	return pgtype.UUID{Bytes: uuid.MustParse(s), Valid: true}
}

func newTestUUID(val byte) pgtype.UUID {
	var id [16]byte
	id[0] = val
	return pgtype.UUID{Bytes: id, Valid: true}
}

func sp(s string) *string { return &s }
func i64(v int64) *int64  { return &v }

func newEvent(eventType string, obj billing.EventObject) billing.Event {
	ev := billing.Event{ID: "evt_test", Type: eventType}
	ev.Data.Object = obj
	return ev
}
