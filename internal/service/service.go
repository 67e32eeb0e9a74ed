// Package service implements the account, billing and identity flows on top
// of the repository, the counter store and the Stripe provider.
package service

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/BradleyExton/canpoli-api/internal/repository"
)

const authProviderClerk = "clerk"

// SubscriptionActive is the only billing-status distinction the platform
// makes: active and trialing subscribers are paid, everything else is not.
// The access middleware shares it to decide whether a key is backed by a
// live subscription.
func SubscriptionActive(status *string) bool {
	if status == nil {
		return false
	}
	switch *status {
	case "active", "trialing":
		return true
	}
	return false
}

func newUUID() pgtype.UUID {
	id, _ := uuid.NewV7()
	return pgtype.UUID{Bytes: id, Valid: true}
}

func uuidString(u pgtype.UUID) string {
	return uuid.UUID(u.Bytes).String()
}

func parseUUID(s string) (pgtype.UUID, error) {
	var u pgtype.UUID
	err := u.Scan(s)
	return u, err
}

// billingUpdateParams writes the whole mutable row back. Webhook handlers
// load the row, apply the fields the event carries and persist it whole.
func billingUpdateParams(b repository.Billing) repository.UpdateBillingParams {
	return repository.UpdateBillingParams{
		UserID:               b.UserID,
		StripeCustomerID:     b.StripeCustomerID,
		StripeSubscriptionID: b.StripeSubscriptionID,
		Status:               b.Status,
		PriceID:              b.PriceID,
		CurrentPeriodStart:   b.CurrentPeriodStart,
		CurrentPeriodEnd:     b.CurrentPeriodEnd,
	}
}
