package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const billingColumns = `user_id, stripe_customer_id, stripe_subscription_id, status, price_id,
  current_period_start, current_period_end, created_at, updated_at`

func scanBilling(row pgx.Row) (Billing, error) {
	var i Billing
	err := row.Scan(
		&i.UserID,
		&i.StripeCustomerID,
		&i.StripeSubscriptionID,
		&i.Status,
		&i.PriceID,
		&i.CurrentPeriodStart,
		&i.CurrentPeriodEnd,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getBillingByUserID = `
SELECT ` + billingColumns + `
FROM billing
WHERE user_id = $1
`

func (q *Queries) GetBillingByUserID(ctx context.Context, userID pgtype.UUID) (Billing, error) {
	return scanBilling(q.db.QueryRow(ctx, getBillingByUserID, userID))
}

const getBillingByCustomerID = `
SELECT ` + billingColumns + `
FROM billing
WHERE stripe_customer_id = $1
`

func (q *Queries) GetBillingByCustomerID(ctx context.Context, stripeCustomerID string) (Billing, error) {
	return scanBilling(q.db.QueryRow(ctx, getBillingByCustomerID, stripeCustomerID))
}

const createBilling = `
INSERT INTO billing (user_id, stripe_customer_id)
VALUES ($1, $2)
RETURNING ` + billingColumns + `
`

type CreateBillingParams struct {
	UserID           pgtype.UUID
	StripeCustomerID *string
}

func (q *Queries) CreateBilling(ctx context.Context, arg CreateBillingParams) (Billing, error) {
	return scanBilling(q.db.QueryRow(ctx, createBilling, arg.UserID, arg.StripeCustomerID))
}

// updateBilling writes every mutable column. Callers load the row, apply the
// fields the Stripe event carries, and write it back whole.
const updateBilling = `
UPDATE billing SET
  stripe_customer_id = $2,
  stripe_subscription_id = $3,
  status = $4,
  price_id = $5,
  current_period_start = $6,
  current_period_end = $7,
  updated_at = now()
WHERE user_id = $1
RETURNING ` + billingColumns + `
`

type UpdateBillingParams struct {
	UserID               pgtype.UUID
	StripeCustomerID     *string
	StripeSubscriptionID *string
	Status               *string
	PriceID              *string
	CurrentPeriodStart   pgtype.Timestamptz
	CurrentPeriodEnd     pgtype.Timestamptz
}

func (q *Queries) UpdateBilling(ctx context.Context, arg UpdateBillingParams) (Billing, error) {
	return scanBilling(q.db.QueryRow(ctx, updateBilling,
		arg.UserID,
		arg.StripeCustomerID,
		arg.StripeSubscriptionID,
		arg.Status,
		arg.PriceID,
		arg.CurrentPeriodStart,
		arg.CurrentPeriodEnd,
	))
}
