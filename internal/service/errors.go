package service

import "errors"

// Sentinel errors the HTTP layer maps onto status codes. The messages are
// the wire-visible detail strings.
var (
	ErrAPIKeyNotFound            = errors.New("API key not found")
	ErrHashingNotConfigured      = errors.New("API key hashing not configured")
	ErrSubscriptionInactive      = errors.New("Subscription inactive")
	ErrNoBillingPeriod           = errors.New("No active billing period")
	ErrPriceNotConfigured        = errors.New("Stripe price is not configured")
	ErrCheckoutURLsNotConfigured = errors.New("Checkout URLs are not configured")
	ErrPortalURLNotConfigured    = errors.New("Portal return URL is not configured")
	ErrCustomerNotFound          = errors.New("Stripe customer not found")
)
