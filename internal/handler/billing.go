package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/BradleyExton/canpoli-api/internal/billing"
	"github.com/BradleyExton/canpoli-api/internal/service"
)

type sessionURLResponse struct {
	URL string `json:"url"`
}

func (h *Handler) createCheckoutSession(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return errResponse(c, http.StatusUnauthorized, "Missing bearer token")
	}

	url, err := h.billing.CreateCheckoutSession(c.Request().Context(), user)
	switch {
	case errors.Is(err, service.ErrPriceNotConfigured):
		return errResponse(c, http.StatusInternalServerError, service.ErrPriceNotConfigured.Error())
	case errors.Is(err, service.ErrCheckoutURLsNotConfigured):
		return errResponse(c, http.StatusInternalServerError, service.ErrCheckoutURLsNotConfigured.Error())
	case err != nil:
		return h.serverError(c, "create checkout session", err)
	}

	return c.JSON(http.StatusOK, sessionURLResponse{URL: url})
}

func (h *Handler) createPortalSession(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return errResponse(c, http.StatusUnauthorized, "Missing bearer token")
	}

	url, err := h.billing.CreatePortalSession(c.Request().Context(), user.ID)
	switch {
	case errors.Is(err, service.ErrPortalURLNotConfigured):
		return errResponse(c, http.StatusInternalServerError, service.ErrPortalURLNotConfigured.Error())
	case errors.Is(err, service.ErrCustomerNotFound):
		return errResponse(c, http.StatusNotFound, service.ErrCustomerNotFound.Error())
	case err != nil:
		return h.serverError(c, "create portal session", err)
	}

	return c.JSON(http.StatusOK, sessionURLResponse{URL: url})
}

// stripeWebhook verifies the delivery signature and hands the event to the
// billing reconciler. Verification and decode failures are indistinguishable
// on the wire.
func (h *Handler) stripeWebhook(c echo.Context) error {
	if h.cfg.Stripe.WebhookSecret == "" {
		return errResponse(c, http.StatusInternalServerError, "Stripe webhook secret not configured")
	}
	if h.cfg.APIKeyHMACSecret == "" {
		return errResponse(c, http.StatusInternalServerError, "API key hashing not configured")
	}

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errResponse(c, http.StatusBadRequest, "Unable to read request body")
	}

	sig := c.Request().Header.Get("Stripe-Signature")
	if sig == "" {
		return errResponse(c, http.StatusBadRequest, "Missing Stripe signature")
	}
	if err := billing.VerifySignature(payload, sig, h.cfg.Stripe.WebhookSecret, billing.DefaultTolerance); err != nil {
		return errResponse(c, http.StatusBadRequest, "Invalid Stripe signature")
	}

	event, err := billing.ParseEvent(payload)
	if err != nil {
		return errResponse(c, http.StatusBadRequest, "Invalid Stripe signature")
	}

	if err := h.billing.HandleWebhook(c.Request().Context(), event); err != nil {
		return h.serverError(c, "handle stripe webhook", err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}
