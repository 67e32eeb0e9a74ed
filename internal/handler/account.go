package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"

	"github.com/BradleyExton/canpoli-api/internal/service"
)

// apiKeyResponse masks the stored key. APIKey carries the plaintext exactly
// once, when a checkout-minted key is read for the first time.
type apiKeyResponse struct {
	APIKey     *string            `json:"api_key"`
	KeyPrefix  string             `json:"key_prefix"`
	MaskedKey  string             `json:"masked_key"`
	Active     bool               `json:"active"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	RevokedAt  pgtype.Timestamptz `json:"revoked_at"`
	LastUsedAt pgtype.Timestamptz `json:"last_used_at"`
}

type apiKeyRotateResponse struct {
	APIKey    string             `json:"api_key"`
	KeyPrefix string             `json:"key_prefix"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type usageResponse struct {
	UsageCount     int64              `json:"usage_count"`
	PeriodStart    pgtype.Timestamptz `json:"period_start"`
	PeriodEnd      pgtype.Timestamptz `json:"period_end"`
	LimitPerMinute int                `json:"limit_per_minute"`
}

func (h *Handler) getAPIKey(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return errResponse(c, http.StatusUnauthorized, "Missing bearer token")
	}

	details, err := h.account.GetAPIKey(c.Request().Context(), user.ID)
	if errors.Is(err, service.ErrAPIKeyNotFound) {
		return errResponse(c, http.StatusNotFound, service.ErrAPIKeyNotFound.Error())
	}
	if err != nil {
		return h.serverError(c, "get api key", err)
	}

	return c.JSON(http.StatusOK, apiKeyResponse{
		APIKey:     details.APIKey,
		KeyPrefix:  details.KeyPrefix,
		MaskedKey:  details.MaskedKey,
		Active:     details.Active,
		CreatedAt:  details.CreatedAt,
		RevokedAt:  details.RevokedAt,
		LastUsedAt: details.LastUsedAt,
	})
}

func (h *Handler) rotateAPIKey(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return errResponse(c, http.StatusUnauthorized, "Missing bearer token")
	}

	rotated, err := h.account.RotateAPIKey(c.Request().Context(), user.ID)
	switch {
	case errors.Is(err, service.ErrHashingNotConfigured):
		return errResponse(c, http.StatusInternalServerError, service.ErrHashingNotConfigured.Error())
	case errors.Is(err, service.ErrSubscriptionInactive):
		return errResponse(c, http.StatusForbidden, service.ErrSubscriptionInactive.Error())
	case err != nil:
		return h.serverError(c, "rotate api key", err)
	}

	return c.JSON(http.StatusOK, apiKeyRotateResponse{
		APIKey:    rotated.APIKey,
		KeyPrefix: rotated.KeyPrefix,
		CreatedAt: rotated.CreatedAt,
	})
}

func (h *Handler) getUsage(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return errResponse(c, http.StatusUnauthorized, "Missing bearer token")
	}

	report, err := h.account.Usage(c.Request().Context(), user.ID)
	switch {
	case errors.Is(err, service.ErrNoBillingPeriod):
		return errResponse(c, http.StatusNotFound, service.ErrNoBillingPeriod.Error())
	case errors.Is(err, service.ErrAPIKeyNotFound):
		return errResponse(c, http.StatusNotFound, service.ErrAPIKeyNotFound.Error())
	case err != nil:
		return h.serverError(c, "get usage", err)
	}

	return c.JSON(http.StatusOK, usageResponse{
		UsageCount:     report.UsageCount,
		PeriodStart:    report.PeriodStart,
		PeriodEnd:      report.PeriodEnd,
		LimitPerMinute: report.LimitPerMinute,
	})
}
