package handler

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/BradleyExton/canpoli-api/internal/apikey"
	"github.com/BradleyExton/canpoli-api/internal/counter"
	"github.com/BradleyExton/canpoli-api/internal/repository"
	"github.com/BradleyExton/canpoli-api/internal/service"
)

// Context keys the middlewares communicate through.
const (
	ctxUserKey        = "current_user"
	ctxAPIKeyIDKey    = "api_key_id"
	ctxPeriodStartKey = "period_start"
	ctxPeriodEndKey   = "period_end"
)

// RequireUser authenticates the bearer token, provisions the platform user
// on first sight and stores it on the request context.
func (h *Handler) RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			token = strings.TrimSpace(token)
			if !found || token == "" {
				return errResponse(c, http.StatusUnauthorized, "Missing bearer token")
			}
			if h.verifier == nil {
				return errResponse(c, http.StatusInternalServerError, "Clerk auth is not configured")
			}

			identity, err := h.verifier.Verify(c.Request().Context(), token)
			if err != nil {
				return errResponse(c, http.StatusUnauthorized, "Invalid token")
			}

			user, err := h.identity.EnsureUser(c.Request().Context(), identity)
			if err != nil {
				return h.serverError(c, "provision user", err)
			}

			c.Set(ctxUserKey, user)
			return next(c)
		}
	}
}

// APIKeyRateLimit gates the data endpoints. Requests carrying X-API-Key are
// authenticated against the stored key hash and limited at the paid rate per
// key; anonymous requests are limited at the free rate per client IP. The
// window is a fixed minute bucket. A counter outage degrades to unlimited
// rather than blocking reads.
func (h *Handler) APIKeyRateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			identity := "ip:" + clientIP(c)
			limit := h.cfg.RateLimitFreePerMin

			if raw := strings.TrimSpace(c.Request().Header.Get("X-API-Key")); raw != "" {
				if h.cfg.APIKeyHMACSecret == "" {
					return errResponse(c, http.StatusInternalServerError, "API key hashing not configured")
				}

				key, err := h.store.GetApiKeyByHash(ctx, apikey.Hash(h.cfg.APIKeyHMACSecret, raw))
				if errors.Is(err, pgx.ErrNoRows) {
					return errResponse(c, http.StatusUnauthorized, "Invalid API key")
				}
				if err != nil {
					return h.serverError(c, "api key lookup", err)
				}
				if !key.Active {
					return errResponse(c, http.StatusForbidden, "API key inactive")
				}

				bill, err := h.store.GetBillingByUserID(ctx, key.UserID)
				if errors.Is(err, pgx.ErrNoRows) {
					return errResponse(c, http.StatusForbidden, "Subscription inactive")
				}
				if err != nil {
					return h.serverError(c, "billing lookup", err)
				}
				if !service.SubscriptionActive(bill.Status) {
					return errResponse(c, http.StatusForbidden, "Subscription inactive")
				}

				identity = "key:" + uuidString(key.ID)
				limit = h.cfg.RateLimitPaidPerMin

				c.Set(ctxAPIKeyIDKey, uuidString(key.ID))
				if bill.CurrentPeriodStart.Valid {
					c.Set(ctxPeriodStartKey, bill.CurrentPeriodStart.Time)
				}
				if bill.CurrentPeriodEnd.Valid {
					c.Set(ctxPeriodEndKey, bill.CurrentPeriodEnd.Time)
				}

				if err := h.store.TouchApiKeyLastUsed(ctx, key.ID); err != nil {
					h.logger.Warn("api key last_used update failed", zap.Error(err))
				}
			}

			window := time.Now().Unix() / 60
			counterKey := fmt.Sprintf(counter.RateLimitKeyFmt, identity, window)
			count, err := h.counters.Incr(ctx, counterKey)
			if err != nil {
				h.logger.Warn("rate limit counter unavailable", zap.Error(err))
				return next(c)
			}
			if count == 1 {
				if err := h.counters.Expire(ctx, counterKey, time.Minute); err != nil {
					h.logger.Warn("rate limit window expire failed", zap.Error(err))
				}
			}
			if count > int64(limit) {
				return errResponse(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}

// MeterUsage counts successful keyed requests against the billing period. It
// wraps the rate limiter so rejected requests are never metered, and metering
// failures never affect the response.
func (h *Handler) MeterUsage() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := next(c); err != nil {
				return err
			}
			if c.Response().Status >= http.StatusBadRequest {
				return nil
			}
			keyID, ok := c.Get(ctxAPIKeyIDKey).(string)
			if !ok {
				return nil
			}
			periodStart, ok := c.Get(ctxPeriodStartKey).(time.Time)
			if !ok {
				return nil
			}

			ctx := c.Request().Context()
			usageKey := fmt.Sprintf(counter.UsageKeyFmt, keyID, periodStart.Unix())
			count, err := h.counters.Incr(ctx, usageKey)
			if err != nil {
				h.logger.Warn("usage metering failed", zap.Error(err))
				return nil
			}
			if count == 1 {
				// Counters outlive the period by a day so end-of-period usage
				// stays readable; without a known period end, keep 35 days.
				ttl := 35 * 24 * time.Hour
				if periodEnd, ok := c.Get(ctxPeriodEndKey).(time.Time); ok {
					ttl = time.Until(periodEnd) + 24*time.Hour
					if ttl < time.Minute {
						ttl = time.Minute
					}
				}
				if err := h.counters.Expire(ctx, usageKey, ttl); err != nil {
					h.logger.Warn("usage counter expire failed", zap.Error(err))
				}
			}
			return nil
		}
	}
}

func currentUser(c echo.Context) (repository.User, bool) {
	user, ok := c.Get(ctxUserKey).(repository.User)
	return user, ok
}

// clientIP prefers the first X-Forwarded-For hop, then the peer address.
func clientIP(c echo.Context) string {
	if fwd := c.Request().Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip, _, err := net.SplitHostPort(c.Request().RemoteAddr); err == nil && ip != "" {
		return ip
	}
	return "unknown"
}

func uuidString(u pgtype.UUID) string {
	return uuid.UUID(u.Bytes).String()
}
