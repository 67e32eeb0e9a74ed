// Package handler is the HTTP surface of the API: route registration, the
// key-gated access middleware, usage metering and the bearer-authenticated
// account and billing endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/BradleyExton/canpoli-api/internal/auth"
	"github.com/BradleyExton/canpoli-api/internal/config"
	"github.com/BradleyExton/canpoli-api/internal/counter"
	"github.com/BradleyExton/canpoli-api/internal/repository"
	"github.com/BradleyExton/canpoli-api/internal/service"
)

const defaultPageLimit = 20

// Handler carries the dependencies shared by every endpoint.
type Handler struct {
	store    repository.Store
	counters counter.Store
	verifier auth.Verifier
	identity service.IdentityService
	account  service.AccountService
	billing  service.BillingService
	cfg      *config.Config
	logger   *zap.Logger
}

func New(
	store repository.Store,
	counters counter.Store,
	verifier auth.Verifier,
	identity service.IdentityService,
	account service.AccountService,
	billing service.BillingService,
	cfg *config.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		store:    store,
		counters: counters,
		verifier: verifier,
		identity: identity,
		account:  account,
		billing:  billing,
		cfg:      cfg,
		logger:   logger,
	}
}

// Register mounts every route. Data, account and billing endpoints are
// registered twice, at bare paths and under /v1, so both public URL schemes
// resolve. Health stays unversioned.
func (h *Handler) Register(e *echo.Echo) {
	e.HTTPErrorHandler = h.httpErrorHandler

	e.GET("/health", h.health)

	for _, prefix := range []string{"", "/v1"} {
		h.registerData(e, prefix)
		h.registerAccount(e.Group(prefix + "/account"))
		h.registerBilling(e.Group(prefix + "/billing"))
	}
}

// registerData mounts the metered read-only endpoints. MeterUsage sits
// outside APIKeyRateLimit so a rejected request is never counted against the
// billing period.
func (h *Handler) registerData(e *echo.Echo, prefix string) {
	meter := h.MeterUsage()
	gate := h.APIKeyRateLimit()

	reps := e.Group(prefix+"/representatives", meter, gate)
	reps.GET("", h.listRepresentatives)
	reps.GET("/lookup", h.lookupRepresentative)
	reps.GET("/:hoc_id", h.getRepresentative)
	reps.GET("/:hoc_id/roles", h.listRolesForRepresentative)

	ridings := e.Group(prefix+"/ridings", meter, gate)
	ridings.GET("", h.listRidings)
	ridings.GET("/:riding_id", h.getRiding)

	parties := e.Group(prefix+"/parties", meter, gate)
	parties.GET("", h.listParties)

	standings := e.Group(prefix+"/party-standings", meter, gate)
	standings.GET("", h.listPartyStandings)

	bills := e.Group(prefix+"/bills", meter, gate)
	bills.GET("", h.listBills)
	bills.GET("/:bill_id", h.getBill)

	votes := e.Group(prefix+"/votes", meter, gate)
	votes.GET("", h.listVotes)
	votes.GET("/:vote_id", h.getVote)

	petitions := e.Group(prefix+"/petitions", meter, gate)
	petitions.GET("", h.listPetitions)
	petitions.GET("/:petition_id", h.getPetition)

	debates := e.Group(prefix+"/debates", meter, gate)
	debates.GET("", h.listDebates)
	debates.GET("/:debate_id", h.getDebate)

	expenditures := e.Group(prefix+"/expenditures", meter, gate)
	expenditures.GET("/members", h.listMemberExpenditures)
	expenditures.GET("/members/:hoc_id", h.listMemberExpendituresForMember)
	expenditures.GET("/house-officers", h.listHouseOfficerExpenditures)

	roles := e.Group(prefix+"/roles", meter, gate)
	roles.GET("", h.listRoles)
}

func (h *Handler) registerAccount(g *echo.Group) {
	g.Use(h.RequireUser())
	g.GET("/api-key", h.getAPIKey)
	g.POST("/api-key/rotate", h.rotateAPIKey)
	g.GET("/usage", h.getUsage)
}

func (h *Handler) registerBilling(g *echo.Group) {
	g.POST("/webhook", h.stripeWebhook)

	authed := g.Group("", h.RequireUser())
	authed.POST("/checkout", h.createCheckoutSession)
	authed.POST("/portal", h.createPortalSession)
}

// health reports liveness and database reachability. The probe failure is
// logged, never returned to the caller.
func (h *Handler) health(c echo.Context) error {
	status, db := "ok", "ok"
	if err := h.store.Ping(c.Request().Context()); err != nil {
		h.logger.Error("health check database error", zap.Error(err))
		status, db = "degraded", "error"
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":   status,
		"database": db,
	})
}

type errResp struct {
	Detail string `json:"detail"`
}

func errResponse(c echo.Context, status int, detail string) error {
	return c.JSON(status, errResp{Detail: detail})
}

// serverError hides internals behind a generic 500 and logs the cause.
func (h *Handler) serverError(c echo.Context, op string, err error) error {
	h.logger.Error(op+" failed", zap.Error(err))
	return errResponse(c, http.StatusInternalServerError, "Internal server error")
}

// httpErrorHandler renders every error echo surfaces (unknown routes, bad
// methods, validation failures returned as *echo.HTTPError) in the same
// detail envelope the handlers use.
func (h *Handler) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	detail := "Internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			detail = msg
		}
	} else {
		h.logger.Error("request failed", zap.Error(err))
	}

	if c.Request().Method == http.MethodHead {
		if err := c.NoContent(code); err != nil {
			h.logger.Error("error response write failed", zap.Error(err))
		}
		return
	}
	if err := c.JSON(code, errResp{Detail: detail}); err != nil {
		h.logger.Error("error response write failed", zap.Error(err))
	}
}

// listResponse is the shared pagination envelope.
type listResponse struct {
	Items  any   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

func listJSON(c echo.Context, items any, total int64, pg page) error {
	return c.JSON(http.StatusOK, listResponse{
		Items:  items,
		Total:  total,
		Limit:  pg.Limit,
		Offset: pg.Offset,
	})
}

type page struct {
	Limit  int
	Offset int
}

// bindPage parses limit and offset. Limit is clamped to 1..100 by rejection,
// not truncation, so callers learn about bad values.
func bindPage(c echo.Context, defaultLimit int) (page, error) {
	pg := page{Limit: defaultLimit}
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			return page{}, echo.NewHTTPError(http.StatusUnprocessableEntity, "limit must be an integer between 1 and 100")
		}
		pg.Limit = n
	}
	if raw := c.QueryParam("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return page{}, echo.NewHTTPError(http.StatusUnprocessableEntity, "offset must be a non-negative integer")
		}
		pg.Offset = n
	}
	return pg, nil
}

// queryString returns the trimmed-absent form of a string filter: a missing
// or empty parameter is nil.
func queryString(c echo.Context, name string) *string {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	return &raw
}

func queryInt(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnprocessableEntity, name+" must be an integer")
	}
	return &n, nil
}

func queryBool(c echo.Context, name string, def bool) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, echo.NewHTTPError(http.StatusUnprocessableEntity, name+" must be a boolean")
	}
	return v, nil
}

// queryBoolPtr is the tri-state form: absent means no filter.
func queryBoolPtr(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnprocessableEntity, name+" must be a boolean")
	}
	return &v, nil
}

func queryDate(c echo.Context, name string) (pgtype.Date, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return pgtype.Date{}, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return pgtype.Date{}, echo.NewHTTPError(http.StatusUnprocessableEntity, name+" must be a date in YYYY-MM-DD format")
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}

// queryTimestamp accepts RFC 3339 or a bare date.
func queryTimestamp(c echo.Context, name string) (pgtype.Timestamptz, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return pgtype.Timestamptz{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t, err = time.Parse("2006-01-02", raw)
	}
	if err != nil {
		return pgtype.Timestamptz{}, echo.NewHTTPError(http.StatusUnprocessableEntity, name+" must be an ISO 8601 timestamp")
	}
	return pgtype.Timestamptz{Time: t, Valid: true}, nil
}

func pathInt(c echo.Context, name string) (int, error) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnprocessableEntity, name+" must be an integer")
	}
	return n, nil
}

func pathInt64(c echo.Context, name string) (int64, error) {
	n, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnprocessableEntity, name+" must be an integer")
	}
	return n, nil
}
