package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/BradleyExton/canpoli-api/internal/repository"
)

// ridingDetailView pairs a riding with its sitting member, flat, without the
// member's own party and riding nesting.
type ridingDetailView struct {
	ridingView
	Representative *representativeView `json:"representative"`
}

func newRidingView(r repository.Riding) ridingView {
	return ridingView{ID: r.ID, Name: r.Name, Province: r.Province, FedNumber: r.FedNumber}
}

func (h *Handler) listRidings(c echo.Context) error {
	pg, err := bindPage(c, defaultPageLimit)
	if err != nil {
		return err
	}
	province := queryString(c, "province")

	ctx := c.Request().Context()
	ridings, err := h.store.ListRidings(ctx, repository.ListRidingsParams{
		Province: province,
		Limit:    pg.Limit,
		Offset:   pg.Offset,
	})
	if err != nil {
		return h.serverError(c, "list ridings", err)
	}
	total, err := h.store.CountRidings(ctx, province)
	if err != nil {
		return h.serverError(c, "count ridings", err)
	}

	items := make([]ridingView, 0, len(ridings))
	for _, r := range ridings {
		items = append(items, newRidingView(r))
	}
	return listJSON(c, items, total, pg)
}

func (h *Handler) getRiding(c echo.Context) error {
	ridingID, err := pathInt64(c, "riding_id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	riding, err := h.store.GetRiding(ctx, ridingID)
	if errors.Is(err, pgx.ErrNoRows) {
		return errResponse(c, http.StatusNotFound, "Riding not found")
	}
	if err != nil {
		return h.serverError(c, "get riding", err)
	}

	view := ridingDetailView{ridingView: newRidingView(riding)}
	rep, err := h.store.GetActiveRepresentativeByRidingID(ctx, ridingID)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// Vacant seat: the riding still resolves.
	case err != nil:
		return h.serverError(c, "get riding representative", err)
	default:
		v := newRepresentativeView(rep)
		view.Representative = &v
	}

	return c.JSON(http.StatusOK, view)
}
