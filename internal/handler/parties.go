package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/BradleyExton/canpoli-api/internal/repository"
)

// listParties returns every party. The default page fits the full federal
// roster.
func (h *Handler) listParties(c echo.Context) error {
	pg, err := bindPage(c, 50)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	parties, err := h.store.ListParties(ctx, repository.ListPartiesParams{
		Limit:  pg.Limit,
		Offset: pg.Offset,
	})
	if err != nil {
		return h.serverError(c, "list parties", err)
	}
	total, err := h.store.CountParties(ctx)
	if err != nil {
		return h.serverError(c, "count parties", err)
	}

	items := make([]partyView, 0, len(parties))
	for _, p := range parties {
		items = append(items, partyView{Name: p.Name, ShortName: p.ShortName, Color: p.Color})
	}
	return listJSON(c, items, total, pg)
}
