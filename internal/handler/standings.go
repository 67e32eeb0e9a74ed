package handler

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"

	"github.com/BradleyExton/canpoli-api/internal/repository"
)

type partyStandingView struct {
	ID         int64       `json:"id"`
	PartyID    *int64      `json:"party_id"`
	PartyName  string      `json:"party_name"`
	SeatCount  int         `json:"seat_count"`
	AsOfDate   pgtype.Date `json:"as_of_date"`
	Parliament *int        `json:"parliament"`
	Session    *int        `json:"session"`
}

// listPartyStandings returns seat counts for one snapshot date. Without an
// explicit as_of_date it serves the most recent snapshot matching the
// parliament and session filters.
func (h *Handler) listPartyStandings(c echo.Context) error {
	pg, err := bindPage(c, 50)
	if err != nil {
		return err
	}
	parliament, err := queryInt(c, "parliament")
	if err != nil {
		return err
	}
	sessionNumber, err := queryInt(c, "session_number")
	if err != nil {
		return err
	}
	asOfDate, err := queryDate(c, "as_of_date")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if !asOfDate.Valid {
		latest, err := h.store.GetLatestStandingDate(ctx, repository.GetLatestStandingDateParams{
			Parliament: parliament,
			Session:    sessionNumber,
		})
		if err != nil {
			return h.serverError(c, "latest standing date", err)
		}
		asOfDate = latest
	}

	standings, err := h.store.ListPartyStandings(ctx, repository.ListPartyStandingsParams{
		Parliament: parliament,
		Session:    sessionNumber,
		AsOfDate:   asOfDate,
		Limit:      pg.Limit,
		Offset:     pg.Offset,
	})
	if err != nil {
		return h.serverError(c, "list party standings", err)
	}
	total, err := h.store.CountPartyStandings(ctx, repository.CountPartyStandingsParams{
		Parliament: parliament,
		Session:    sessionNumber,
		AsOfDate:   asOfDate,
	})
	if err != nil {
		return h.serverError(c, "count party standings", err)
	}

	items := make([]partyStandingView, 0, len(standings))
	for _, s := range standings {
		items = append(items, partyStandingView{
			ID:         s.ID,
			PartyID:    s.PartyID,
			PartyName:  s.PartyName,
			SeatCount:  s.SeatCount,
			AsOfDate:   s.AsOfDate,
			Parliament: s.Parliament,
			Session:    s.Session,
		})
	}
	return listJSON(c, items, total, pg)
}
