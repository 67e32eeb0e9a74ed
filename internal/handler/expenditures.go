package handler

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"

	"github.com/BradleyExton/canpoli-api/internal/repository"
)

type memberExpenditureView struct {
	ID               int64       `json:"id"`
	RepresentativeID *int64      `json:"representative_id"`
	HocID            *int        `json:"hoc_id"`
	MemberName       string      `json:"member_name"`
	Category         string      `json:"category"`
	Amount           float64     `json:"amount"`
	PeriodStart      pgtype.Date `json:"period_start"`
	PeriodEnd        pgtype.Date `json:"period_end"`
	FiscalYear       *string     `json:"fiscal_year"`
}

type houseOfficerExpenditureView struct {
	ID          int64       `json:"id"`
	OfficerName string      `json:"officer_name"`
	RoleTitle   *string     `json:"role_title"`
	Category    string      `json:"category"`
	Amount      float64     `json:"amount"`
	PeriodStart pgtype.Date `json:"period_start"`
	PeriodEnd   pgtype.Date `json:"period_end"`
	FiscalYear  *string     `json:"fiscal_year"`
}

func newMemberExpenditureView(e repository.MemberExpenditure) memberExpenditureView {
	return memberExpenditureView{
		ID:               e.ID,
		RepresentativeID: e.RepresentativeID,
		HocID:            e.HocID,
		MemberName:       e.MemberName,
		Category:         e.Category,
		Amount:           e.Amount,
		PeriodStart:      e.PeriodStart,
		PeriodEnd:        e.PeriodEnd,
		FiscalYear:       e.FiscalYear,
	}
}

func (h *Handler) listMemberExpenditures(c echo.Context) error {
	return h.listMemberExpendituresFiltered(c, nil, defaultPageLimit)
}

// listMemberExpendituresForMember scopes the listing to one member. The
// larger default page covers a full year of quarterly category rows.
func (h *Handler) listMemberExpendituresForMember(c echo.Context) error {
	hocID, err := pathInt(c, "hoc_id")
	if err != nil {
		return err
	}
	return h.listMemberExpendituresFiltered(c, &hocID, 50)
}

func (h *Handler) listMemberExpendituresFiltered(c echo.Context, hocID *int, defaultLimit int) error {
	pg, err := bindPage(c, defaultLimit)
	if err != nil {
		return err
	}
	fiscalYear := queryString(c, "fiscal_year")
	category := queryString(c, "category")

	ctx := c.Request().Context()
	expenditures, err := h.store.ListMemberExpenditures(ctx, repository.ListMemberExpendituresParams{
		HocID:      hocID,
		FiscalYear: fiscalYear,
		Category:   category,
		Limit:      pg.Limit,
		Offset:     pg.Offset,
	})
	if err != nil {
		return h.serverError(c, "list member expenditures", err)
	}
	total, err := h.store.CountMemberExpenditures(ctx, repository.CountMemberExpendituresParams{
		HocID:      hocID,
		FiscalYear: fiscalYear,
		Category:   category,
	})
	if err != nil {
		return h.serverError(c, "count member expenditures", err)
	}

	items := make([]memberExpenditureView, 0, len(expenditures))
	for _, e := range expenditures {
		items = append(items, newMemberExpenditureView(e))
	}
	return listJSON(c, items, total, pg)
}

func (h *Handler) listHouseOfficerExpenditures(c echo.Context) error {
	pg, err := bindPage(c, defaultPageLimit)
	if err != nil {
		return err
	}
	fiscalYear := queryString(c, "fiscal_year")
	category := queryString(c, "category")

	ctx := c.Request().Context()
	expenditures, err := h.store.ListHouseOfficerExpenditures(ctx, repository.ListHouseOfficerExpendituresParams{
		FiscalYear: fiscalYear,
		Category:   category,
		Limit:      pg.Limit,
		Offset:     pg.Offset,
	})
	if err != nil {
		return h.serverError(c, "list house officer expenditures", err)
	}
	total, err := h.store.CountHouseOfficerExpenditures(ctx, repository.CountHouseOfficerExpendituresParams{
		FiscalYear: fiscalYear,
		Category:   category,
	})
	if err != nil {
		return h.serverError(c, "count house officer expenditures", err)
	}

	items := make([]houseOfficerExpenditureView, 0, len(expenditures))
	for _, e := range expenditures {
		items = append(items, houseOfficerExpenditureView{
			ID:          e.ID,
			OfficerName: e.OfficerName,
			RoleTitle:   e.RoleTitle,
			Category:    e.Category,
			Amount:      e.Amount,
			PeriodStart: e.PeriodStart,
			PeriodEnd:   e.PeriodEnd,
			FiscalYear:  e.FiscalYear,
		})
	}
	return listJSON(c, items, total, pg)
}
