package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"

	"github.com/BradleyExton/canpoli-api/internal/repository"
)

type billView struct {
	ID                 int64              `json:"id"`
	LegisinfoID        *int               `json:"legisinfo_id"`
	BillNumber         string             `json:"bill_number"`
	TitleEn            *string            `json:"title_en"`
	TitleFr            *string            `json:"title_fr"`
	Status             *string            `json:"status"`
	Parliament         *int               `json:"parliament"`
	Session            *int               `json:"session"`
	IntroducedDate     pgtype.Date        `json:"introduced_date"`
	LatestActivityDate pgtype.Timestamptz `json:"latest_activity_date"`
	SponsorHocID       *int               `json:"sponsor_hoc_id"`
	SponsorName        *string            `json:"sponsor_name"`
	SponsorParty       *string            `json:"sponsor_party"`
	SummaryEn          *string            `json:"summary_en"`
	SummaryFr          *string            `json:"summary_fr"`
}

func newBillView(b repository.Bill) billView {
	return billView{
		ID:                 b.ID,
		LegisinfoID:        b.LegisinfoID,
		BillNumber:         b.BillNumber,
		TitleEn:            b.TitleEn,
		TitleFr:            b.TitleFr,
		Status:             b.Status,
		Parliament:         b.Parliament,
		Session:            b.Session,
		IntroducedDate:     b.IntroducedDate,
		LatestActivityDate: b.LatestActivityDate,
		SponsorHocID:       b.SponsorHocID,
		SponsorName:        b.SponsorName,
		SponsorParty:       b.SponsorParty,
		SummaryEn:          b.SummaryEn,
		SummaryFr:          b.SummaryFr,
	}
}

func (h *Handler) listBills(c echo.Context) error {
	pg, err := bindPage(c, defaultPageLimit)
	if err != nil {
		return err
	}
	billNumber := queryString(c, "bill_number")
	status := queryString(c, "status")
	sponsorHocID, err := queryInt(c, "sponsor_hoc_id")
	if err != nil {
		return err
	}
	updatedSince, err := queryTimestamp(c, "updated_since")
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

	ctx := c.Request().Context()
	bills, err := h.store.ListBills(ctx, repository.ListBillsParams{
		BillNumber:   billNumber,
		Status:       status,
		SponsorHocID: sponsorHocID,
		UpdatedSince: updatedSince,
		Parliament:   parliament,
		Session:      sessionNumber,
		Limit:        pg.Limit,
		Offset:       pg.Offset,
	})
	if err != nil {
		return h.serverError(c, "list bills", err)
	}
	total, err := h.store.CountBills(ctx, repository.CountBillsParams{
		BillNumber:   billNumber,
		Status:       status,
		SponsorHocID: sponsorHocID,
		UpdatedSince: updatedSince,
		Parliament:   parliament,
		Session:      sessionNumber,
	})
	if err != nil {
		return h.serverError(c, "count bills", err)
	}

	items := make([]billView, 0, len(bills))
	for _, b := range bills {
		items = append(items, newBillView(b))
	}
	return listJSON(c, items, total, pg)
}

func (h *Handler) getBill(c echo.Context) error {
	billID, err := pathInt64(c, "bill_id")
	if err != nil {
		return err
	}

	bill, err := h.store.GetBill(c.Request().Context(), billID)
	if errors.Is(err, pgx.ErrNoRows) {
		return errResponse(c, http.StatusNotFound, "Bill not found")
	}
	if err != nil {
		return h.serverError(c, "get bill", err)
	}
	return c.JSON(http.StatusOK, newBillView(bill))
}
