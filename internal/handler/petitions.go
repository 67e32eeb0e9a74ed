package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"

	"github.com/BradleyExton/canpoli-api/internal/repository"
)

type petitionView struct {
	ID               int64              `json:"id"`
	PetitionNumber   string             `json:"petition_number"`
	TitleEn          *string            `json:"title_en"`
	TitleFr          *string            `json:"title_fr"`
	Status           *string            `json:"status"`
	PresentationDate pgtype.Date        `json:"presentation_date"`
	ClosingDate      pgtype.Timestamptz `json:"closing_date"`
	Signatures       *int               `json:"signatures"`
	SponsorHocID     *int               `json:"sponsor_hoc_id"`
	SponsorName      *string            `json:"sponsor_name"`
	Parliament       *int               `json:"parliament"`
	Session          *int               `json:"session"`
}

func newPetitionView(p repository.Petition) petitionView {
	return petitionView{
		ID:               p.ID,
		PetitionNumber:   p.PetitionNumber,
		TitleEn:          p.TitleEn,
		TitleFr:          p.TitleFr,
		Status:           p.Status,
		PresentationDate: p.PresentationDate,
		ClosingDate:      p.ClosingDate,
		Signatures:       p.Signatures,
		SponsorHocID:     p.SponsorHocID,
		SponsorName:      p.SponsorName,
		Parliament:       p.Parliament,
		Session:          p.Session,
	}
}

func (h *Handler) listPetitions(c echo.Context) error {
	pg, err := bindPage(c, defaultPageLimit)
	if err != nil {
		return err
	}
	status := queryString(c, "status")
	sponsorHocID, err := queryInt(c, "sponsor_hoc_id")
	if err != nil {
		return err
	}
	fromDate, err := queryDate(c, "from_date")
	if err != nil {
		return err
	}
	toDate, err := queryDate(c, "to_date")
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
	petitions, err := h.store.ListPetitions(ctx, repository.ListPetitionsParams{
		Status:       status,
		SponsorHocID: sponsorHocID,
		FromDate:     fromDate,
		ToDate:       toDate,
		Parliament:   parliament,
		Session:      sessionNumber,
		Limit:        pg.Limit,
		Offset:       pg.Offset,
	})
	if err != nil {
		return h.serverError(c, "list petitions", err)
	}
	total, err := h.store.CountPetitions(ctx, repository.CountPetitionsParams{
		Status:       status,
		SponsorHocID: sponsorHocID,
		FromDate:     fromDate,
		ToDate:       toDate,
		Parliament:   parliament,
		Session:      sessionNumber,
	})
	if err != nil {
		return h.serverError(c, "count petitions", err)
	}

	items := make([]petitionView, 0, len(petitions))
	for _, p := range petitions {
		items = append(items, newPetitionView(p))
	}
	return listJSON(c, items, total, pg)
}

func (h *Handler) getPetition(c echo.Context) error {
	petitionID, err := pathInt64(c, "petition_id")
	if err != nil {
		return err
	}

	petition, err := h.store.GetPetition(c.Request().Context(), petitionID)
	if errors.Is(err, pgx.ErrNoRows) {
		return errResponse(c, http.StatusNotFound, "Petition not found")
	}
	if err != nil {
		return h.serverError(c, "get petition", err)
	}
	return c.JSON(http.StatusOK, newPetitionView(petition))
}
