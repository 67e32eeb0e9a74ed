package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"

	"github.com/BradleyExton/canpoli-api/internal/repository"
)

type debateInterventionView struct {
	ID                 int64   `json:"id"`
	DebateID           int64   `json:"debate_id"`
	Sequence           int     `json:"sequence"`
	SpeakerName        *string `json:"speaker_name"`
	SpeakerAffiliation *string `json:"speaker_affiliation"`
	FloorLanguage      *string `json:"floor_language"`
	Timestamp          *string `json:"timestamp"`
	OrderOfBusiness    *string `json:"order_of_business"`
	SubjectTitle       *string `json:"subject_title"`
	InterventionType   *string `json:"intervention_type"`
	Text               *string `json:"text"`
}

// debateView serializes Interventions as null on listings; only the detail
// endpoint loads the transcript.
type debateView struct {
	ID            int64                    `json:"id"`
	Parliament    *int                     `json:"parliament"`
	Session       *int                     `json:"session"`
	Sitting       *int                     `json:"sitting"`
	DebateDate    pgtype.Date              `json:"debate_date"`
	Language      *string                  `json:"language"`
	Volume        *string                  `json:"volume"`
	Number        *string                  `json:"number"`
	SpeakerName   *string                  `json:"speaker_name"`
	DocumentURL   *string                  `json:"document_url"`
	Interventions []debateInterventionView `json:"interventions"`
}

func newDebateView(d repository.Debate, interventions []debateInterventionView) debateView {
	return debateView{
		ID:            d.ID,
		Parliament:    d.Parliament,
		Session:       d.Session,
		Sitting:       d.Sitting,
		DebateDate:    d.DebateDate,
		Language:      d.Language,
		Volume:        d.Volume,
		Number:        d.Number,
		SpeakerName:   d.SpeakerName,
		DocumentURL:   d.DocumentURL,
		Interventions: interventions,
	}
}

func newDebateInterventionView(i repository.DebateIntervention) debateInterventionView {
	return debateInterventionView{
		ID:                 i.ID,
		DebateID:           i.DebateID,
		Sequence:           i.Sequence,
		SpeakerName:        i.SpeakerName,
		SpeakerAffiliation: i.SpeakerAffiliation,
		FloorLanguage:      i.FloorLanguage,
		Timestamp:          i.Timestamp,
		OrderOfBusiness:    i.OrderOfBusiness,
		SubjectTitle:       i.SubjectTitle,
		InterventionType:   i.InterventionType,
		Text:               i.Text,
	}
}

func (h *Handler) listDebates(c echo.Context) error {
	pg, err := bindPage(c, defaultPageLimit)
	if err != nil {
		return err
	}
	debateDate, err := queryDate(c, "date")
	if err != nil {
		return err
	}
	language := queryString(c, "language")
	sitting, err := queryInt(c, "sitting")
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
	debates, err := h.store.ListDebates(ctx, repository.ListDebatesParams{
		DebateDate: debateDate,
		Language:   language,
		Sitting:    sitting,
		Parliament: parliament,
		Session:    sessionNumber,
		Limit:      pg.Limit,
		Offset:     pg.Offset,
	})
	if err != nil {
		return h.serverError(c, "list debates", err)
	}
	total, err := h.store.CountDebates(ctx, repository.CountDebatesParams{
		DebateDate: debateDate,
		Language:   language,
		Sitting:    sitting,
		Parliament: parliament,
		Session:    sessionNumber,
	})
	if err != nil {
		return h.serverError(c, "count debates", err)
	}

	items := make([]debateView, 0, len(debates))
	for _, d := range debates {
		items = append(items, newDebateView(d, nil))
	}
	return listJSON(c, items, total, pg)
}

func (h *Handler) getDebate(c echo.Context) error {
	debateID, err := pathInt64(c, "debate_id")
	if err != nil {
		return err
	}
	includeInterventions, err := queryBool(c, "include_interventions", true)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	debate, err := h.store.GetDebate(ctx, debateID)
	if errors.Is(err, pgx.ErrNoRows) {
		return errResponse(c, http.StatusNotFound, "Debate not found")
	}
	if err != nil {
		return h.serverError(c, "get debate", err)
	}

	var interventions []debateInterventionView
	if includeInterventions {
		rows, err := h.store.ListDebateInterventions(ctx, debate.ID)
		if err != nil {
			return h.serverError(c, "list debate interventions", err)
		}
		interventions = make([]debateInterventionView, 0, len(rows))
		for _, i := range rows {
			interventions = append(interventions, newDebateInterventionView(i))
		}
	}
	return c.JSON(http.StatusOK, newDebateView(debate, interventions))
}
