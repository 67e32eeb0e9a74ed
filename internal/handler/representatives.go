package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/BradleyExton/canpoli-api/internal/repository"
)

type representativeView struct {
	HocID      int     `json:"hoc_id"`
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Name       string  `json:"name"`
	Honorific  *string `json:"honorific"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	PhotoURL   *string `json:"photo_url"`
	ProfileURL *string `json:"profile_url"`
	IsActive   bool    `json:"is_active"`
}

type partyView struct {
	Name      string  `json:"name"`
	ShortName *string `json:"short_name"`
	Color     *string `json:"color"`
	SeatCount *int    `json:"seat_count"`
}

type ridingView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Province  string `json:"province"`
	FedNumber *int   `json:"fed_number"`
}

// representativeDetailView adds the member's party and riding. CurrentRoles
// mirrors the published shape; role listings live under /roles.
type representativeDetailView struct {
	representativeView
	Party        *partyView                  `json:"party"`
	Riding       *ridingView                 `json:"riding"`
	CurrentRoles []representativeRoleSummary `json:"current_roles"`
}

func newRepresentativeView(r repository.Representative) representativeView {
	return representativeView{
		HocID:      r.HocID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Name:       r.Name,
		Honorific:  r.Honorific,
		Email:      r.Email,
		Phone:      r.Phone,
		PhotoURL:   r.PhotoURL,
		ProfileURL: r.ProfileURL,
		IsActive:   r.IsActive,
	}
}

// representativeDetails hydrates party and riding for a batch of members
// with one lookup per table.
func (h *Handler) representativeDetails(ctx context.Context, reps []repository.Representative) ([]representativeDetailView, error) {
	var partyIDs, ridingIDs []int64
	seenParties := make(map[int64]bool)
	seenRidings := make(map[int64]bool)
	for _, r := range reps {
		if r.PartyID != nil && !seenParties[*r.PartyID] {
			seenParties[*r.PartyID] = true
			partyIDs = append(partyIDs, *r.PartyID)
		}
		if r.RidingID != nil && !seenRidings[*r.RidingID] {
			seenRidings[*r.RidingID] = true
			ridingIDs = append(ridingIDs, *r.RidingID)
		}
	}

	parties := make(map[int64]repository.Party, len(partyIDs))
	if len(partyIDs) > 0 {
		rows, err := h.store.ListPartiesByIDs(ctx, partyIDs)
		if err != nil {
			return nil, err
		}
		for _, p := range rows {
			parties[p.ID] = p
		}
	}

	ridings := make(map[int64]repository.Riding, len(ridingIDs))
	if len(ridingIDs) > 0 {
		rows, err := h.store.ListRidingsByIDs(ctx, ridingIDs)
		if err != nil {
			return nil, err
		}
		for _, rd := range rows {
			ridings[rd.ID] = rd
		}
	}

	views := make([]representativeDetailView, 0, len(reps))
	for _, r := range reps {
		v := representativeDetailView{representativeView: newRepresentativeView(r)}
		if r.PartyID != nil {
			if p, ok := parties[*r.PartyID]; ok {
				v.Party = &partyView{Name: p.Name, ShortName: p.ShortName, Color: p.Color}
			}
		}
		if r.RidingID != nil {
			if rd, ok := ridings[*r.RidingID]; ok {
				v.Riding = &ridingView{ID: rd.ID, Name: rd.Name, Province: rd.Province, FedNumber: rd.FedNumber}
			}
		}
		views = append(views, v)
	}
	return views, nil
}

func (h *Handler) representativeDetail(ctx context.Context, rep repository.Representative) (representativeDetailView, error) {
	views, err := h.representativeDetails(ctx, []repository.Representative{rep})
	if err != nil {
		return representativeDetailView{}, err
	}
	return views[0], nil
}

func (h *Handler) listRepresentatives(c echo.Context) error {
	pg, err := bindPage(c, defaultPageLimit)
	if err != nil {
		return err
	}
	province := queryString(c, "province")
	party := queryString(c, "party")

	ctx := c.Request().Context()
	reps, err := h.store.ListRepresentatives(ctx, repository.ListRepresentativesParams{
		Province: province,
		Party:    party,
		Limit:    pg.Limit,
		Offset:   pg.Offset,
	})
	if err != nil {
		return h.serverError(c, "list representatives", err)
	}
	total, err := h.store.CountRepresentatives(ctx, repository.CountRepresentativesParams{
		Province: province,
		Party:    party,
	})
	if err != nil {
		return h.serverError(c, "count representatives", err)
	}
	items, err := h.representativeDetails(ctx, reps)
	if err != nil {
		return h.serverError(c, "hydrate representatives", err)
	}
	return listJSON(c, items, total, pg)
}

// lookupRepresentative resolves coordinates to a riding via the boundary
// geometry and returns its sitting member. Postal code resolution needs a
// postal-code-to-riding dataset the platform does not carry yet.
func (h *Handler) lookupRepresentative(c echo.Context) error {
	qp := c.QueryParams()
	hasPostal := qp.Has("postal_code")
	hasLat := qp.Has("lat")
	hasLng := qp.Has("lng")

	var lat, lng float64
	if hasLat {
		v, err := strconv.ParseFloat(qp.Get("lat"), 64)
		if err != nil || v < -90 || v > 90 {
			return errResponse(c, http.StatusUnprocessableEntity, "lat must be a number between -90 and 90")
		}
		lat = v
	}
	if hasLng {
		v, err := strconv.ParseFloat(qp.Get("lng"), 64)
		if err != nil || v < -180 || v > 180 {
			return errResponse(c, http.StatusUnprocessableEntity, "lng must be a number between -180 and 180")
		}
		lng = v
	}

	switch {
	case hasPostal && (hasLat || hasLng):
		return errResponse(c, http.StatusUnprocessableEntity, "Provide only one of postal_code or lat+lng")
	case !hasPostal && !hasLat && !hasLng:
		return errResponse(c, http.StatusUnprocessableEntity, "Provide either postal_code or lat+lng")
	case hasLat != hasLng:
		return errResponse(c, http.StatusUnprocessableEntity, "Both lat and lng are required for coordinate lookup")
	case hasPostal:
		return errResponse(c, http.StatusNotImplemented, "Lookup by postal code not yet implemented")
	}

	ctx := c.Request().Context()
	riding, err := h.store.GetRidingByPoint(ctx, repository.GetRidingByPointParams{Lng: lng, Lat: lat})
	if errors.Is(err, pgx.ErrNoRows) {
		return errResponse(c, http.StatusNotFound, "Riding not found for coordinates")
	}
	if err != nil {
		return h.serverError(c, "riding point lookup", err)
	}

	rep, err := h.store.GetActiveRepresentativeByRidingID(ctx, riding.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return errResponse(c, http.StatusNotFound, "Representative not found")
	}
	if err != nil {
		return h.serverError(c, "representative lookup", err)
	}

	view, err := h.representativeDetail(ctx, rep)
	if err != nil {
		return h.serverError(c, "hydrate representative", err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) getRepresentative(c echo.Context) error {
	hocID, err := pathInt(c, "hoc_id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	rep, err := h.store.GetRepresentativeByHocID(ctx, hocID)
	if errors.Is(err, pgx.ErrNoRows) {
		return errResponse(c, http.StatusNotFound, "Representative not found")
	}
	if err != nil {
		return h.serverError(c, "get representative", err)
	}

	view, err := h.representativeDetail(ctx, rep)
	if err != nil {
		return h.serverError(c, "hydrate representative", err)
	}
	return c.JSON(http.StatusOK, view)
}
