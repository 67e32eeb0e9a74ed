package handler

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"

	"github.com/BradleyExton/canpoli-api/internal/repository"
)

type representativeRoleSummary struct {
	ID           int64              `json:"id"`
	RoleName     string             `json:"role_name"`
	RoleType     string             `json:"role_type"`
	Organization *string            `json:"organization"`
	Parliament   *int               `json:"parliament"`
	Session      *int               `json:"session"`
	StartDate    pgtype.Timestamptz `json:"start_date"`
	EndDate      pgtype.Timestamptz `json:"end_date"`
	IsCurrent    bool               `json:"is_current"`
}

type roleRepresentativeView struct {
	HocID int    `json:"hoc_id"`
	Name  string `json:"name"`
}

type representativeRoleView struct {
	representativeRoleSummary
	Representative *roleRepresentativeView `json:"representative"`
}

func newRepresentativeRoleView(row repository.ListRepresentativeRolesRow) representativeRoleView {
	return representativeRoleView{
		representativeRoleSummary: representativeRoleSummary{
			ID:           row.ID,
			RoleName:     row.RoleName,
			RoleType:     row.RoleType,
			Organization: row.Organization,
			Parliament:   row.Parliament,
			Session:      row.Session,
			StartDate:    row.StartDate,
			EndDate:      row.EndDate,
			IsCurrent:    row.IsCurrent,
		},
		Representative: &roleRepresentativeView{
			HocID: row.RepresentativeHocID,
			Name:  row.RepresentativeName,
		},
	}
}

func (h *Handler) listRoles(c echo.Context) error {
	hocID, err := queryInt(c, "hoc_id")
	if err != nil {
		return err
	}
	return h.listRolesFiltered(c, hocID)
}

// listRolesForRepresentative scopes the role listing to one member by path.
func (h *Handler) listRolesForRepresentative(c echo.Context) error {
	hocID, err := pathInt(c, "hoc_id")
	if err != nil {
		return err
	}
	return h.listRolesFiltered(c, &hocID)
}

func (h *Handler) listRolesFiltered(c echo.Context, hocID *int) error {
	pg, err := bindPage(c, defaultPageLimit)
	if err != nil {
		return err
	}
	current, err := queryBoolPtr(c, "current")
	if err != nil {
		return err
	}
	roleType := queryString(c, "role_type")
	parliament, err := queryInt(c, "parliament")
	if err != nil {
		return err
	}
	sessionNumber, err := queryInt(c, "session_number")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	rows, err := h.store.ListRepresentativeRoles(ctx, repository.ListRepresentativeRolesParams{
		HocID:      hocID,
		RoleType:   roleType,
		Current:    current,
		Parliament: parliament,
		Session:    sessionNumber,
		Limit:      pg.Limit,
		Offset:     pg.Offset,
	})
	if err != nil {
		return h.serverError(c, "list roles", err)
	}
	total, err := h.store.CountRepresentativeRoles(ctx, repository.CountRepresentativeRolesParams{
		HocID:      hocID,
		RoleType:   roleType,
		Current:    current,
		Parliament: parliament,
		Session:    sessionNumber,
	})
	if err != nil {
		return h.serverError(c, "count roles", err)
	}

	items := make([]representativeRoleView, 0, len(rows))
	for _, row := range rows {
		items = append(items, newRepresentativeRoleView(row))
	}
	return listJSON(c, items, total, pg)
}
