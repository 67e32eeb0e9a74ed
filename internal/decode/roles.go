package decode

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"
)

// Role type names shared with the repository layer.
const (
	RoleTypeCaucus      = "caucus"
	RoleTypePosition    = "parliamentary_position"
	RoleTypeCommittee   = "committee"
	RoleTypeAssociation = "association"
)

// MemberRole is one role row from a member profile feed.
type MemberRole struct {
	Type         string
	Name         string
	Organization *string
	Parliament   *int
	Session      *int
	Start        *time.Time
	End          *time.Time
	IsCurrent    bool
}

type roleXML struct {
	CaucusShortName           string `xml:"CaucusShortName"`
	Title                     string `xml:"Title"`
	AffiliationRoleName       string `xml:"AffiliationRoleName"`
	CommitteeName             string `xml:"CommitteeName"`
	AssociationMemberRoleType string `xml:"AssociationMemberRoleType"`
	Organization              string `xml:"Organization"`
	ParliamentNumber          string `xml:"ParliamentNumber"`
	SessionNumber             string `xml:"SessionNumber"`
	FromDateTime              string `xml:"FromDateTime"`
	ToDateTime                string `xml:"ToDateTime"`
}

// MemberRoles decodes a member profile XML into role rows across the four
// published families: caucus memberships, parliamentary positions,
// committee memberships, and association/interparliamentary group roles.
// Rows come back grouped in that family order.
func MemberRoles(data []byte) ([]MemberRole, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	grouped := map[string][]MemberRole{}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: member roles xml: %v", ErrDecodeFailed, err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		var roleType string
		switch se.Name.Local {
		case "CaucusMemberRole":
			roleType = RoleTypeCaucus
		case "ParliamentaryPositionRole":
			roleType = RoleTypePosition
		case "CommitteeMemberRole":
			roleType = RoleTypeCommittee
		case "ParliamentaryAssociationsandInterparliamentaryGroupRole":
			roleType = RoleTypeAssociation
		default:
			continue
		}

		var r roleXML
		if err := dec.DecodeElement(&r, &se); err != nil {
			continue
		}
		grouped[roleType] = append(grouped[roleType], buildRole(roleType, r))
	}

	var out []MemberRole
	for _, roleType := range []string{RoleTypeCaucus, RoleTypePosition, RoleTypeCommittee, RoleTypeAssociation} {
		out = append(out, grouped[roleType]...)
	}
	return out, nil
}

func buildRole(roleType string, r roleXML) MemberRole {
	role := MemberRole{
		Type:       roleType,
		Parliament: ParseOptionalInt(r.ParliamentNumber),
		Session:    ParseOptionalInt(r.SessionNumber),
		IsCurrent:  r.ToDateTime == "",
	}
	if t, ok := ParseISODateTime(r.FromDateTime); ok {
		role.Start = &t
	}
	if t, ok := ParseISODateTime(r.ToDateTime); ok {
		role.End = &t
	}

	switch roleType {
	case RoleTypeCaucus:
		role.Name = firstNonEmpty(r.CaucusShortName, "Caucus Member")
	case RoleTypePosition:
		role.Name = firstNonEmpty(r.Title, "Parliamentary Position")
	case RoleTypeCommittee:
		role.Name = firstNonEmpty(r.AffiliationRoleName, r.CommitteeName, "Committee Member")
		role.Organization = optional(r.CommitteeName)
	case RoleTypeAssociation:
		role.Name = firstNonEmpty(r.Title, r.AssociationMemberRoleType, "Association Member")
		role.Organization = optional(r.Organization)
	}
	return role
}

// optional returns a pointer to the trimmed string, nil when empty.
func optional(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}
