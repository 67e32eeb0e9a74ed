package decode

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Member is one sitting MP from the House members search feed.
type Member struct {
	HocID        int
	FirstName    string
	LastName     string
	Honorific    string
	Email        string
	Phone        string
	Constituency string
	Province     string
	Caucus       string
}

type memberXML struct {
	PersonID        string `xml:"PersonId"`
	FirstName       string `xml:"PersonOfficialFirstName"`
	LastName        string `xml:"PersonOfficialLastName"`
	Honorific       string `xml:"PersonShortHonorific"`
	PersonEmail     string `xml:"PersonEmail"`
	Email           string `xml:"Email"`
	PersonTelephone string `xml:"PersonTelephone"`
	Telephone       string `xml:"Telephone"`
	Constituency    string `xml:"ConstituencyName"`
	Province        string `xml:"ConstituencyProvinceTerritoryName"`
	Caucus          string `xml:"CaucusShortName"`
}

// Members decodes the members search XML. MemberOfParliament elements are
// picked up at any depth; entries without a usable PersonId are dropped.
func Members(data []byte) ([]Member, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var out []Member
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: members xml: %v", ErrDecodeFailed, err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "MemberOfParliament" {
			continue
		}
		var m memberXML
		if err := dec.DecodeElement(&m, &se); err != nil {
			continue
		}
		id := ParseIntLoose(m.PersonID)
		if id <= 0 {
			continue
		}
		out = append(out, Member{
			HocID:        id,
			FirstName:    strings.TrimSpace(m.FirstName),
			LastName:     strings.TrimSpace(m.LastName),
			Honorific:    strings.TrimSpace(m.Honorific),
			Email:        firstNonEmpty(m.PersonEmail, m.Email),
			Phone:        firstNonEmpty(m.PersonTelephone, m.Telephone),
			Constituency: strings.TrimSpace(m.Constituency),
			Province:     strings.TrimSpace(m.Province),
			Caucus:       strings.TrimSpace(m.Caucus),
		})
	}
	return out, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}
