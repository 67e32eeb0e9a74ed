package decode

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// PartySeatCount is one row of the party-standings feed. The feed repeats
// caucuses across categories; callers aggregate by caucus name.
type PartySeatCount struct {
	Caucus    string
	SeatCount int
}

// PartyStandings decodes the party-standings XML. PartyStanding elements
// are picked up at any depth.
func PartyStandings(data []byte) ([]PartySeatCount, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var out []PartySeatCount
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: party standings xml: %v", ErrDecodeFailed, err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "PartyStanding" {
			continue
		}
		var row struct {
			Caucus    string `xml:"CaucusShortName"`
			SeatCount string `xml:"SeatCount"`
		}
		if err := dec.DecodeElement(&row, &se); err != nil {
			continue
		}
		caucus := strings.TrimSpace(row.Caucus)
		if caucus == "" {
			continue
		}
		out = append(out, PartySeatCount{
			Caucus:    caucus,
			SeatCount: ParseIntLoose(row.SeatCount),
		})
	}
	return out, nil
}
