package decode

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// DebateHeader is the Hansard document metadata from the ExtractedItem
// block.
type DebateHeader struct {
	Date        *time.Time
	Volume      *string
	Number      *string
	SpeakerName *string
	Parliament  *int
	Session     *int
}

// Intervention is one speech segment of a Hansard document, carrying the
// running order-of-business context in effect where it starts.
type Intervention struct {
	SpeakerName        *string
	SpeakerAffiliation *string
	FloorLanguage      *string
	Timestamp          *string
	OrderOfBusiness    *string
	SubjectTitle       *string
	Type               *string
	Text               *string
}

// hansardTextCapture accumulates the flattened text of one element subtree,
// nested markup included.
type hansardTextCapture struct {
	active bool
	depth  int
	kind   string
	attr   string
	buf    strings.Builder
}

// Hansard decodes a Hansard sitting document in one streaming pass.
// Interventions come back sequenced in document order; the caller assigns
// 1..N. Context elements (order of business, subject, floor language,
// timestamp) update a running state that each intervention snapshots at its
// start tag, so context markup inside one intervention takes effect for the
// following ones.
func Hansard(data []byte) (DebateHeader, []Intervention, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	extracted := map[string]string{}
	var out []Intervention

	var (
		curOrder, curSubject, curLang, curTimestamp *string

		depth   int
		capture hansardTextCapture

		inIntervention    bool
		interventionDepth int
		cur               Intervention

		inPerson    bool
		personDepth int
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return DebateHeader{}, nil, fmt.Errorf("%w: hansard xml: %v", ErrDecodeFailed, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if capture.active {
				continue
			}
			switch t.Name.Local {
			case "ExtractedItem":
				capture = hansardTextCapture{active: true, depth: depth, kind: "item", attr: xmlAttr(t, "Name")}
			case "OrderOfBusinessTitle", "SubjectOfBusinessTitle":
				capture = hansardTextCapture{active: true, depth: depth, kind: t.Name.Local}
			case "FloorLanguage":
				if v := xmlAttr(t, "language"); v != "" {
					curLang = &v
				} else {
					curLang = nil
				}
			case "Timestamp":
				hr, errH := strconv.Atoi(xmlAttr(t, "Hr"))
				mn, errM := strconv.Atoi(xmlAttr(t, "Mn"))
				if errH == nil && errM == nil {
					ts := fmt.Sprintf("%02d:%02d", hr, mn)
					curTimestamp = &ts
				}
			case "Intervention":
				if !inIntervention {
					inIntervention = true
					interventionDepth = depth
					cur = Intervention{
						OrderOfBusiness: curOrder,
						SubjectTitle:    curSubject,
						Timestamp:       curTimestamp,
					}
					if curLang != nil {
						lang := strings.ToLower(*curLang)
						cur.FloorLanguage = &lang
					}
					if v := xmlAttr(t, "Type"); v != "" {
						cur.Type = &v
					}
				}
			case "PersonSpeaking":
				if inIntervention && !inPerson {
					inPerson = true
					personDepth = depth
				}
			case "Affiliation":
				if inPerson && cur.SpeakerAffiliation == nil {
					capture = hansardTextCapture{active: true, depth: depth, kind: "affiliation"}
				}
			case "ParaText":
				if inIntervention {
					capture = hansardTextCapture{active: true, depth: depth, kind: "para"}
				}
			}

		case xml.CharData:
			if capture.active {
				capture.buf.Write(t)
			}

		case xml.EndElement:
			if capture.active && depth == capture.depth {
				text := strings.TrimSpace(capture.buf.String())
				switch capture.kind {
				case "item":
					if capture.attr != "" {
						extracted[capture.attr] = text
					}
				case "OrderOfBusinessTitle":
					v := text
					curOrder = &v
				case "SubjectOfBusinessTitle":
					v := text
					curSubject = &v
				case "affiliation":
					v := text
					cur.SpeakerAffiliation = &v
					if v != "" {
						name := strings.TrimSpace(strings.SplitN(v, "(", 2)[0])
						cur.SpeakerName = &name
					}
				case "para":
					if text != "" {
						appendPara(&cur, text)
					}
				}
				capture = hansardTextCapture{}
			}
			if inPerson && depth == personDepth {
				inPerson = false
			}
			if inIntervention && depth == interventionDepth {
				inIntervention = false
				out = append(out, cur)
				cur = Intervention{}
			}
			depth--
		}
	}

	return buildDebateHeader(extracted), out, nil
}

// appendPara joins paragraph texts with blank lines.
func appendPara(in *Intervention, text string) {
	if in.Text == nil {
		in.Text = &text
		return
	}
	joined := *in.Text + "\n\n" + text
	in.Text = &joined
}

func buildDebateHeader(extracted map[string]string) DebateHeader {
	var h DebateHeader
	if d, ok := ParseDate(extracted["Date"]); ok {
		h.Date = &d
	} else {
		assembled := fmt.Sprintf("%s-%s-%s",
			extracted["MetaDateNumYear"], extracted["MetaDateNumMonth"], extracted["MetaDateNumDay"])
		if d, ok := ParseDate(assembled); ok {
			h.Date = &d
		}
	}
	h.Volume = optionalFromMap(extracted, "Volume")
	h.Number = optionalFromMap(extracted, "Number")
	h.SpeakerName = optionalFromMap(extracted, "SpeakerName")
	h.Parliament = ParseOptionalInt(extracted["ParliamentNumber"])
	h.Session = ParseOptionalInt(extracted["SessionNumber"])
	return h
}

func optionalFromMap(m map[string]string, key string) *string {
	if v, ok := m[key]; ok && v != "" {
		return &v
	}
	return nil
}

func xmlAttr(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
