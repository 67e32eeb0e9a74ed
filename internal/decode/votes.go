package decode

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

var (
	billNumberRe = regexp.MustCompile(`Bill\s+([A-Z]-\d+)`)
	sittingRe    = regexp.MustCompile(`Sitting\s+No\.\s*(\d+)`)
	parensRe     = regexp.MustCompile(`\((.*?)\)`)
)

// VoteRow is one row of the chamber votes table.
type VoteRow struct {
	VoteNumber int
	Subject    string
	Decision   string
	Yeas       *int
	Nays       *int
	Paired     *int
	VoteDate   *time.Time
	BillNumber *string
	DetailPath string
}

// VoteDetail carries the field overrides and the ballots of a vote detail
// page.
type VoteDetail struct {
	Subject    string
	MotionText string
	BillNumber *string
	Sitting    *int
	Ballots    []Ballot
}

// Ballot is one member's recorded position.
type Ballot struct {
	HocID      *int
	MemberName string
	Party      *string
	Riding     *string
	Position   string
}

// ExtractBillNumber pulls a bill designator ("C-5", "S-201") out of free
// text.
func ExtractBillNumber(text string) *string {
	m := billNumberRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return &m[1]
}

// VoteList decodes the chamber votes table page.
func VoteList(html []byte) ([]VoteRow, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: vote list html: %v", ErrDecodeFailed, err)
	}
	table := doc.Find("table#global-votes")
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: votes table not found", ErrDecodeFailed)
	}

	var out []VoteRow
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 6 {
			return
		}
		link := cells.Eq(0).Find("a").First()
		num := ParseIntLoose(link.Text())
		if num <= 0 {
			return
		}

		subject := collapseWS(cells.Eq(2).Text())

		// Empty segments are dropped before positional assignment, so a
		// missing middle count shifts the remainder left.
		var counts []string
		for _, c := range strings.Split(cells.Eq(3).Text(), "/") {
			if t := strings.TrimSpace(c); t != "" {
				counts = append(counts, t)
			}
		}
		var yeas, nays, paired *int
		if len(counts) > 0 {
			yeas = ParseIntPtr(counts[0])
		}
		if len(counts) > 1 {
			nays = ParseIntPtr(counts[1])
		}
		if len(counts) > 2 {
			paired = ParseIntPtr(counts[2])
		}

		v := VoteRow{
			VoteNumber: num,
			Subject:    subject,
			Decision:   collapseWS(cells.Eq(4).Text()),
			Yeas:       yeas,
			Nays:       nays,
			Paired:     paired,
			BillNumber: ExtractBillNumber(subject),
		}
		if d, ok := ParseDate(collapseWS(cells.Eq(5).Text())); ok {
			v.VoteDate = &d
		}
		if href, ok := link.Attr("href"); ok {
			v.DetailPath = href
		}
		out = append(out, v)
	})
	return out, nil
}

// ParseVoteDetail decodes a vote detail page: subject/motion/bill/sitting
// overrides plus the per-member ballot table.
func ParseVoteDetail(html []byte) (VoteDetail, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return VoteDetail{}, fmt.Errorf("%w: vote detail html: %v", ErrDecodeFailed, err)
	}

	var d VoteDetail
	if sel := doc.Find("#mip-vote-desc").First(); sel.Length() > 0 {
		d.Subject = collapseWS(sel.Text())
	}
	if sel := doc.Find("#mip-vote-text-collapsible-text").First(); sel.Length() > 0 {
		d.MotionText = collapseWS(sel.Text())
	}
	if sel := doc.Find(".mip-vote-bill-section h2").First(); sel.Length() > 0 {
		billText := collapseWS(sel.Text())
		if billText != "" {
			if num := ExtractBillNumber(billText); num != nil {
				d.BillNumber = num
			} else {
				d.BillNumber = &billText
			}
		}
	}
	if sel := doc.Find(".mip-vote-title-section p").First(); sel.Length() > 0 {
		if m := sittingRe.FindStringSubmatch(sel.Text()); m != nil {
			d.Sitting = ParseIntPtr(m[1])
		}
	}

	doc.Find(".ce-mip-mp-vote-panel-body table").First().Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}
		nameCell := cells.Eq(0)
		link := nameCell.Find("a").First()

		b := Ballot{MemberName: collapseWS(nameCell.Text())}
		if link.Length() > 0 {
			b.MemberName = collapseWS(link.Text())
			if href, ok := link.Attr("href"); ok {
				parts := strings.Split(strings.Trim(href, "/"), "/")
				b.HocID = ParseIntPtr(parts[len(parts)-1])
			}
		}
		if m := parensRe.FindStringSubmatch(nameCell.Text()); m != nil {
			riding := strings.TrimSpace(m[1])
			if riding != "" {
				b.Riding = &riding
			}
		}
		b.Party = optional(collapseWS(cells.Eq(1).Text()))

		voteText := collapseWS(cells.Eq(2).Text())
		pairedText := ""
		if cells.Length() > 3 {
			pairedText = collapseWS(cells.Eq(3).Text())
		}
		switch {
		case voteText != "":
			b.Position = voteText
		case pairedText != "":
			b.Position = "Paired"
		default:
			b.Position = "Absent"
		}

		d.Ballots = append(d.Ballots, b)
	})
	return d, nil
}
