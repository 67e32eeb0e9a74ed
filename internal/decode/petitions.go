package decode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

var (
	totalPagesRe   = regexp.MustCompile(`Page:\s*\d+\s*of\s*(\d+)`)
	parenDigitsRe  = regexp.MustCompile(`\((\d+)\)`)
	petitionRowSel = "tr.Pub"
)

// PetitionRow is one result row of the petitions search.
type PetitionRow struct {
	Number     string
	Title      string
	Status     string
	Sponsor    string
	Signatures *int
	DetailHref string
}

// PetitionPage is one decoded SearchAsync response.
type PetitionPage struct {
	TotalPages int
	Rows       []PetitionRow
}

// PetitionDetail carries the sponsor link and history dates of a petition
// detail page.
type PetitionDetail struct {
	SponsorHocID     *int
	SponsorName      string
	PresentationDate *time.Time
	ClosingDate      *time.Time
}

// PetitionSearchPage decodes a SearchAsync JSON envelope: the embedded html
// fragment carries both the result rows and the pagination label.
func PetitionSearchPage(body []byte) (PetitionPage, error) {
	var envelope struct {
		HTML string `json:"html"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return PetitionPage{}, fmt.Errorf("%w: petition search json: %v", ErrDecodeFailed, err)
	}

	page := PetitionPage{TotalPages: 1}
	if m := totalPagesRe.FindStringSubmatch(envelope.HTML); m != nil {
		if n := ParseIntLoose(m[1]); n > 0 {
			page.TotalPages = n
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(envelope.HTML))
	if err != nil {
		return PetitionPage{}, fmt.Errorf("%w: petition search html: %v", ErrDecodeFailed, err)
	}

	doc.Find(petitionRowSel).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 6 {
			return
		}
		link := row.Find("a.publicationTitleSearch").First()
		if link.Length() == 0 {
			return
		}
		spans := link.Find("span")
		if spans.Length() == 0 {
			return
		}
		number := collapseWS(spans.Eq(0).Text())
		if number == "" {
			return
		}
		title := collapseWS(link.Text())
		if spans.Length() > 1 {
			title = collapseWS(spans.Eq(1).Text())
		}

		r := PetitionRow{
			Number:     number,
			Title:      title,
			Status:     collapseWS(cells.Eq(3).Text()),
			Sponsor:    collapseWS(cells.Eq(4).Text()),
			Signatures: ParseIntPtr(cells.Eq(5).Text()),
		}
		if href, ok := link.Attr("href"); ok {
			r.DetailHref = href
		}
		page.Rows = append(page.Rows, r)
	})
	return page, nil
}

// ParsePetitionDetail decodes a petition detail page.
func ParsePetitionDetail(html []byte) (PetitionDetail, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return PetitionDetail{}, fmt.Errorf("%w: petition detail html: %v", ErrDecodeFailed, err)
	}

	var d PetitionDetail
	if link := doc.Find("#DetailsMember a").First(); link.Length() > 0 {
		if href, ok := link.Attr("href"); ok {
			if m := parenDigitsRe.FindStringSubmatch(href); m != nil {
				d.SponsorHocID = ParseIntPtr(m[1])
			}
			d.SponsorName = collapseWS(link.Text())
		}
	}

	doc.Find(".history-section dt").Each(func(_ int, dt *goquery.Selection) {
		label := strings.ToLower(collapseWS(dt.Text()))
		dd := dt.NextAllFiltered("dd").First()
		if dd.Length() == 0 {
			return
		}
		value, ok := ParseDateTime(collapseWS(dd.Text()))
		if !ok {
			return
		}
		if strings.Contains(label, "presented") {
			day := value.Truncate(24 * time.Hour)
			d.PresentationDate = &day
		}
		if strings.Contains(label, "closed") {
			v := value
			d.ClosingDate = &v
		}
	})
	return d, nil
}
