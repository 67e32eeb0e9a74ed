package decode

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExpenditureIndex is the latest-quarter CSV link and reporting period text
// scraped from the proactive disclosure page.
type ExpenditureIndex struct {
	CSVHref    string
	PeriodText string
}

// CategoryAmount is one reported spending category of a CSV row.
type CategoryAmount struct {
	Category string
	Amount   float64
}

// MemberExpenditureRow is one member row of the quarterly expenditure CSV,
// expanded into the four reported categories.
type MemberExpenditureRow struct {
	Name       string
	Categories []CategoryAmount
}

// HouseOfficerCSV is one house officer expenditure file. The period text is
// the file's own reporting period line, not the page's.
type HouseOfficerCSV struct {
	PeriodText string
	Rows       []HouseOfficerExpenditureRow
}

// HouseOfficerExpenditureRow is one officer row, expanded into the five
// reported categories with the "($)" column suffix dropped.
type HouseOfficerExpenditureRow struct {
	OfficerName string
	RoleTitle   *string
	Categories  []CategoryAmount
}

var memberExpenditureCategories = []string{"Salaries", "Travel", "Hospitality", "Contracts"}

// officer CSV columns carry a "($)" suffix that is dropped on the stored
// category name.
var houseOfficerCategories = []struct{ column, category string }{
	{"Employees' Salaries($)", "Employees' Salaries"},
	{"Service Contracts($)", "Service Contracts"},
	{"Travel($)", "Travel"},
	{"Hospitality($)", "Hospitality"},
	{"Office($)", "Office"},
}

// MemberExpenditureIndex locates the members CSV link and the period text on
// the proactive disclosure page.
func MemberExpenditureIndex(html []byte) (ExpenditureIndex, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return ExpenditureIndex{}, fmt.Errorf("%w: expenditure index: %v", ErrDecodeFailed, err)
	}
	href, ok := doc.Find("a.csv-btn").First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return ExpenditureIndex{}, fmt.Errorf("%w: member expenditure csv link not found", ErrDecodeFailed)
	}
	return ExpenditureIndex{
		CSVHref:    href,
		PeriodText: strings.TrimSpace(doc.Find("#quarters-dropdown-text").First().Text()),
	}, nil
}

// HouseOfficerCSVLinks collects the house officer CSV hrefs from the board
// disclosure page.
func HouseOfficerCSVLinks(html []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: house officer index: %v", ErrDecodeFailed, err)
	}
	var hrefs []string
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		if strings.HasSuffix(href, ".csv") && strings.Contains(href, "HouseOfficers") {
			hrefs = append(hrefs, href)
		}
	})
	if len(hrefs) == 0 {
		return nil, fmt.Errorf("%w: house officer csv links not found", ErrDecodeFailed)
	}
	return hrefs, nil
}

// MemberExpenditures decodes the member expenditure CSV. Rows without a Name
// cell are dropped and every kept row yields all four categories, missing or
// dash amounts decoding to zero.
func MemberExpenditures(body []byte) ([]MemberExpenditureRow, error) {
	records, err := readCSV(body)
	if err != nil {
		return nil, fmt.Errorf("%w: member expenditures csv: %v", ErrDecodeFailed, err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	index := make(map[string]int, len(records[0]))
	for i, header := range records[0] {
		index[strings.TrimPrefix(header, "\ufeff")] = i
	}
	cell := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	rows := make([]MemberExpenditureRow, 0, len(records)-1)
	for _, record := range records[1:] {
		name := strings.Trim(strings.TrimSpace(cell(record, "Name")), "\ufeff")
		if name == "" {
			continue
		}
		row := MemberExpenditureRow{Name: name}
		for _, category := range memberExpenditureCategories {
			row.Categories = append(row.Categories, CategoryAmount{
				Category: category,
				Amount:   ParseAmount(cell(record, category)),
			})
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// HouseOfficerExpenditures decodes one officer CSV: row 1 carries the
// reporting period, row 2 the headers, the rest the data. Files too short to
// hold a data section decode to nil.
func HouseOfficerExpenditures(body []byte) (*HouseOfficerCSV, error) {
	records, err := readCSV(body)
	if err != nil {
		return nil, fmt.Errorf("%w: house officer csv: %v", ErrDecodeFailed, err)
	}
	if len(records) < 3 {
		return nil, nil
	}

	out := &HouseOfficerCSV{}
	if len(records[1]) > 0 {
		out.PeriodText = records[1][0]
	}

	index := make(map[string]int, len(records[2]))
	for i, header := range records[2] {
		index[strings.TrimSpace(header)] = i
	}
	cell := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	for _, record := range records[3:] {
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}
		row := HouseOfficerExpenditureRow{OfficerName: cell(record, "Name")}
		if role := cell(record, "Role"); role != "" {
			row.RoleTitle = &role
		}
		for _, mapping := range houseOfficerCategories {
			row.Categories = append(row.Categories, CategoryAmount{
				Category: mapping.category,
				Amount:   ParseAmount(cell(record, mapping.column)),
			})
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// SplitMemberName splits a "Last, First" CSV name into lowered lookup parts.
// Names without a comma cannot be matched against the roster.
func SplitMemberName(name string) (last, first string, ok bool) {
	if !strings.Contains(name, ",") {
		return "", "", false
	}
	parts := strings.SplitN(name, ",", 2)
	last = strings.ToLower(strings.TrimSpace(parts[0]))
	if len(parts) > 1 {
		first = strings.ToLower(strings.TrimSpace(parts[1]))
	}
	return last, first, true
}

func readCSV(body []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader.ReadAll()
}
