package decode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// The numeric layout uses unpadded tokens so both "2025-06-03" and the
// assembled "2025-6-3" Hansard fallback parse.
var dateLayouts = []string{
	"Monday, January 2, 2006",
	"January 2, 2006",
	"2006-1-2",
}

var dateTimeLayouts = []string{
	"January 2, 2006, 3:04 PM",
	"January 2, 2006 3:04 PM",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

var (
	digitsRe = regexp.MustCompile(`[0-9]+`)
	rangeRe  = regexp.MustCompile(`From\s+([A-Za-z]+\s+\d{1,2},\s+\d{4})\s+to\s+([A-Za-z]+\s+\d{1,2},\s+\d{4})`)
)

// ParseDate parses the date renderings found on ourcommons pages. Returned
// times are midnight UTC.
func ParseDate(text string) (time.Time, bool) {
	t := strings.TrimSpace(text)
	if t == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, t); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// ParseDateTime parses page and feed timestamps. Naive values are taken as
// UTC; zoned values are normalized to UTC.
func ParseDateTime(text string) (time.Time, bool) {
	t := strings.TrimSpace(text)
	if t == "" {
		return time.Time{}, false
	}
	t = strings.ReplaceAll(t, "a.m.", "AM")
	t = strings.ReplaceAll(t, "p.m.", "PM")
	t = strings.ReplaceAll(t, " at ", " ")
	for _, zone := range []string{"(EDT)", "(EST)", "(PDT)", "(PST)"} {
		t = strings.ReplaceAll(t, zone, "")
	}
	t = strings.TrimSpace(t)
	for _, layout := range dateTimeLayouts {
		if d, err := time.Parse(layout, t); err == nil {
			return d.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseISODateTime parses an ISO-8601 timestamp only, naive taken as UTC.
// Role feeds carry ISO values exclusively.
func ParseISODateTime(text string) (time.Time, bool) {
	t := strings.TrimSpace(text)
	if t == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if d, err := time.Parse(layout, t); err == nil {
			return d.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseDateRange extracts the two dates of a "From <date> to <date>" label.
func ParseDateRange(text string) (time.Time, time.Time, bool) {
	m := rangeRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, time.Time{}, false
	}
	start, ok1 := ParseDate(m[1])
	end, ok2 := ParseDate(m[2])
	if !ok1 || !ok2 {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// ParseAmount parses a dollar rendering ("$1,234.56", "-", "") into a float.
// Unparseable values come back as zero.
func ParseAmount(text string) float64 {
	t := strings.TrimSpace(text)
	t = strings.ReplaceAll(t, "$", "")
	t = strings.ReplaceAll(t, ",", "")
	t = strings.ReplaceAll(t, " ", "")
	if t == "" || t == "-" {
		return 0
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseIntLoose extracts the digits of a rendering like "12,345 signatures"
// and parses them; anything without digits is zero.
func ParseIntLoose(text string) int {
	if p := ParseIntPtr(text); p != nil {
		return *p
	}
	return 0
}

// ParseIntPtr is ParseIntLoose with an absent result for digit-free input.
func ParseIntPtr(text string) *int {
	m := digitsRe.FindAllString(text, -1)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(strings.Join(m, ""))
	if err != nil {
		return nil
	}
	return &n
}

// ParseOptionalInt parses a clean integer rendering, nil when absent or
// malformed.
func ParseOptionalInt(text string) *int {
	t := strings.TrimSpace(text)
	if t == "" {
		return nil
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		return nil
	}
	return &n
}

// FiscalYear renders the April-to-March fiscal year containing the date.
func FiscalYear(t time.Time) string {
	if t.Month() >= time.April {
		return fmt.Sprintf("%d-%d", t.Year(), t.Year()+1)
	}
	return fmt.Sprintf("%d-%d", t.Year()-1, t.Year())
}

// collapseWS flattens runs of whitespace into single spaces.
func collapseWS(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
