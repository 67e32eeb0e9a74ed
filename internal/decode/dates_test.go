package decode_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BradleyExton/canpoli-api/internal/decode"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"Monday, June 16, 2025", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), true},
		{"June 16, 2025", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), true},
		{"2025-06-03", time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), true},
		{"2025-6-3", time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), true},
		{"  June 16, 2025  ", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), true},
		{"16 June 2025", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tc := range cases {
		got, ok := decode.ParseDate(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.True(t, got.Equal(tc.want), "input %q: got %v", tc.in, got)
		}
	}
}

func TestParseDateTime(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"June 3, 2025, 10:15 a.m. (EDT)", time.Date(2025, 6, 3, 10, 15, 0, 0, time.UTC), true},
		{"May 29, 2025, 3:59 p.m. (EST)", time.Date(2025, 5, 29, 15, 59, 0, 0, time.UTC), true},
		{"June 3, 2025 at 2:30 p.m.", time.Date(2025, 6, 3, 14, 30, 0, 0, time.UTC), true},
		{"2025-06-10T14:30:00Z", time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC), true},
		{"2025-06-10T14:30:00", time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC), true},
		{"not a timestamp", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tc := range cases {
		got, ok := decode.ParseDateTime(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.True(t, got.Equal(tc.want), "input %q: got %v", tc.in, got)
		}
	}
}

func TestParseDateTime_ZonedNormalizedToUTC(t *testing.T) {
	got, ok := decode.ParseDateTime("2025-06-10T14:30:00-04:00")
	require.True(t, ok)
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(time.Date(2025, 6, 10, 18, 30, 0, 0, time.UTC)))
}

func TestParseISODateTime(t *testing.T) {
	got, ok := decode.ParseISODateTime("2021-11-22T00:00:00")
	require.True(t, ok)
	assert.True(t, got.Equal(time.Date(2021, 11, 22, 0, 0, 0, 0, time.UTC)))

	got, ok = decode.ParseISODateTime("2021-11-22")
	require.True(t, ok)
	assert.True(t, got.Equal(time.Date(2021, 11, 22, 0, 0, 0, 0, time.UTC)))

	_, ok = decode.ParseISODateTime("November 22, 2021")
	assert.False(t, ok)
}

func TestParseDateRange(t *testing.T) {
	start, end, ok := decode.ParseDateRange("Display by period: From April 1, 2025 to June 30, 2025")
	require.True(t, ok)
	assert.True(t, start.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, end.Equal(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)))

	_, _, ok = decode.ParseDateRange("Fiscal year 2025")
	assert.False(t, ok)
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 1234.56, decode.ParseAmount("$1,234.56"))
	assert.Equal(t, 12345.0, decode.ParseAmount("12 345"))
	assert.Equal(t, 0.0, decode.ParseAmount("-"))
	assert.Equal(t, 0.0, decode.ParseAmount(""))
	assert.Equal(t, 0.0, decode.ParseAmount("n/a"))
}

func TestParseIntPtr(t *testing.T) {
	got := decode.ParseIntPtr("12,345 signatures")
	require.NotNil(t, got)
	assert.Equal(t, 12345, *got)

	got = decode.ParseIntPtr("(89156)")
	require.NotNil(t, got)
	assert.Equal(t, 89156, *got)

	assert.Nil(t, decode.ParseIntPtr("no digits here"))
	assert.Equal(t, 0, decode.ParseIntLoose("no digits here"))
}

func TestParseOptionalInt(t *testing.T) {
	got := decode.ParseOptionalInt(" 45 ")
	require.NotNil(t, got)
	assert.Equal(t, 45, *got)

	assert.Nil(t, decode.ParseOptionalInt(""))
	assert.Nil(t, decode.ParseOptionalInt("45th"))
}

func TestFiscalYear(t *testing.T) {
	assert.Equal(t, "2025-2026", decode.FiscalYear(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-2025", decode.FiscalYear(time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-2026", decode.FiscalYear(time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)))
}

func TestFirstDate(t *testing.T) {
	got := decode.FirstDate("2025-06-10T14:30:00Z", "2025-05-01T09:00:00Z")
	require.NotNil(t, got)
	assert.True(t, got.Equal(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)))

	got = decode.FirstDate("", "garbage")
	assert.Nil(t, got)
}
