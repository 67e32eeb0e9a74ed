package decode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BradleyExton/canpoli-api/internal/decode"
)

const disclosureIndexHTML = `<html><body>
<div class="quarters">
  <span id="quarters-dropdown-text"> From April 1, 2025 to June 30, 2025 </span>
</div>
<a class="csv-btn" href="/ProactiveDisclosure/en/members/2026/1/csv">Download CSV</a>
</body></html>`

func TestMemberExpenditureIndex(t *testing.T) {
	idx, err := decode.MemberExpenditureIndex([]byte(disclosureIndexHTML))
	require.NoError(t, err)
	assert.Equal(t, "/ProactiveDisclosure/en/members/2026/1/csv", idx.CSVHref)
	assert.Equal(t, "From April 1, 2025 to June 30, 2025", idx.PeriodText)
}

func TestMemberExpenditureIndex_MissingLink(t *testing.T) {
	_, err := decode.MemberExpenditureIndex([]byte("<html><body><p>no downloads</p></body></html>"))
	assert.ErrorIs(t, err, decode.ErrDecodeFailed)
}

func TestHouseOfficerCSVLinks(t *testing.T) {
	page := `<html><body>
<a href="/Content/Boie/HouseOfficers-2026-Q1.csv">Officers Q1</a>
<a href="/Content/Boie/Members-2026-Q1.csv">Members Q1</a>
<a href="/Content/Boie/HouseOfficers-2026-Q1.pdf">Officers PDF</a>
<a href="/Content/Boie/HouseOfficers-2025-Q4.csv">Officers Q4</a>
</body></html>`
	links, err := decode.HouseOfficerCSVLinks([]byte(page))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/Content/Boie/HouseOfficers-2026-Q1.csv",
		"/Content/Boie/HouseOfficers-2025-Q4.csv",
	}, links)
}

func TestHouseOfficerCSVLinks_NoneFound(t *testing.T) {
	_, err := decode.HouseOfficerCSVLinks([]byte("<html><body><a href='/x.pdf'>x</a></body></html>"))
	assert.ErrorIs(t, err, decode.ErrDecodeFailed)
}

const memberExpendituresCSV = "\ufeffName,Constituency,Caucus,Salaries,Travel,Hospitality,Contracts\n" +
	"\"Aboultaif, Ziad\",Edmonton Manning,Conservative,\"$62,429.01\",\"$23,518.62\",$309.97,\"$8,133.11\"\n" +
	",,,,,,\n" +
	"\"Vacant\",Halifax,,\"$10,000.00\",-,-,-\n"

func TestMemberExpenditures(t *testing.T) {
	rows, err := decode.MemberExpenditures([]byte(memberExpendituresCSV))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	r := rows[0]
	assert.Equal(t, "Aboultaif, Ziad", r.Name)
	require.Len(t, r.Categories, 4)
	assert.Equal(t, "Salaries", r.Categories[0].Category)
	assert.Equal(t, 62429.01, r.Categories[0].Amount)
	assert.Equal(t, "Travel", r.Categories[1].Category)
	assert.Equal(t, 23518.62, r.Categories[1].Amount)
	assert.Equal(t, "Hospitality", r.Categories[2].Category)
	assert.Equal(t, 309.97, r.Categories[2].Amount)
	assert.Equal(t, "Contracts", r.Categories[3].Category)
	assert.Equal(t, 8133.11, r.Categories[3].Amount)

	// Dash amounts decode to zero.
	assert.Equal(t, 0.0, rows[1].Categories[1].Amount)
}

const houseOfficerCSV = "House Officer Expenditures,,,,,,\n" +
	"\"Period: From April 1, 2025 to June 30, 2025\",,,,,,\n" +
	"Name,Role,Employees' Salaries($),Service Contracts($),Travel($),Hospitality($),Office($)\n" +
	"\"Scheer, Andrew\",Leader of the Opposition,\"1,114,157.00\",\"57,351.00\",\"9,503.00\",\"2,150.00\",\"31,905.00\"\n" +
	",,,,,,\n" +
	"\"Plamondon, Louis\",Dean of the House,\"12,000.00\",-,-,-,\"1,200.00\"\n"

func TestHouseOfficerExpenditures(t *testing.T) {
	doc, err := decode.HouseOfficerExpenditures([]byte(houseOfficerCSV))
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Contains(t, doc.PeriodText, "From April 1, 2025 to June 30, 2025")
	require.Len(t, doc.Rows, 2)

	r := doc.Rows[0]
	assert.Equal(t, "Scheer, Andrew", r.OfficerName)
	require.NotNil(t, r.RoleTitle)
	assert.Equal(t, "Leader of the Opposition", *r.RoleTitle)
	require.Len(t, r.Categories, 5)
	assert.Equal(t, "Employees' Salaries", r.Categories[0].Category)
	assert.Equal(t, 1114157.00, r.Categories[0].Amount)
	assert.Equal(t, "Service Contracts", r.Categories[1].Category)
	assert.Equal(t, 57351.00, r.Categories[1].Amount)
	assert.Equal(t, "Office", r.Categories[4].Category)
	assert.Equal(t, 31905.00, r.Categories[4].Amount)

	assert.Equal(t, 0.0, doc.Rows[1].Categories[1].Amount)
}

func TestHouseOfficerExpenditures_TooShort(t *testing.T) {
	doc, err := decode.HouseOfficerExpenditures([]byte("Title line,,\nPeriod line,,\n"))
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestSplitMemberName(t *testing.T) {
	last, first, ok := decode.SplitMemberName("Aboultaif, Ziad")
	require.True(t, ok)
	assert.Equal(t, "aboultaif", last)
	assert.Equal(t, "ziad", first)

	_, _, ok = decode.SplitMemberName("Vacant")
	assert.False(t, ok)
}
