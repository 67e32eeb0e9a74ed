package decode_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BradleyExton/canpoli-api/internal/decode"
)

const billsJSON = `[
  {
    "BillId": 13730000,
    "BillNumberFormatted": "C-5",
    "ParliamentNumber": 45,
    "SessionNumber": 1,
    "LongTitleEn": "An Act to enact the Free Trade and Labour Mobility in Canada Act",
    "ShortTitleEn": "One Canadian Economy Act",
    "LongTitleFr": "Loi edictant la Loi sur le libre-echange et la mobilite de la main-d'oeuvre au Canada",
    "CurrentStatusEn": "Royal assent received",
    "PassedHouseFirstReadingDateTime": "2025-06-06T00:00:00",
    "PassedSenateFirstReadingDateTime": "2025-06-17T00:00:00",
    "LatestActivityDateTime": "2025-06-26T16:45:00",
    "SponsorEn": "Hon. Dominic LeBlanc"
  },
  {
    "BillId": 13740001,
    "BillNumberFormatted": "S-201",
    "ParliamentNumber": 45,
    "SessionNumber": 1,
    "LongTitleEn": "",
    "ShortTitleEn": "An Act respecting something short"
  },
  {
    "BillId": 9999,
    "ParliamentNumber": 45,
    "SessionNumber": 1
  }
]`

func TestBills(t *testing.T) {
	bills, err := decode.Bills([]byte(billsJSON))
	require.NoError(t, err)
	require.Len(t, bills, 2)

	b := bills[0]
	assert.Equal(t, "C-5", b.BillNumber)
	require.NotNil(t, b.LegisinfoID)
	assert.Equal(t, 13730000, *b.LegisinfoID)
	require.NotNil(t, b.Parliament)
	assert.Equal(t, 45, *b.Parliament)
	require.NotNil(t, b.Session)
	assert.Equal(t, 1, *b.Session)
	require.NotNil(t, b.TitleEn)
	assert.Equal(t, "An Act to enact the Free Trade and Labour Mobility in Canada Act", *b.TitleEn)
	require.NotNil(t, b.TitleFr)
	require.NotNil(t, b.Status)
	assert.Equal(t, "Royal assent received", *b.Status)
	require.NotNil(t, b.SponsorName)
	assert.Equal(t, "Hon. Dominic LeBlanc", *b.SponsorName)
	assert.NotEmpty(t, b.SourceHash)

	// Introduced is the earliest of the two first-reading timestamps.
	require.NotNil(t, b.IntroducedDate)
	assert.True(t, b.IntroducedDate.Equal(time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, b.LatestActivity)
	assert.True(t, b.LatestActivity.Equal(time.Date(2025, 6, 26, 16, 45, 0, 0, time.UTC)))

	// Long title is empty, short title takes over.
	s := bills[1]
	require.NotNil(t, s.TitleEn)
	assert.Equal(t, "An Act respecting something short", *s.TitleEn)
	assert.Nil(t, s.TitleFr)
	assert.Nil(t, s.IntroducedDate)
	assert.Nil(t, s.SponsorName)
}

func TestBills_HashIsStablePerItem(t *testing.T) {
	first, err := decode.Bills([]byte(billsJSON))
	require.NoError(t, err)
	second, err := decode.Bills([]byte(billsJSON))
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].SourceHash, second[i].SourceHash)
	}
	assert.NotEqual(t, first[0].SourceHash, first[1].SourceHash)
}

func TestBills_BadJSON(t *testing.T) {
	_, err := decode.Bills([]byte("<html>down for maintenance</html>"))
	assert.ErrorIs(t, err, decode.ErrDecodeFailed)
}
