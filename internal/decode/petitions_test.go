package decode_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BradleyExton/canpoli-api/internal/decode"
)

const petitionSearchHTML = `<div class="results">
<table>
  <tbody>
    <tr class="Pub">
      <td>1</td>
      <td>2025-06-18</td>
      <td><a class="publicationTitleSearch" href="Details?Petition=e-4321"><span>e-4321</span><span>Protect old growth forests</span></a></td>
      <td>Open for signature</td>
      <td>Patrick Weiler</td>
      <td>12,345</td>
    </tr>
    <tr class="Pub">
      <td>2</td>
      <td>2025-06-17</td>
      <td>No link in this row</td>
      <td>Closed</td>
      <td>Nobody</td>
      <td>9</td>
    </tr>
    <tr class="Pub"><td>too</td><td>few</td><td>cells</td></tr>
  </tbody>
</table>
<div class="paging">Page: 1 of 3</div>
</div>`

func searchEnvelope(t *testing.T, html string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]string{"html": html})
	require.NoError(t, err)
	return body
}

func TestPetitionSearchPage(t *testing.T) {
	page, err := decode.PetitionSearchPage(searchEnvelope(t, petitionSearchHTML))
	require.NoError(t, err)

	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Rows, 1)

	r := page.Rows[0]
	assert.Equal(t, "e-4321", r.Number)
	assert.Equal(t, "Protect old growth forests", r.Title)
	assert.Equal(t, "Open for signature", r.Status)
	assert.Equal(t, "Patrick Weiler", r.Sponsor)
	require.NotNil(t, r.Signatures)
	assert.Equal(t, 12345, *r.Signatures)
	assert.Equal(t, "Details?Petition=e-4321", r.DetailHref)
}

func TestPetitionSearchPage_NoPagingLabel(t *testing.T) {
	page, err := decode.PetitionSearchPage(searchEnvelope(t, "<table><tbody></tbody></table>"))
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Rows)
}

func TestPetitionSearchPage_BadJSON(t *testing.T) {
	_, err := decode.PetitionSearchPage([]byte("<html>not json</html>"))
	assert.ErrorIs(t, err, decode.ErrDecodeFailed)
}

const petitionDetailHTML = `<html><body>
<div id="DetailsMember">
  <a href="/Members/en/patrick-weiler(105123)">Patrick Weiler</a>
</div>
<div class="history-section">
  <dl>
    <dt>Open for signature</dt>
    <dd>April 1, 2025, 8:00 a.m. (EDT)</dd>
    <dt>Closed for signature</dt>
    <div class="annotation">90 days</div>
    <dd>May 29, 2025, 3:59 p.m. (EDT)</dd>
    <dt>Presented to the House of Commons</dt>
    <dd>June 3, 2025, 10:15 a.m. (EDT)</dd>
  </dl>
</div>
</body></html>`

func TestParsePetitionDetail(t *testing.T) {
	d, err := decode.ParsePetitionDetail([]byte(petitionDetailHTML))
	require.NoError(t, err)

	require.NotNil(t, d.SponsorHocID)
	assert.Equal(t, 105123, *d.SponsorHocID)
	assert.Equal(t, "Patrick Weiler", d.SponsorName)

	// Presentation keeps the date only; closing keeps the full timestamp.
	require.NotNil(t, d.PresentationDate)
	assert.True(t, d.PresentationDate.Equal(time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, d.ClosingDate)
	assert.True(t, d.ClosingDate.Equal(time.Date(2025, 5, 29, 15, 59, 0, 0, time.UTC)))
}

func TestParsePetitionDetail_NoSponsor(t *testing.T) {
	d, err := decode.ParsePetitionDetail([]byte("<html><body><p>nothing here</p></body></html>"))
	require.NoError(t, err)
	assert.Nil(t, d.SponsorHocID)
	assert.Empty(t, d.SponsorName)
	assert.Nil(t, d.PresentationDate)
	assert.Nil(t, d.ClosingDate)
}
