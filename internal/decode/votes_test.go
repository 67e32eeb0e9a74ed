package decode_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BradleyExton/canpoli-api/internal/decode"
)

const voteListHTML = `<html><body>
<table id="global-votes" class="table">
  <thead><tr><th>Number</th><th>Type</th><th>Subject</th><th>Votes</th><th>Result</th><th>Date</th></tr></thead>
  <tbody>
    <tr>
      <td><a href="/members/en/votes/45/1/5">No. 5</a></td>
      <td>Recorded</td>
      <td>2nd reading of Bill C-5, An Act to enact the Free Trade and Labour Mobility Act</td>
      <td>170 / 145 / 2</td>
      <td>Agreed To</td>
      <td>Monday, June 16, 2025</td>
    </tr>
    <tr>
      <td><a href="/members/en/votes/45/1/4">No. 4</a></td>
      <td>Recorded</td>
      <td>Opposition Motion (Cost of living)</td>
      <td>144 / 169</td>
      <td>Negatived</td>
      <td>June 10, 2025</td>
    </tr>
    <tr><td colspan="6">No results</td></tr>
  </tbody>
</table>
</body></html>`

func TestVoteList(t *testing.T) {
	rows, err := decode.VoteList([]byte(voteListHTML))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	v := rows[0]
	assert.Equal(t, 5, v.VoteNumber)
	assert.Equal(t, "2nd reading of Bill C-5, An Act to enact the Free Trade and Labour Mobility Act", v.Subject)
	assert.Equal(t, "Agreed To", v.Decision)
	require.NotNil(t, v.Yeas)
	assert.Equal(t, 170, *v.Yeas)
	require.NotNil(t, v.Nays)
	assert.Equal(t, 145, *v.Nays)
	require.NotNil(t, v.Paired)
	assert.Equal(t, 2, *v.Paired)
	require.NotNil(t, v.VoteDate)
	assert.True(t, v.VoteDate.Equal(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, v.BillNumber)
	assert.Equal(t, "C-5", *v.BillNumber)
	assert.Equal(t, "/members/en/votes/45/1/5", v.DetailPath)

	assert.Nil(t, rows[1].Paired)
	assert.Nil(t, rows[1].BillNumber)
	assert.Equal(t, "Negatived", rows[1].Decision)
}

func TestVoteList_TableMissing(t *testing.T) {
	_, err := decode.VoteList([]byte("<html><body><p>maintenance</p></body></html>"))
	assert.ErrorIs(t, err, decode.ErrDecodeFailed)
}

const voteDetailHTML = `<html><body>
<div class="mip-vote-title-section">
  <p>45th Parliament, 1st Session, Sitting No. 123</p>
</div>
<div class="mip-vote-bill-section"><h2>Bill C-5</h2></div>
<div id="mip-vote-desc">2nd reading of Bill C-5, An Act to enact the Free Trade and Labour Mobility Act</div>
<div id="mip-vote-text-collapsible-text">That Bill C-5 be <em>now</em> read a second time.</div>
<div class="ce-mip-mp-vote-panel-body">
  <table>
    <tbody>
      <tr>
        <td><a href="/members/en/ziad-aboultaif(89156)/">Ziad Aboultaif</a> (Edmonton Manning)</td>
        <td>Conservative</td>
        <td>Yea</td>
        <td></td>
      </tr>
      <tr>
        <td><a href="/members/en/anita-anand(96377)">Anita Anand</a> (Oakville East)</td>
        <td>Liberal</td>
        <td></td>
        <td>Paired with another member</td>
      </tr>
      <tr>
        <td>Some Member (Somewhere)</td>
        <td></td>
        <td></td>
        <td></td>
      </tr>
      <tr><td>short</td><td>row</td></tr>
    </tbody>
  </table>
</div>
</body></html>`

func TestParseVoteDetail(t *testing.T) {
	d, err := decode.ParseVoteDetail([]byte(voteDetailHTML))
	require.NoError(t, err)

	assert.Equal(t, "2nd reading of Bill C-5, An Act to enact the Free Trade and Labour Mobility Act", d.Subject)
	assert.Equal(t, "That Bill C-5 be now read a second time.", d.MotionText)
	require.NotNil(t, d.BillNumber)
	assert.Equal(t, "C-5", *d.BillNumber)
	require.NotNil(t, d.Sitting)
	assert.Equal(t, 123, *d.Sitting)

	require.Len(t, d.Ballots, 3)

	yea := d.Ballots[0]
	assert.Equal(t, "Ziad Aboultaif", yea.MemberName)
	require.NotNil(t, yea.HocID)
	assert.Equal(t, 89156, *yea.HocID)
	require.NotNil(t, yea.Riding)
	assert.Equal(t, "Edmonton Manning", *yea.Riding)
	require.NotNil(t, yea.Party)
	assert.Equal(t, "Conservative", *yea.Party)
	assert.Equal(t, "Yea", yea.Position)

	paired := d.Ballots[1]
	require.NotNil(t, paired.HocID)
	assert.Equal(t, 96377, *paired.HocID)
	assert.Equal(t, "Paired", paired.Position)

	absent := d.Ballots[2]
	assert.Nil(t, absent.HocID)
	assert.Equal(t, "Some Member (Somewhere)", absent.MemberName)
	require.NotNil(t, absent.Riding)
	assert.Equal(t, "Somewhere", *absent.Riding)
	assert.Nil(t, absent.Party)
	assert.Equal(t, "Absent", absent.Position)
}

func TestParseVoteDetail_BillHeadingWithoutNumber(t *testing.T) {
	d, err := decode.ParseVoteDetail([]byte(
		`<div class="mip-vote-bill-section"><h2>Ways and Means motion</h2></div>`))
	require.NoError(t, err)
	require.NotNil(t, d.BillNumber)
	assert.Equal(t, "Ways and Means motion", *d.BillNumber)
}

func TestExtractBillNumber(t *testing.T) {
	got := decode.ExtractBillNumber("2nd reading of Bill C-5, An Act respecting trade")
	require.NotNil(t, got)
	assert.Equal(t, "C-5", *got)

	got = decode.ExtractBillNumber("3rd reading of Bill S-201")
	require.NotNil(t, got)
	assert.Equal(t, "S-201", *got)

	assert.Nil(t, decode.ExtractBillNumber("Opposition Motion"))
}
