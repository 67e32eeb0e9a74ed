package ingest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/BradleyExton/canpoli-api/internal/ingest"
	"github.com/BradleyExton/canpoli-api/internal/repository"
	mockdb "github.com/BradleyExton/canpoli-api/internal/repository/mock"
)

const petitionSearchHTML = `<div class="paging">Page: 1 of 1</div>
<table><tbody>
<tr class="Pub">
  <td><a class="publicationTitleSearch" href="e-5000"><span>e-5000</span><span>Protect old growth forests</span></a></td>
  <td>June 1, 2025</td>
  <td>Environment</td>
  <td>Open for signature</td>
  <td>Jane Smith</td>
  <td>12,345</td>
</tr>
</tbody></table>`

const petitionDetailHTML = `<html><body>
<div id="DetailsMember"><a href="/members/en/jane-smith(101)">Jane Smith</a></div>
<div class="history-section"><dl>
<dt>Presented to the House of Commons</dt><dd>June 5, 2025, at 10:00 a.m. (EDT)</dd>
<dt>Open for signature - closed</dt><dd>May 30, 2025, at 3:30 p.m. (EDT)</dd>
</dl></div>
</body></html>`

func petitionServer(t *testing.T, detailStatus int) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/petitions/en/Petition/SearchAsync", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Latest", r.PostForm.Get("parl"))
		envelope, err := json.Marshal(map[string]string{"html": petitionSearchHTML})
		require.NoError(t, err)
		w.Write(envelope)
	})
	mux.HandleFunc("/petitions/en/Petition/e-5000", func(w http.ResponseWriter, r *http.Request) {
		if detailStatus != http.StatusOK {
			w.WriteHeader(detailStatus)
			return
		}
		w.Write([]byte(petitionDetailHTML))
	})
	return mux
}

func TestRunPetitionsCreatesPetition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	querier := mockdb.NewMockQuerier(ctrl)
	server := newServer(t, petitionServer(t, http.StatusOK))

	querier.EXPECT().ListAllRepresentatives(gomock.Any()).Return([]repository.Representative{
		{ID: 1, HocID: 101, Name: "Jane Smith"},
	}, nil)
	querier.EXPECT().GetPetitionByNumber(gomock.Any(), "e-5000").
		Return(repository.Petition{}, pgx.ErrNoRows)
	querier.EXPECT().CreatePetition(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg repository.CreatePetitionParams) (repository.Petition, error) {
			assert.Equal(t, "e-5000", arg.PetitionNumber)
			assert.Equal(t, sp("Protect old growth forests"), arg.TitleEn)
			assert.Equal(t, sp("Open for signature"), arg.Status)
			assert.Equal(t, ip(12345), arg.Signatures)
			// the detail page link carries the sponsor's external id
			assert.Equal(t, ip(101), arg.SponsorHocID)
			assert.Equal(t, sp("Jane Smith"), arg.SponsorName)
			assert.Equal(t, ip(45), arg.Parliament)
			assert.Equal(t, ip(1), arg.Session)
			assert.True(t, arg.PresentationDate.Valid)
			assert.True(t, arg.ClosingDate.Valid)
			require.NotNil(t, arg.SourceHash)
			return repository.Petition{ID: 1}, nil
		})

	runner := newRunner(t, querier, server.URL, nil)
	stats := runOne(t, runner, ingest.PipelinePetitions)

	assert.Equal(t, 1, stats["petitions"])
	assert.Equal(t, 0, stats["errors"])
}

func TestRunPetitionsUpdateKeepsFrenchTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	querier := mockdb.NewMockQuerier(ctrl)
	server := newServer(t, petitionServer(t, http.StatusOK))

	querier.EXPECT().ListAllRepresentatives(gomock.Any()).Return(nil, nil)
	querier.EXPECT().GetPetitionByNumber(gomock.Any(), "e-5000").Return(repository.Petition{
		ID:      4,
		TitleFr: sp("Protéger les forêts anciennes"),
	}, nil)
	querier.EXPECT().UpdatePetition(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg repository.UpdatePetitionParams) (repository.Petition, error) {
			assert.EqualValues(t, 4, arg.ID)
			assert.Equal(t, sp("Protéger les forêts anciennes"), arg.TitleFr)
			assert.Equal(t, sp("Protect old growth forests"), arg.TitleEn)
			return repository.Petition{ID: 4}, nil
		})

	runner := newRunner(t, querier, server.URL, nil)
	stats := runOne(t, runner, ingest.PipelinePetitions)

	assert.Equal(t, 1, stats["petitions"])
}

func TestRunPetitionsSkipsRowWhenDetailUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	querier := mockdb.NewMockQuerier(ctrl)
	server := newServer(t, petitionServer(t, http.StatusBadGateway))

	querier.EXPECT().ListAllRepresentatives(gomock.Any()).Return(nil, nil)

	runner := newRunner(t, querier, server.URL, nil)
	stats := runOne(t, runner, ingest.PipelinePetitions)

	assert.Equal(t, 0, stats["petitions"])
	assert.Equal(t, 1, stats["errors"])
}
