package ingest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/BradleyExton/canpoli-api/internal/config"
	"github.com/BradleyExton/canpoli-api/internal/fetch"
	"github.com/BradleyExton/canpoli-api/internal/ingest"
	"github.com/BradleyExton/canpoli-api/internal/repository"
	mockdb "github.com/BradleyExton/canpoli-api/internal/repository/mock"
)

// fakeStore runs transaction bodies directly against the wrapped querier.
type fakeStore struct {
	repository.Querier
}

func (s fakeStore) WithTransaction(_ context.Context, fn func(repository.Querier) error) error {
	return fn(s.Querier)
}

func ip(v int) *int       { return &v }
func sp(s string) *string { return &s }

func newRunner(t *testing.T, q repository.Querier, baseURL string, mutate func(*config.Ingest)) *ingest.Runner {
	t.Helper()
	cfg := config.Ingest{
		BaseURL:            baseURL,
		LegisinfoBaseURL:   baseURL,
		Timeout:            5 * time.Second,
		MaxConcurrency:     4,
		MinRequestInterval: time.Millisecond,

		Parliament: 45,
		Session:    1,

		DebatesMaxSitting: 3,
		DebatesLookahead:  5,
		DebatesMaxMissing: 2,
		DebateLanguages:   []string{"en"},

		EnableMembers:        true,
		EnablePartyStandings: true,
		EnableRoles:          true,
		EnableVotes:          true,
		EnablePetitions:      true,
		EnableDebates:        true,
		EnableExpenditures:   true,
		EnableBills:          true,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	pool := fetch.New(fetch.Options{
		MaxConcurrency:     cfg.MaxConcurrency,
		MinRequestInterval: cfg.MinRequestInterval,
		Timeout:            cfg.Timeout,
	})
	return ingest.NewRunner(fakeStore{q}, pool, cfg, zap.NewNop())
}

func newServer(t *testing.T, mux *http.ServeMux) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// runOne drives a single pipeline through RunAll and unwraps its stats.
func runOne(t *testing.T, r *ingest.Runner, name string) ingest.Stats {
	t.Helper()
	results := r.RunAll(context.Background(), []string{name})
	stats, ok := results[name].(ingest.Stats)
	require.True(t, ok, "pipeline %s did not produce stats: %#v", name, results[name])
	return stats
}

const billsFeedJSON = `[
  {"BillNumberFormatted": "C-5", "BillId": 1301, "ParliamentNumber": 45, "SessionNumber": 1,
   "LongTitleEn": "An Act respecting budget implementation", "CurrentStatusEn": "Second reading",
   "SponsorEn": "Jane Smith", "LatestActivityDateTime": "2025-06-10T14:00:00",
   "PassedHouseFirstReadingDateTime": "2025-05-01T10:00:00"}
]`

func TestRunAllPipelineFailureIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	querier := mockdb.NewMockQuerier(ctrl)

	mux := http.NewServeMux()
	mux.HandleFunc("/Members/en/search/XML", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/legisinfo/en/bills/json", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(billsFeedJSON))
	})
	server := newServer(t, mux)

	querier.EXPECT().GetBillByNumber(gomock.Any(), gomock.Any()).Return(repository.Bill{}, pgx.ErrNoRows)
	querier.EXPECT().CreateBill(gomock.Any(), gomock.Any()).Return(repository.Bill{}, nil)

	runner := newRunner(t, querier, server.URL, nil)
	results := runner.RunAll(context.Background(), []string{ingest.PipelineMembers, ingest.PipelineBills})

	failure, ok := results[ingest.PipelineMembers].(map[string]string)
	require.True(t, ok, "members should have failed: %#v", results[ingest.PipelineMembers])
	assert.Contains(t, failure["error"], "unexpected status 500")

	stats, ok := results[ingest.PipelineBills].(ingest.Stats)
	require.True(t, ok)
	assert.Equal(t, 1, stats["bills"])

	assert.NotContains(t, results, ingest.PipelineVotes)
}

func TestRunAllSkipsDisabledPipelines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	querier := mockdb.NewMockQuerier(ctrl)

	server := newServer(t, http.NewServeMux())
	runner := newRunner(t, querier, server.URL, func(cfg *config.Ingest) {
		cfg.EnableBills = false
	})

	results := runner.RunAll(context.Background(), []string{ingest.PipelineBills})
	assert.Empty(t, results)
}
