package ingest_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/BradleyExton/canpoli-api/internal/ingest"
	"github.com/BradleyExton/canpoli-api/internal/repository"
	mockdb "github.com/BradleyExton/canpoli-api/internal/repository/mock"
)

const memberExpenditureIndexHTML = `<html><body>
<span id="quarters-dropdown-text">From April 1, 2025 to June 30, 2025</span>
<a class="csv-btn" href="/PD/members.csv">Download CSV</a>
</body></html>`

const memberExpenditureCSV = `Name,Constituency,Caucus,Salaries,Travel,Hospitality,Contracts
"Smith, Jane",Halifax,Liberal,"$10,000.00","$5,250.50","-","$2,000.00"
"Unknown, Person",Nowhere,None,"$1.00","$1.00","$1.00","$1.00"
`

const officerIndexHTML = `<html><body>
<a href="/PD/HouseOfficers/speaker.csv">Speaker CSV</a>
</body></html>`

const officerCSV = `Expenditure Report
"From April 1, 2025 to June 30, 2025"
Name,Role,Employees' Salaries($),Service Contracts($),Travel($),Hospitality($),Office($)
"Hon. Greg Fergus",Speaker,"100.00","200.00","300.00","400.00","500.00"
`

func expenditureServer(t *testing.T) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ProactiveDisclosure/en/members", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(memberExpenditureIndexHTML))
	})
	mux.HandleFunc("/PD/members.csv", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(memberExpenditureCSV))
	})
	mux.HandleFunc("/Boie/en/reports-and-disclosure", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(officerIndexHTML))
	})
	mux.HandleFunc("/PD/HouseOfficers/speaker.csv", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(officerCSV))
	})
	return mux
}

func TestRunExpenditures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	querier := mockdb.NewMockQuerier(ctrl)
	server := newServer(t, expenditureServer(t))

	querier.EXPECT().ListAllRepresentatives(gomock.Any()).Return([]repository.Representative{
		{ID: 1, HocID: 101, FirstName: sp("Jane"), LastName: sp("Smith"), Name: "Jane Smith"},
	}, nil)
	querier.EXPECT().DeleteMemberExpendituresForPeriod(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg repository.DeleteMemberExpendituresForPeriodParams) error {
			require.True(t, arg.PeriodStart.Valid)
			assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), arg.PeriodStart.Time)
			assert.Equal(t, time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), arg.PeriodEnd.Time)
			return nil
		})

	var memberRows []repository.CreateMemberExpenditureParams
	querier.EXPECT().CreateMemberExpenditure(gomock.Any(), gomock.Any()).Times(8).DoAndReturn(
		func(_ context.Context, arg repository.CreateMemberExpenditureParams) (repository.MemberExpenditure, error) {
			memberRows = append(memberRows, arg)
			return repository.MemberExpenditure{}, nil
		})

	querier.EXPECT().DeleteHouseOfficerExpendituresForPeriod(gomock.Any(), gomock.Any()).Return(nil)

	var officerRows []repository.CreateHouseOfficerExpenditureParams
	querier.EXPECT().CreateHouseOfficerExpenditure(gomock.Any(), gomock.Any()).Times(5).DoAndReturn(
		func(_ context.Context, arg repository.CreateHouseOfficerExpenditureParams) (repository.HouseOfficerExpenditure, error) {
			officerRows = append(officerRows, arg)
			return repository.HouseOfficerExpenditure{}, nil
		})

	runner := newRunner(t, querier, server.URL, nil)
	stats := runOne(t, runner, ingest.PipelineExpenditures)

	assert.Equal(t, 8, stats["members"])
	assert.Equal(t, 5, stats["house_officers"])
	assert.Equal(t, 0, stats["errors"])

	require.Len(t, memberRows, 8)
	// Jane Smith matches the roster by (last, first); her four category
	// rows carry the representative link.
	salaries := memberRows[0]
	assert.Equal(t, "Smith, Jane", salaries.MemberName)
	assert.Equal(t, "Salaries", salaries.Category)
	assert.Equal(t, 10000.0, salaries.Amount)
	assert.Equal(t, ip(101), salaries.HocID)
	require.NotNil(t, salaries.RepresentativeID)
	assert.EqualValues(t, 1, *salaries.RepresentativeID)
	assert.Equal(t, sp("2025-2026"), salaries.FiscalYear)

	assert.Equal(t, "Travel", memberRows[1].Category)
	assert.Equal(t, 5250.50, memberRows[1].Amount)
	assert.Equal(t, "Hospitality", memberRows[2].Category)
	assert.Equal(t, 0.0, memberRows[2].Amount)

	// The second CSV row has no roster match and stays unlinked.
	assert.Nil(t, memberRows[4].RepresentativeID)
	assert.Nil(t, memberRows[4].HocID)

	require.Len(t, officerRows, 5)
	assert.Equal(t, "Hon. Greg Fergus", officerRows[0].OfficerName)
	assert.Equal(t, sp("Speaker"), officerRows[0].RoleTitle)
	assert.Equal(t, "Employees' Salaries", officerRows[0].Category)
	assert.Equal(t, 100.0, officerRows[0].Amount)
	assert.Equal(t, "Office", officerRows[4].Category)
	assert.Equal(t, 500.0, officerRows[4].Amount)
}

func TestRunExpendituresCountsFailedHalves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	querier := mockdb.NewMockQuerier(ctrl)

	// Neither disclosure page resolves; each half fails on its own.
	server := newServer(t, http.NewServeMux())

	runner := newRunner(t, querier, server.URL, nil)
	stats := runOne(t, runner, ingest.PipelineExpenditures)

	assert.Equal(t, 0, stats["members"])
	assert.Equal(t, 0, stats["house_officers"])
	assert.Equal(t, 2, stats["errors"])
}
