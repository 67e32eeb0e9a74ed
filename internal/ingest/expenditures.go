package ingest

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/BradleyExton/canpoli-api/internal/decode"
	"github.com/BradleyExton/canpoli-api/internal/repository"
)

// runExpenditures ingests the quarterly member disclosure CSV and every
// house-officer CSV. The halves are independent: a failure in one is
// counted and the other still runs. Re-ingesting a period replaces its rows
// wholesale.
func (r *Runner) runExpenditures(ctx context.Context) (Stats, error) {
	log := r.pipelineLogger(ctx, PipelineExpenditures)
	stats := Stats{"members": 0, "house_officers": 0, "errors": 0}

	memberRows, err := r.ingestMemberExpenditures(ctx)
	if err != nil {
		log.Error("Failed to ingest member expenditures", zap.Error(err))
		stats["errors"]++
	}
	stats["members"] = memberRows

	officerRows, err := r.ingestHouseOfficerExpenditures(ctx)
	if err != nil {
		log.Error("Failed to ingest house officer expenditures", zap.Error(err))
		stats["errors"]++
	}
	stats["house_officers"] = officerRows

	return stats, nil
}

type expenditurePeriod struct {
	start      pgtype.Date
	end        pgtype.Date
	fiscalYear *string
}

func periodFromText(text string) expenditurePeriod {
	start, end, ok := decode.ParseDateRange(text)
	if !ok {
		return expenditurePeriod{}
	}
	fiscal := decode.FiscalYear(start)
	return expenditurePeriod{
		start:      pgtype.Date{Time: start, Valid: true},
		end:        pgtype.Date{Time: end, Valid: true},
		fiscalYear: &fiscal,
	}
}

func (r *Runner) ingestMemberExpenditures(ctx context.Context) (int, error) {
	indexBody, err := r.pool.Get(ctx, r.url("/ProactiveDisclosure/en/members"))
	if err != nil {
		return 0, err
	}
	index, err := decode.MemberExpenditureIndex(indexBody)
	if err != nil {
		return 0, err
	}
	period := periodFromText(index.PeriodText)

	csvURL := r.url(index.CSVHref)
	csvBody, err := r.pool.Get(ctx, csvURL)
	if err != nil {
		return 0, err
	}
	rows, err := decode.MemberExpenditures(csvBody)
	if err != nil {
		return 0, err
	}

	count := 0
	err = r.store.WithTransaction(ctx, func(q repository.Querier) error {
		reps, err := q.ListAllRepresentatives(ctx)
		if err != nil {
			return err
		}
		type nameKey struct{ last, first string }
		repByName := map[nameKey]repository.Representative{}
		for _, rep := range reps {
			last := loweredOrEmpty(rep.LastName)
			if last == "" {
				continue
			}
			repByName[nameKey{last, loweredOrEmpty(rep.FirstName)}] = rep
			repByName[nameKey{last, ""}] = rep
		}

		if period.start.Valid && period.end.Valid {
			err := q.DeleteMemberExpendituresForPeriod(ctx, repository.DeleteMemberExpendituresForPeriodParams{
				PeriodStart: period.start,
				PeriodEnd:   period.end,
			})
			if err != nil {
				return err
			}
		}

		for _, row := range rows {
			var repID *int64
			var hocID *int
			if last, first, ok := decode.SplitMemberName(row.Name); ok {
				rep, found := repByName[nameKey{last, first}]
				if !found {
					rep, found = repByName[nameKey{last, ""}]
				}
				if found {
					repID = &rep.ID
					hocID = &rep.HocID
				}
			}
			for _, cat := range row.Categories {
				_, err := q.CreateMemberExpenditure(ctx, repository.CreateMemberExpenditureParams{
					RepresentativeID: repID,
					HocID:            hocID,
					MemberName:       row.Name,
					Category:         cat.Category,
					Amount:           cat.Amount,
					PeriodStart:      period.start,
					PeriodEnd:        period.end,
					FiscalYear:       period.fiscalYear,
					SourceURL:        strPtr(csvURL),
				})
				if err != nil {
					return err
				}
				count++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Runner) ingestHouseOfficerExpenditures(ctx context.Context) (int, error) {
	indexBody, err := r.pool.Get(ctx, r.url("/Boie/en/reports-and-disclosure"))
	if err != nil {
		return 0, err
	}
	hrefs, err := decode.HouseOfficerCSVLinks(indexBody)
	if err != nil {
		return 0, err
	}

	type officerCSV struct {
		url  string
		data *decode.HouseOfficerCSV
	}
	var files []officerCSV
	for _, href := range hrefs {
		csvURL := r.url(href)
		body, err := r.pool.Get(ctx, csvURL)
		if err != nil {
			return 0, err
		}
		data, err := decode.HouseOfficerExpenditures(body)
		if err != nil {
			return 0, err
		}
		if data == nil {
			continue
		}
		files = append(files, officerCSV{url: csvURL, data: data})
	}

	count := 0
	err = r.store.WithTransaction(ctx, func(q repository.Querier) error {
		for _, file := range files {
			period := periodFromText(file.data.PeriodText)
			if period.start.Valid && period.end.Valid {
				err := q.DeleteHouseOfficerExpendituresForPeriod(ctx, repository.DeleteHouseOfficerExpendituresForPeriodParams{
					PeriodStart: period.start,
					PeriodEnd:   period.end,
				})
				if err != nil {
					return err
				}
			}
			for _, row := range file.data.Rows {
				for _, cat := range row.Categories {
					_, err := q.CreateHouseOfficerExpenditure(ctx, repository.CreateHouseOfficerExpenditureParams{
						OfficerName: row.OfficerName,
						RoleTitle:   row.RoleTitle,
						Category:    cat.Category,
						Amount:      cat.Amount,
						PeriodStart: period.start,
						PeriodEnd:   period.end,
						FiscalYear:  period.fiscalYear,
						SourceURL:   strPtr(file.url),
					})
					if err != nil {
						return err
					}
					count++
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func loweredOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return trimLower(*s)
}

func trimLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
