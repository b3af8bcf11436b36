package query

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/xapi-statements/internal/domain"
)

// DayBucket is one calendar day of the monthly activity report.
type DayBucket struct {
	// Date in "YYYY-MM-DD" form.
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// MonthlyActivity counts statements per calendar day for one actor
// identifier over one month. Every day of the month appears in the output;
// days without statements carry a zero count. An unknown identifier yields
// an all-zero month.
func (s *Service) MonthlyActivity(ctx context.Context, q domain.ActorQuery, year int, month time.Month) ([]DayBucket, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if month < time.January || month > time.December {
		return nil, domain.NewInvariantError("query.month",
			fmt.Sprintf("%d", month), "must be between 1 and 12")
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	buckets := make([]DayBucket, 0, 31)
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		buckets = append(buckets, DayBucket{Date: day.Format("2006-01-02")})
	}

	actorID, found, err := s.resolveActorID(ctx, q)
	if err != nil {
		return nil, err
	}
	if !found {
		return buckets, nil
	}

	counts, err := s.statements.CountPerDay(ctx, actorID, from, to)
	if err != nil {
		return nil, err
	}

	for _, dc := range counts {
		idx := dc.Day.Day() - 1
		if idx >= 0 && idx < len(buckets) {
			buckets[idx].Count = dc.Count
		}
	}
	return buckets, nil
}
