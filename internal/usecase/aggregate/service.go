package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pharmavie/salesboard-backend/internal/domain"
)

// AggregateService reduces a filtered transaction subset into a
// complete daily revenue series
type AggregateService struct{}

// NewAggregateService creates a new AggregateService instance
func NewAggregateService() *AggregateService {
	return &AggregateService{}
}

// DailyRevenue groups the subset by calendar day and returns one
// point per day of the covered span, in chronological order.
// Logic:
//  1. Sum revenue per calendar day (duplicate dates sum, never overwrite)
//  2. Determine the span [min(date) .. max(date)] of the grouped result
//  3. Emit one DailyRevenuePoint for every day of the span, filling
//     revenue = 0 for days absent from the grouping
//
// The zero fill is the point of this service: a plain group-by would
// silently omit zero-sales days and skew any moving average that
// assumes daily cadence.
// Returns domain.ErrEmptyInput for an empty subset, which has no
// defined span.
func (s *AggregateService) DailyRevenue(subset []domain.TransactionRecord) ([]domain.DailyRevenuePoint, error) {
	if len(subset) == 0 {
		return nil, domain.ErrEmptyInput
	}

	// 1. Group by day, summing revenue
	totals := make(map[time.Time]decimal.Decimal)
	for _, r := range subset {
		day := domain.DayOf(r.Date)
		totals[day] = totals[day].Add(r.Revenue)
	}

	// 2. Determine the span
	var min, max time.Time
	first := true
	for day := range totals {
		if first {
			min, max = day, day
			first = false
			continue
		}
		if day.Before(min) {
			min = day
		}
		if day.After(max) {
			max = day
		}
	}

	// 3. Walk the span day by day, zero-filling the gaps
	var series []domain.DailyRevenuePoint
	for day := min; !day.After(max); day = day.AddDate(0, 0, 1) {
		revenue, ok := totals[day]
		if !ok {
			revenue = decimal.Zero
		}
		series = append(series, domain.DailyRevenuePoint{
			Date:    day,
			Revenue: revenue,
		})
	}
	return series, nil
}
