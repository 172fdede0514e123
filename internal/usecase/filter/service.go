package filter

import (
	"time"

	"github.com/pharmavie/salesboard-backend/internal/domain"
)

// FilterService narrows a dataset snapshot to a date range and an
// optional category before any analytics run over it
type FilterService struct{}

// NewFilterService creates a new FilterService instance
func NewFilterService() *FilterService {
	return &FilterService{}
}

// Apply returns the records of the store that fall inside the
// inclusive [start, end] range and match the category constraint.
// Logic:
//  1. Normalize the range bounds to calendar days
//  2. Keep records with start <= record day <= end
//  3. Keep only the requested category, unless it is domain.CategoryAll
//
// An inverted range (start after end) yields an empty subset, not an
// error: the host UI lets the user pick the two dates independently,
// so the engine tolerates the transient inverted state.
// Original record order is preserved. The store is never mutated.
func (s *FilterService) Apply(store *domain.Store, start, end time.Time, category string) []domain.TransactionRecord {
	startDay := domain.DayOf(start)
	endDay := domain.DayOf(end)

	var subset []domain.TransactionRecord
	if startDay.After(endDay) {
		return subset
	}

	for _, r := range store.Records() {
		day := domain.DayOf(r.Date)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		if category != domain.CategoryAll && r.Category != category {
			continue
		}
		subset = append(subset, r)
	}
	return subset
}
