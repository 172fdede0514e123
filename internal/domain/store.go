package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Store is an immutable in-memory snapshot of a transaction dataset.
// It is constructed once per dataset version and then only read, so a
// single handle can be shared by any number of concurrent queries.
type Store struct {
	id      uuid.UUID
	records []TransactionRecord
}

// NewStore creates a Store from the given records.
// The slice is copied so later mutation by the caller cannot leak into
// the snapshot. Each store gets a fresh ID identifying the dataset
// version it was loaded as.
func NewStore(records []TransactionRecord) *Store {
	copied := make([]TransactionRecord, len(records))
	copy(copied, records)
	return &Store{
		id:      uuid.New(),
		records: copied,
	}
}

// ID returns the dataset version identifier of this snapshot.
func (s *Store) ID() uuid.UUID {
	return s.id
}

// Records returns the snapshot's records in original load order.
// Callers must treat the returned slice as read-only.
func (s *Store) Records() []TransactionRecord {
	return s.records
}

// Len returns the number of records in the snapshot.
func (s *Store) Len() int {
	return len(s.records)
}

// Categories returns the distinct categories in the snapshot, sorted
// ascending. The host UI uses this to populate its category picker.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, r := range s.records {
		if !seen[r.Category] {
			seen[r.Category] = true
			categories = append(categories, r.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// DateSpan returns the earliest and latest calendar day in the
// snapshot. Returns ErrEmptyInput when the snapshot holds no records.
func (s *Store) DateSpan() (time.Time, time.Time, error) {
	if len(s.records) == 0 {
		return time.Time{}, time.Time{}, ErrEmptyInput
	}

	min := DayOf(s.records[0].Date)
	max := min
	for _, r := range s.records[1:] {
		day := DayOf(r.Date)
		if day.Before(min) {
			min = day
		}
		if day.After(max) {
			max = day
		}
	}
	return min, max, nil
}
