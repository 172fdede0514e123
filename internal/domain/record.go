package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryAll is the sentinel category value that disables category
// filtering (the "all categories" choice in the host UI).
const CategoryAll = "ALL"

// TransactionRecord represents one point-of-sale line: a single
// product sold on a single calendar day.
// Category is a per-row attribute, not derived from Product: two rows
// with the same product may carry different categories and both are
// kept as-is.
type TransactionRecord struct {
	Date      time.Time // calendar day, UTC midnight
	Product   string
	Category  string
	UnitPrice decimal.Decimal // currency with 3 fractional digits (minor-unit precision)
	Quantity  int
	Revenue   decimal.Decimal // must equal UnitPrice * Quantity within tolerance
}

// Validate ensures the record adheres to the ingestion invariants
// Returns an error if validation fails
// tolerance bounds the accepted drift between the stated revenue and
// UnitPrice * Quantity (rounding slack from the producing system)
func (r *TransactionRecord) Validate(tolerance decimal.Decimal) error {
	if r.Date.IsZero() {
		return errors.New("record date must be set")
	}
	if r.Product == "" {
		return errors.New("record product must not be empty")
	}
	if r.Category == "" {
		return errors.New("record category must not be empty")
	}
	if r.UnitPrice.IsNegative() {
		return errors.New("unit price must not be negative")
	}
	if r.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}

	expected := r.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity)))
	if r.Revenue.Sub(expected).Abs().GreaterThanOrEqual(tolerance) {
		return errors.New("revenue does not match unit price * quantity")
	}

	return nil
}

// DayOf truncates a timestamp to its calendar day (UTC midnight).
// All grouping and basket logic keys on this normalized value.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
