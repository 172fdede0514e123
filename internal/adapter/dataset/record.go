package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/pharmavie/salesboard-backend/internal/domain"
)

// DefaultTolerance bounds the accepted drift between a row's stated
// revenue and unit_price * quantity (rounding slack from the system
// that produced the file).
var DefaultTolerance = decimal.NewFromFloat(0.001)

// columns is the exact schema every dataset representation must carry,
// in order.
var columns = []string{"date", "product", "category", "unit_price", "quantity", "revenue"}

var validate = validator.New()

// rawRecord is one textual row before type conversion. Tag-level
// validation catches missing fields and malformed dates; numeric and
// cross-field invariants are checked after conversion.
type rawRecord struct {
	Date      string `validate:"required,datetime=2006-01-02"`
	Product   string `validate:"required"`
	Category  string `validate:"required"`
	UnitPrice string `validate:"required"`
	Quantity  string `validate:"required"`
	Revenue   string `validate:"required"`
}

// checkHeader verifies that the header row matches the expected schema
// exactly. Loading is strict: a reordered or renamed column is a
// malformed dataset, not something to guess around.
func checkHeader(header []string) error {
	if len(header) != len(columns) {
		return fmt.Errorf("expected %d columns, got %d", len(columns), len(header))
	}
	for i, want := range columns {
		got := strings.ToLower(strings.TrimSpace(header[i]))
		if got != want {
			return fmt.Errorf("expected column %q at position %d, got %q", want, i+1, got)
		}
	}
	return nil
}

// parseRecord converts and validates one textual row.
func parseRecord(row []string, tolerance decimal.Decimal) (domain.TransactionRecord, error) {
	var zero domain.TransactionRecord

	if len(row) != len(columns) {
		return zero, fmt.Errorf("expected %d fields, got %d", len(columns), len(row))
	}

	raw := rawRecord{
		Date:      strings.TrimSpace(row[0]),
		Product:   strings.TrimSpace(row[1]),
		Category:  strings.TrimSpace(row[2]),
		UnitPrice: strings.TrimSpace(row[3]),
		Quantity:  strings.TrimSpace(row[4]),
		Revenue:   strings.TrimSpace(row[5]),
	}
	if err := validate.Struct(raw); err != nil {
		return zero, err
	}

	date, err := time.ParseInLocation("2006-01-02", raw.Date, time.UTC)
	if err != nil {
		return zero, fmt.Errorf("invalid date %q: %w", raw.Date, err)
	}
	unitPrice, err := decimal.NewFromString(raw.UnitPrice)
	if err != nil {
		return zero, fmt.Errorf("invalid unit_price %q: %w", raw.UnitPrice, err)
	}
	quantity, err := strconv.Atoi(raw.Quantity)
	if err != nil {
		return zero, fmt.Errorf("invalid quantity %q: %w", raw.Quantity, err)
	}
	revenue, err := decimal.NewFromString(raw.Revenue)
	if err != nil {
		return zero, fmt.Errorf("invalid revenue %q: %w", raw.Revenue, err)
	}

	record := domain.TransactionRecord{
		Date:      date,
		Product:   raw.Product,
		Category:  raw.Category,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Revenue:   revenue,
	}
	if err := record.Validate(tolerance); err != nil {
		return zero, err
	}
	return record, nil
}
