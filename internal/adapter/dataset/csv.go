package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/pharmavie/salesboard-backend/internal/domain"
)

// CSVLoader loads a transaction snapshot from comma-separated values
// with an ISO-8601 date column. It implements domain.DatasetLoader.
type CSVLoader struct {
	Reader    io.Reader
	Tolerance decimal.Decimal // revenue consistency tolerance
}

// NewCSVLoader creates a new CSVLoader instance reading from r, using
// the default revenue tolerance
func NewCSVLoader(r io.Reader) *CSVLoader {
	return &CSVLoader{
		Reader:    r,
		Tolerance: DefaultTolerance,
	}
}

// Load parses, validates and materializes the whole dataset.
// Logic:
//  1. Read and check the header row against the expected schema
//  2. Convert and validate every row, fail-fast on the first bad one
//  3. Wrap the records into an immutable Store
//
// A bad row fails the whole load with a *domain.MalformedRecordError
// carrying its line number; rows are never silently dropped.
func (l *CSVLoader) Load(ctx context.Context) (*domain.Store, error) {
	reader := csv.NewReader(l.Reader)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, &domain.MalformedRecordError{Line: 1, Err: err}
	}

	var records []domain.TransactionRecord
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &domain.MalformedRecordError{Line: line, Err: err}
		}

		record, err := parseRecord(row, l.Tolerance)
		if err != nil {
			return nil, &domain.MalformedRecordError{Line: line, Err: err}
		}
		records = append(records, record)
	}

	return domain.NewStore(records), nil
}
