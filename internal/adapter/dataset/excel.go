package dataset

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/pharmavie/salesboard-backend/internal/domain"
)

// ExcelLoader loads a transaction snapshot from the first sheet of an
// XLSX workbook, with the same schema and strictness as the CSV
// loader. Retail exports frequently arrive as spreadsheets rather
// than CSV. It implements domain.DatasetLoader.
type ExcelLoader struct {
	Path      string
	Tolerance decimal.Decimal
}

// NewExcelLoader creates a new ExcelLoader instance for the workbook
// at path, using the default revenue tolerance
func NewExcelLoader(path string) *ExcelLoader {
	return &ExcelLoader{
		Path:      path,
		Tolerance: DefaultTolerance,
	}
}

// Load parses, validates and materializes the whole dataset from the
// workbook's first sheet. Row semantics match CSVLoader.Load: the
// header must match the schema exactly and one bad row fails the
// whole load with a *domain.MalformedRecordError.
func (l *ExcelLoader) Load(ctx context.Context) (*domain.Store, error) {
	f, err := excelize.OpenFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", l.Path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheets[0])
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, &domain.MalformedRecordError{Line: 1, Err: err}
	}

	var records []domain.TransactionRecord
	for i, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if isBlank(row) {
			// Some producers pad sheets with formatted-but-empty rows.
			continue
		}

		record, err := parseRecord(row, l.Tolerance)
		if err != nil {
			return nil, &domain.MalformedRecordError{Line: i + 2, Err: err}
		}
		records = append(records, record)
	}

	return domain.NewStore(records), nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
