package dataset

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pharmavie/salesboard-backend/internal/domain"
)

// writeWorkbook writes an XLSX file with the given rows (header
// included) into a temp dir and returns its path. Cells are written
// as strings so the loader sees exactly what a CSV export would carry.
func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "ventes.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestExcelLoad_ValidWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"date", "product", "category", "unit_price", "quantity", "revenue"},
		{"2025-01-01", "Savon d'Alep bio", "Hygiène", "18.000", "2", "36.000"},
		{"2025-01-02", "Patchs yeux Bio", "Soin du visage", "60.000", "1", "60.000"},
	})
	loader := NewExcelLoader(path)

	store, err := loader.Load(context.Background())

	require.NoError(t, err)
	require.Equal(t, 2, store.Len())
	assert.Equal(t, "Savon d'Alep bio", store.Records()[0].Product)
	assert.True(t, store.Records()[0].Revenue.Equal(decimal.RequireFromString("36.000")))
}

func TestExcelLoad_FailFastOnBadRow(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"date", "product", "category", "unit_price", "quantity", "revenue"},
		{"2025-01-01", "P", "C", "10.000", "1", "10.000"},
		{"2025-01-02", "P", "C", "10.000", "-2", "-20.000"},
	})
	loader := NewExcelLoader(path)

	store, err := loader.Load(context.Background())

	assert.Nil(t, store)
	var malformed *domain.MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 3, malformed.Line)
}

func TestExcelLoad_RejectsWrongHeader(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"date", "product", "unit_price", "category", "quantity", "revenue"},
	})
	loader := NewExcelLoader(path)

	store, err := loader.Load(context.Background())

	assert.Nil(t, store)
	var malformed *domain.MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 1, malformed.Line)
}

func TestExcelLoad_MissingFile(t *testing.T) {
	loader := NewExcelLoader(filepath.Join(t.TempDir(), "absent.xlsx"))

	store, err := loader.Load(context.Background())

	assert.Nil(t, store)
	assert.Error(t, err)
}
