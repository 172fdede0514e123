package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmavie/salesboard-backend/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sale(date time.Time, revenue string) domain.TransactionRecord {
	return domain.TransactionRecord{
		Date:      date,
		Product:   "Savon d'Alep bio",
		Category:  "Hygiène",
		UnitPrice: decimal.RequireFromString(revenue),
		Quantity:  1,
		Revenue:   decimal.RequireFromString(revenue),
	}
}

func TestDailyRevenue_FillsCalendarGaps(t *testing.T) {
	service := NewAggregateService()

	// Sales on Jan 1 and Jan 4; Jan 2 and Jan 3 have no sales
	series, err := service.DailyRevenue([]domain.TransactionRecord{
		sale(day(2025, 1, 1), "18.000"),
		sale(day(2025, 1, 4), "22.000"),
	})

	require.NoError(t, err)
	require.Len(t, series, 4)
	assert.Equal(t, day(2025, 1, 1), series[0].Date)
	assert.True(t, series[0].Revenue.Equal(decimal.RequireFromString("18.000")))
	assert.True(t, series[1].Revenue.IsZero())
	assert.True(t, series[2].Revenue.IsZero())
	assert.Equal(t, day(2025, 1, 4), series[3].Date)
	assert.True(t, series[3].Revenue.Equal(decimal.RequireFromString("22.000")))
}

func TestDailyRevenue_StrictlyConsecutiveDays(t *testing.T) {
	service := NewAggregateService()

	series, err := service.DailyRevenue([]domain.TransactionRecord{
		sale(day(2025, 2, 25), "10.000"),
		sale(day(2025, 3, 3), "10.000"),
	})

	require.NoError(t, err)
	// Feb 25 .. Mar 3 is 7 calendar days, across the month boundary
	require.Len(t, series, 7)
	for i := 1; i < len(series); i++ {
		assert.Equal(t, series[i-1].Date.AddDate(0, 0, 1), series[i].Date)
	}
}

func TestDailyRevenue_DuplicateDatesSum(t *testing.T) {
	service := NewAggregateService()

	series, err := service.DailyRevenue([]domain.TransactionRecord{
		sale(day(2025, 1, 1), "18.000"),
		sale(day(2025, 1, 1), "22.000"),
		sale(day(2025, 1, 1), "5.500"),
	})

	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.True(t, series[0].Revenue.Equal(decimal.RequireFromString("45.500")))
}

func TestDailyRevenue_SingleDaySpan(t *testing.T) {
	service := NewAggregateService()

	series, err := service.DailyRevenue([]domain.TransactionRecord{
		sale(day(2025, 1, 1), "18.000"),
	})

	require.NoError(t, err)
	assert.Len(t, series, 1)
}

func TestDailyRevenue_EmptySubset(t *testing.T) {
	service := NewAggregateService()

	series, err := service.DailyRevenue(nil)

	assert.Nil(t, series)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestDailyRevenue_ConservesTotalRevenue(t *testing.T) {
	service := NewAggregateService()
	subset := []domain.TransactionRecord{
		sale(day(2025, 1, 1), "18.000"),
		sale(day(2025, 1, 1), "32.500"),
		sale(day(2025, 1, 5), "7.250"),
		sale(day(2025, 1, 9), "120.000"),
	}

	series, err := service.DailyRevenue(subset)

	require.NoError(t, err)
	fromSubset := decimal.Zero
	for _, r := range subset {
		fromSubset = fromSubset.Add(r.Revenue)
	}
	fromSeries := decimal.Zero
	for _, p := range series {
		fromSeries = fromSeries.Add(p.Revenue)
	}
	assert.True(t, fromSeries.Equal(fromSubset),
		"series total %s != subset total %s", fromSeries, fromSubset)
}
