package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyRevenuePoint represents the total revenue of one calendar day.
// Aggregation emits one point per day of the covered span, including
// explicit zero-revenue points for days with no sales.
type DailyRevenuePoint struct {
	Date    time.Time
	Revenue decimal.Decimal
}

// ForecastPoint represents one projected day of revenue.
// Its date is always strictly after the last historical date. All
// points emitted by one forecast call carry the same predicted value:
// the projection is a single aggregate estimate, flat by design.
type ForecastPoint struct {
	Date             time.Time
	PredictedRevenue decimal.Decimal
}

// AssociationScore represents how often a product co-occurs with the
// recommendation anchor: the conditional frequency, in [0, 1], of the
// product appearing in a daily basket that also contains the anchor.
type AssociationScore struct {
	Product string
	Score   decimal.Decimal
}
