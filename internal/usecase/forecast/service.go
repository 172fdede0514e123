package forecast

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/pharmavie/salesboard-backend/internal/domain"
)

// Defaults used by the host dashboard: a month of history projected
// one week ahead.
const (
	DefaultWindow  = 30
	DefaultHorizon = 7
)

// ForecastService projects a daily revenue series a fixed number of
// days ahead using a recency-weighted moving average.
//
// The model is deliberately simple: a single weighted mean of the
// trailing window, favoring recent demand over older demand without a
// regression model. Interpretability outweighs statistical
// sophistication here, so every projected day carries the same value.
type ForecastService struct {
	Window  int // trailing days fed into the weighted mean
	Horizon int // days projected ahead
}

// NewForecastService creates a new ForecastService instance
// Non-positive window or horizon values fall back to the defaults
func NewForecastService(window, horizon int) *ForecastService {
	if window <= 0 {
		window = DefaultWindow
	}
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	return &ForecastService{
		Window:  window,
		Horizon: horizon,
	}
}

// Project computes the flat N-day-ahead projection of a daily series.
// Logic:
//  1. Take the last min(Window, len(daily)) points
//  2. Weight them linearly by recency: oldest = 1, most recent = k
//  3. predicted = sum(weight_i * revenue_i) / sum(weight_i)
//  4. Emit Horizon consecutive points starting the day after the last
//     historical date, all carrying the identical predicted value
//
// The series is expected in chronological order, as produced by the
// daily aggregator. Returns domain.ErrInsufficientData for an empty
// series: there is nothing to forecast from and the weight sum would
// be zero.
func (s *ForecastService) Project(daily []domain.DailyRevenuePoint) ([]domain.ForecastPoint, error) {
	if len(daily) == 0 {
		return nil, domain.ErrInsufficientData
	}
	if s.Window <= 0 || s.Horizon <= 0 {
		return nil, errors.New("window and horizon must be positive")
	}

	// 1. Trailing slice
	window := daily
	if len(window) > s.Window {
		window = window[len(window)-s.Window:]
	}

	// 2.+3. Recency-weighted mean
	weightedSum := decimal.Zero
	weightTotal := decimal.Zero
	for i, point := range window {
		weight := decimal.NewFromInt(int64(i + 1))
		weightedSum = weightedSum.Add(point.Revenue.Mul(weight))
		weightTotal = weightTotal.Add(weight)
	}
	predicted := weightedSum.Div(weightTotal)

	// 4. Flat projection starting the day after the last historical date
	lastDate := daily[len(daily)-1].Date
	projection := make([]domain.ForecastPoint, 0, s.Horizon)
	for i := 1; i <= s.Horizon; i++ {
		projection = append(projection, domain.ForecastPoint{
			Date:             lastDate.AddDate(0, 0, i),
			PredictedRevenue: predicted,
		})
	}
	return projection, nil
}
