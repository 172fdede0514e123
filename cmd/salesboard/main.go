package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pharmavie/salesboard-backend/internal/adapter/dataset"
	"github.com/pharmavie/salesboard-backend/internal/domain"
	"github.com/pharmavie/salesboard-backend/internal/usecase/aggregate"
	"github.com/pharmavie/salesboard-backend/internal/usecase/filter"
	"github.com/pharmavie/salesboard-backend/internal/usecase/forecast"
	"github.com/pharmavie/salesboard-backend/internal/usecase/recommend"
	"github.com/pharmavie/salesboard-backend/internal/usecase/summary"
)

const dateLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

func main() {
	var (
		dataPath    = flag.String("data", "data/ventes.csv", "path to the sales dataset (.csv or .xlsx)")
		fromFlag    = flag.String("from", "", "start date (YYYY-MM-DD, default: dataset start)")
		toFlag      = flag.String("to", "", "end date (YYYY-MM-DD, default: dataset end)")
		category    = flag.String("category", domain.CategoryAll, "category filter (default: all categories)")
		anchor      = flag.String("anchor", "", "product to compute co-purchase recommendations for")
		window      = flag.Int("window", forecast.DefaultWindow, "trailing days fed into the forecast")
		horizon     = flag.Int("horizon", forecast.DefaultHorizon, "days to project ahead")
		topK        = flag.Int("top", recommend.DefaultTopK, "number of recommendations to show")
		topProducts = flag.Int("top-products", 10, "number of products in the revenue ranking")
	)
	flag.Parse()

	ctx := context.Background()

	// 1. Load the dataset snapshot (CSV or XLSX by extension)
	var loader domain.DatasetLoader
	switch strings.ToLower(filepath.Ext(*dataPath)) {
	case ".xlsx":
		loader = dataset.NewExcelLoader(*dataPath)
	default:
		f, err := os.Open(*dataPath)
		if err != nil {
			log.Fatalf("Failed to open dataset: %v", err)
		}
		defer f.Close()
		loader = dataset.NewCSVLoader(f)
	}

	store, err := loader.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	log.Printf("Loaded snapshot %s: %d records", store.ID(), store.Len())

	// 2. Resolve the query range (defaults to the full dataset span)
	minDate, maxDate, err := store.DateSpan()
	if err != nil {
		log.Fatalf("Dataset is empty: %v", err)
	}
	from, to := minDate, maxDate
	if *fromFlag != "" {
		if from, err = time.ParseInLocation(dateLayout, *fromFlag, time.UTC); err != nil {
			log.Fatalf("Invalid -from date: %v", err)
		}
	}
	if *toFlag != "" {
		if to, err = time.ParseInLocation(dateLayout, *toFlag, time.UTC); err != nil {
			log.Fatalf("Invalid -to date: %v", err)
		}
	}

	// 3. Initialize services and run the pipeline
	filterService := filter.NewFilterService()
	aggregateService := aggregate.NewAggregateService()
	forecastService := forecast.NewForecastService(*window, *horizon)
	recommendService := recommend.NewRecommendService(*topK)
	summaryService := summary.NewSummaryService()

	subset := filterService.Apply(store, from, to, *category)

	overview, err := summaryService.Overview(subset)
	if errors.Is(err, domain.ErrEmptyInput) {
		fmt.Printf("No data between %s and %s for category %q\n",
			from.Format(dateLayout), to.Format(dateLayout), *category)
		return
	}
	if err != nil {
		log.Fatalf("Failed to summarize subset: %v", err)
	}

	fmt.Printf("Range %s .. %s, category %s\n", from.Format(dateLayout), to.Format(dateLayout), *category)
	fmt.Printf("  Revenue:        %s\n", overview.TotalRevenue.StringFixed(3))
	fmt.Printf("  Sales:          %d\n", overview.SaleCount)
	fmt.Printf("  Quantity:       %d\n", overview.TotalQuantity)
	fmt.Printf("  Average ticket: %s\n", overview.AverageTicket.StringFixed(3))

	fmt.Printf("\nTop products by revenue:\n")
	for i, p := range summaryService.TopProducts(subset, *topProducts) {
		fmt.Printf("  %2d. %-40s %s\n", i+1, p.Product, p.Revenue.StringFixed(3))
	}

	shares, err := summaryService.CategoryShares(subset)
	if err != nil {
		log.Fatalf("Failed to compute category shares: %v", err)
	}
	fmt.Printf("\nRevenue by category:\n")
	for _, c := range shares {
		fmt.Printf("  %-20s %s (%s%%)\n", c.Category, c.Revenue.StringFixed(3),
			c.Share.Mul(hundred).StringFixed(1))
	}

	// 4. Forecast from the gap-filled daily series
	daily, err := aggregateService.DailyRevenue(subset)
	if err != nil {
		log.Fatalf("Failed to aggregate daily revenue: %v", err)
	}
	projection, err := forecastService.Project(daily)
	if err != nil {
		log.Fatalf("Failed to forecast: %v", err)
	}
	fmt.Printf("\nForecast (%d-day window, weighted moving average):\n", *window)
	for _, p := range projection {
		fmt.Printf("  %s  %s\n", p.Date.Format(dateLayout), p.PredictedRevenue.StringFixed(3))
	}

	// 5. Recommendations, when an anchor product was given
	if *anchor != "" {
		scores, err := recommendService.Recommend(subset, *anchor)
		if errors.Is(err, domain.ErrNoCoOccurrenceData) {
			fmt.Printf("\nNo sales of %q in range; nothing to recommend\n", *anchor)
			return
		}
		if err != nil {
			log.Fatalf("Failed to recommend: %v", err)
		}
		fmt.Printf("\nOften bought on the same day as %q:\n", *anchor)
		for _, s := range scores {
			fmt.Printf("  %-40s %s\n", s.Product, s.Score.StringFixed(3))
		}
	}
}
