package summary

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/pharmavie/salesboard-backend/internal/domain"
)

// Overview represents the headline indicators of a filtered subset:
// the figures the dashboard shows above the charts
type Overview struct {
	TotalRevenue  decimal.Decimal
	SaleCount     int
	TotalQuantity int
	AverageTicket decimal.Decimal // TotalRevenue / SaleCount
}

// ProductRevenue represents one product's total revenue in a subset
type ProductRevenue struct {
	Product string
	Revenue decimal.Decimal
}

// CategoryShare represents one category's revenue and its fraction of
// the subset total
type CategoryShare struct {
	Category string
	Revenue  decimal.Decimal
	Share    decimal.Decimal // Revenue / subset total, in [0, 1]
}

// SummaryService computes the dashboard's headline indicators and
// breakdowns over a filtered subset
type SummaryService struct{}

// NewSummaryService creates a new SummaryService instance
func NewSummaryService() *SummaryService {
	return &SummaryService{}
}

// Overview computes the key indicators of the subset.
// Returns domain.ErrEmptyInput for an empty subset: the average ticket
// has no denominator and the host shows its "no data" state instead.
func (s *SummaryService) Overview(subset []domain.TransactionRecord) (*Overview, error) {
	if len(subset) == 0 {
		return nil, domain.ErrEmptyInput
	}

	total := decimal.Zero
	quantity := 0
	for _, r := range subset {
		total = total.Add(r.Revenue)
		quantity += r.Quantity
	}

	return &Overview{
		TotalRevenue:  total,
		SaleCount:     len(subset),
		TotalQuantity: quantity,
		AverageTicket: total.Div(decimal.NewFromInt(int64(len(subset)))),
	}, nil
}

// TopProducts returns the n products with the highest total revenue in
// the subset, descending, ties broken by product ascending.
// An empty subset yields an empty list: the ranking degrades
// gracefully, unlike the indicators, because no division is involved.
func (s *SummaryService) TopProducts(subset []domain.TransactionRecord, n int) []ProductRevenue {
	totals := make(map[string]decimal.Decimal)
	for _, r := range subset {
		totals[r.Product] = totals[r.Product].Add(r.Revenue)
	}

	ranking := make([]ProductRevenue, 0, len(totals))
	for product, revenue := range totals {
		ranking = append(ranking, ProductRevenue{Product: product, Revenue: revenue})
	}

	sort.Slice(ranking, func(i, j int) bool {
		cmp := ranking[i].Revenue.Cmp(ranking[j].Revenue)
		if cmp != 0 {
			return cmp > 0
		}
		return ranking[i].Product < ranking[j].Product
	})

	if n > 0 && len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// CategoryShares returns each category's revenue and its fraction of
// the subset total, sorted by category ascending for determinism.
// Returns domain.ErrEmptyInput for an empty subset (zero total, so the
// shares have no denominator).
func (s *SummaryService) CategoryShares(subset []domain.TransactionRecord) ([]CategoryShare, error) {
	if len(subset) == 0 {
		return nil, domain.ErrEmptyInput
	}

	totals := make(map[string]decimal.Decimal)
	grand := decimal.Zero
	for _, r := range subset {
		totals[r.Category] = totals[r.Category].Add(r.Revenue)
		grand = grand.Add(r.Revenue)
	}

	categories := make([]string, 0, len(totals))
	for category := range totals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	shares := make([]CategoryShare, 0, len(categories))
	for _, category := range categories {
		share := decimal.Zero
		if !grand.IsZero() {
			share = totals[category].Div(grand)
		}
		shares = append(shares, CategoryShare{
			Category: category,
			Revenue:  totals[category],
			Share:    share,
		})
	}
	return shares, nil
}
