package recommend

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pharmavie/salesboard-backend/internal/domain"
)

// DefaultTopK is the number of recommendations the host dashboard
// shows next to a selected product.
const DefaultTopK = 3

// RecommendService scores products by how often they are sold on the
// same calendar day as a chosen anchor product.
//
// The basket is all transactions sharing one calendar date. The data
// model carries no transaction or customer identifier, so same-day
// co-occurrence is the only basket definition available; it knowingly
// conflates unrelated customers and must not be "fixed" by inventing
// identifiers.
type RecommendService struct {
	TopK int
}

// NewRecommendService creates a new RecommendService instance
// A non-positive topK falls back to DefaultTopK
func NewRecommendService(topK int) *RecommendService {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &RecommendService{TopK: topK}
}

// Recommend ranks the products most often co-purchased with anchor.
// Logic:
//  1. Build a binary daily presence map: product -> set of days it was
//     sold at all (any quantity, not raw volume)
//  2. Select the days on which the anchor itself was sold
//  3. For every other product, score = (anchor days on which it was
//     also sold) / (anchor days) — the conditional co-occurrence
//     frequency, always in [0, 1]
//  4. Sort by score descending, ties broken by product ascending so
//     equal scores rank reproducibly, and keep the top TopK
//
// Returns domain.ErrNoCoOccurrenceData when the anchor never appears
// in the subset: with zero anchor days there is no denominator.
func (s *RecommendService) Recommend(subset []domain.TransactionRecord, anchor string) ([]domain.AssociationScore, error) {
	// 1. Presence map
	presence := make(map[string]map[time.Time]bool)
	for _, r := range subset {
		day := domain.DayOf(r.Date)
		if presence[r.Product] == nil {
			presence[r.Product] = make(map[time.Time]bool)
		}
		presence[r.Product][day] = true
	}

	// 2. Anchor days
	anchorDays := presence[anchor]
	if len(anchorDays) == 0 {
		return nil, domain.ErrNoCoOccurrenceData
	}
	total := decimal.NewFromInt(int64(len(anchorDays)))

	// 3. Conditional co-occurrence frequency per other product
	var scores []domain.AssociationScore
	for product, days := range presence {
		if product == anchor {
			continue
		}
		shared := 0
		for day := range anchorDays {
			if days[day] {
				shared++
			}
		}
		scores = append(scores, domain.AssociationScore{
			Product: product,
			Score:   decimal.NewFromInt(int64(shared)).Div(total),
		})
	}

	// 4. Deterministic ranking
	sort.Slice(scores, func(i, j int) bool {
		cmp := scores[i].Score.Cmp(scores[j].Score)
		if cmp != 0 {
			return cmp > 0
		}
		return scores[i].Product < scores[j].Product
	})

	if len(scores) > s.TopK {
		scores = scores[:s.TopK]
	}
	return scores, nil
}
