package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/solmarket/marketplace-client/constant"
	"github.com/solmarket/marketplace-client/model"
	listingrepo "github.com/solmarket/marketplace-client/repository/listing"
	"github.com/solmarket/marketplace-client/utils/errors"
	"github.com/solmarket/marketplace-client/utils/logger"
	"go.uber.org/zap"
)

// CriterionField names one dimension of the search configuration.
type CriterionField string

const (
	FieldQuery    CriterionField = "query"
	FieldMinPrice CriterionField = "min-price"
	FieldMaxPrice CriterionField = "max-price"
	FieldCategory CriterionField = "category"
	FieldSort     CriterionField = "sort"
)

type CatalogApp interface {
	// SetCriterion updates one criterion. The returned flag tells the
	// caller whether the change needs a server round-trip (text and
	// price bounds do; category and sort apply client-side).
	SetCriterion(field CriterionField, value string) (bool, error)
	Criteria() model.SearchCriteria
	// Fetch queries the backend with the current criteria and replaces
	// the raw listing set. On failure the previous set is retained and
	// an explicit error is returned; nothing escapes unhandled.
	Fetch(ctx context.Context) ([]model.Listing, error)
	// View returns the category-filtered, sorted rendering of the
	// current raw set.
	View() []model.Listing
	CategoryCounts() map[string]int
	Volume() decimal.Decimal
}

type catalogAppImpl struct {
	listingRepo listingrepo.ListingRepository

	mu       sync.Mutex
	criteria model.SearchCriteria
	listings []model.Listing
}

func NewCatalogApp(listingRepo listingrepo.ListingRepository) CatalogApp {
	return &catalogAppImpl{
		listingRepo: listingRepo,
		criteria:    model.DefaultCriteria(),
	}
}

func (s *catalogAppImpl) SetCriterion(field CriterionField, value string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case FieldQuery:
		s.criteria.Query = value
		return true, nil
	case FieldMinPrice:
		s.criteria.MinPrice = value
		return true, nil
	case FieldMaxPrice:
		s.criteria.MaxPrice = value
		return true, nil
	case FieldCategory:
		s.criteria.Category = value
		return false, nil
	case FieldSort:
		if !constant.ValidSortKey(constant.SortKey(value)) {
			return false, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		s.criteria.Sort = constant.SortKey(value)
		return false, nil
	}
	return false, errors.SetCustomError(constant.ErrInvalidRequest)
}

func (s *catalogAppImpl) Criteria() model.SearchCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

func (s *catalogAppImpl) Fetch(ctx context.Context) ([]model.Listing, error) {
	s.mu.Lock()
	query := s.criteria.ServerQuery()
	s.mu.Unlock()

	listings, err := s.listingRepo.Search(ctx, query)
	if err != nil {
		logger.Error("[Fetch] error listingRepo.Search", zap.String("error", err.Error()))
		// Keep the last good view; the caller decides whether to
		// surface the failure.
		return nil, errors.SetCustomError(constant.ErrQueryFailed)
	}

	s.mu.Lock()
	s.listings = listings
	s.mu.Unlock()
	return listings, nil
}

func (s *catalogAppImpl) View() []model.Listing {
	s.mu.Lock()
	listings := s.listings
	criteria := s.criteria
	s.mu.Unlock()

	return ApplySort(ApplyCategoryFilter(listings, criteria.Category), criteria.Sort)
}

func (s *catalogAppImpl) CategoryCounts() map[string]int {
	s.mu.Lock()
	listings := s.listings
	s.mu.Unlock()

	counts := make(map[string]int, len(constant.Categories)+1)
	counts[constant.CategoryAll] = CategoryCount(listings, constant.CategoryAll)
	for _, category := range constant.Categories {
		counts[category] = CategoryCount(listings, category)
	}
	return counts
}

func (s *catalogAppImpl) Volume() decimal.Decimal {
	s.mu.Lock()
	listings := s.listings
	s.mu.Unlock()
	return Volume(listings)
}

// MatchesCategory is the classification heuristic: a listing belongs to
// a category when its title or description contains the category name,
// case-insensitively. A listing may match any number of categories.
// Kept as a single pure function so a real taxonomy could replace it.
func MatchesCategory(l model.Listing, category string) bool {
	if category == constant.CategoryAll {
		return true
	}
	needle := strings.ToLower(category)
	return strings.Contains(strings.ToLower(l.Title), needle) ||
		strings.Contains(strings.ToLower(l.Description), needle)
}

// ApplyCategoryFilter returns the order-preserving subsequence of
// listings matching the category. "All" returns the input unchanged.
func ApplyCategoryFilter(listings []model.Listing, category string) []model.Listing {
	if category == constant.CategoryAll {
		return listings
	}
	filtered := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if MatchesCategory(l, category) {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

// ApplySort orders listings by the sort key. The sort is stable: equal
// keys keep their fetch order. Invalid prices compare as zero, invalid
// timestamps as the zero time.
func ApplySort(listings []model.Listing, key constant.SortKey) []model.Listing {
	sorted := make([]model.Listing, len(listings))
	copy(sorted, listings)

	switch key {
	case constant.SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedTime().After(sorted[j].CreatedTime())
		})
	case constant.SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedTime().Before(sorted[j].CreatedTime())
		})
	case constant.SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PriceDecimal().LessThan(sorted[j].PriceDecimal())
		})
	case constant.SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PriceDecimal().GreaterThan(sorted[j].PriceDecimal())
		})
	}
	return sorted
}

// CategoryCount counts listings matching the category under the same
// substring rule as ApplyCategoryFilter; "All" counts everything. It is
// recomputed from the listing set on every call, never cached.
func CategoryCount(listings []model.Listing, category string) int {
	count := 0
	for _, l := range listings {
		if MatchesCategory(l, category) {
			count++
		}
	}
	return count
}

// Volume sums listing prices with decimal precision. Malformed prices
// contribute zero.
func Volume(listings []model.Listing) decimal.Decimal {
	total := decimal.Zero
	for _, l := range listings {
		total = total.Add(l.PriceDecimal())
	}
	return total
}
