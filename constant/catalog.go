package constant

// CategoryAll matches every listing regardless of its text.
const CategoryAll = "All"

// Categories is the fixed set of browsable categories. Membership is
// decided by case-insensitive substring match against the listing title
// or description, not by a stored taxonomy.
var Categories = []string{
	"Electronics",
	"Vehicles",
	"Real Estate",
	"Fashion",
}

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
)

// ValidSortKey reports whether key is one of the supported sort orders.
func ValidSortKey(key SortKey) bool {
	switch key {
	case SortNewest, SortOldest, SortPriceLow, SortPriceHigh:
		return true
	}
	return false
}
