package model

import "github.com/solmarket/marketplace-client/constant"

// SearchCriteria holds the mutable search/filter/sort configuration for
// the catalog view. Query and the price bounds are sent to the server;
// Category and Sort apply client-side only.
type SearchCriteria struct {
	Query    string
	MinPrice string
	MaxPrice string
	Category string
	Sort     constant.SortKey
}

// DefaultCriteria returns the initial catalog configuration.
func DefaultCriteria() SearchCriteria {
	return SearchCriteria{
		Category: constant.CategoryAll,
		Sort:     constant.SortNewest,
	}
}

// ListingQuery is the server-side portion of the criteria, mapped to the
// GET /listings query parameters.
type ListingQuery struct {
	Q        string
	MinPrice string
	MaxPrice string
}

// ServerQuery extracts the fields the backend filters on. An inverted
// min/max range is passed through as-is; the server answers with an
// empty set.
func (c SearchCriteria) ServerQuery() ListingQuery {
	return ListingQuery{
		Q:        c.Query,
		MinPrice: c.MinPrice,
		MaxPrice: c.MaxPrice,
	}
}
