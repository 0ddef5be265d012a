package listing

import (
	"context"
	"net/url"

	"github.com/solmarket/marketplace-client/model"
	"github.com/solmarket/marketplace-client/repository/api"
)

type HTTP struct {
	client *api.Client
}

type ListingRepository interface {
	Search(ctx context.Context, query model.ListingQuery) ([]model.Listing, error)
}

func NewListingRepository(client *api.Client) ListingRepository {
	return &HTTP{client: client}
}

// Search queries GET /listings. The server filters on free text and the
// price bounds; category and sort stay client-side.
func (r *HTTP) Search(ctx context.Context, query model.ListingQuery) ([]model.Listing, error) {
	q := url.Values{}
	if query.Q != "" {
		q.Set("q", query.Q)
	}
	if query.MinPrice != "" {
		q.Set("minPrice", query.MinPrice)
	}
	if query.MaxPrice != "" {
		q.Set("maxPrice", query.MaxPrice)
	}

	path := "/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var listings []model.Listing
	if err := r.client.Get(ctx, path, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}
