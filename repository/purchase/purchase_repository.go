package purchase

import (
	"context"

	"github.com/solmarket/marketplace-client/model"
	"github.com/solmarket/marketplace-client/repository/api"
)

type HTTP struct {
	client *api.Client
}

type PurchaseRepository interface {
	Submit(ctx context.Context, listingID string) error
}

func NewPurchaseRepository(client *api.Client) PurchaseRepository {
	return &HTTP{client: client}
}

// Submit issues the balance transfer for a listing. The backend settles
// the purchase atomically; the client only observes success or failure.
func (r *HTTP) Submit(ctx context.Context, listingID string) error {
	req := model.PurchaseRequest{ListingID: listingID}
	return r.client.Post(ctx, "/purchase", &req, nil)
}
