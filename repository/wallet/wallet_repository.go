package wallet

import (
	"context"
	"net/url"

	"github.com/solmarket/marketplace-client/model"
	"github.com/solmarket/marketplace-client/repository/api"
)

type HTTP struct {
	client *api.Client
}

type WalletRepository interface {
	Get(ctx context.Context, userID string) (*model.WalletView, error)
}

func NewWalletRepository(client *api.Client) WalletRepository {
	return &HTTP{client: client}
}

// Get fetches the wallet view (user, transactions, tokens,
// notifications) for a user. The client never mutates the balance; it
// re-fetches after a successful purchase.
func (r *HTTP) Get(ctx context.Context, userID string) (*model.WalletView, error) {
	var view model.WalletView
	if err := r.client.Get(ctx, "/wallet/"+url.PathEscape(userID), &view); err != nil {
		return nil, err
	}
	return &view, nil
}
