package profile

import (
	"context"

	"github.com/solmarket/marketplace-client/model"
	"github.com/solmarket/marketplace-client/repository/api"
)

type HTTP struct {
	client *api.Client
}

type ProfileRepository interface {
	Update(ctx context.Context, req *model.ProfileUpdateRequest) (*model.User, error)
}

func NewProfileRepository(client *api.Client) ProfileRepository {
	return &HTTP{client: client}
}

// Update saves the profile via PUT /profile and returns the refreshed
// user. The password field, when set, has already passed the advisory
// client-side policy; the server re-validates it regardless.
func (r *HTTP) Update(ctx context.Context, req *model.ProfileUpdateRequest) (*model.User, error) {
	var resp model.ProfileUpdateResponse
	if err := r.client.Put(ctx, "/profile", req, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}
