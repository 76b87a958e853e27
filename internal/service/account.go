package service

import (
	"context"

	"github.com/airmates/airmates-go/internal/api"
	"github.com/airmates/airmates-go/internal/model"
)

// AccountClient reads the member's account summary and updates their profile.
type AccountClient struct {
	api *api.Client
}

func NewAccountClient(c *api.Client) *AccountClient {
	return &AccountClient{api: c}
}

// MyAccount returns the member's billing summary, transactions and flights.
func (a *AccountClient) MyAccount(ctx context.Context) (model.MyAccountData, error) {
	return api.Get[model.MyAccountData](ctx, a.api, "/api/my-account", nil)
}

// UpdateProfile patches the editable profile fields and returns the updated
// user record.
func (a *AccountClient) UpdateProfile(ctx context.Context, req model.ProfileUpdateRequest) (model.User, error) {
	return api.Patch[model.User](ctx, a.api, "/api/profile", req)
}
