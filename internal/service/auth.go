// Package service provides thin typed clients for each Airmates API
// resource, layered on the request pipeline. They add no behavior beyond
// endpoint knowledge; every verdict (conflicts, eligibility, pricing) comes
// from the server.
package service

import (
	"context"

	"github.com/airmates/airmates-go/internal/api"
	"github.com/airmates/airmates-go/internal/model"
)

// AuthClient performs the authentication calls.
type AuthClient struct {
	api *api.Client
}

// NewAuthClient constructs an AuthClient over the shared pipeline.
func NewAuthClient(c *api.Client) *AuthClient {
	return &AuthClient{api: c}
}

// Login exchanges credentials for a token and the current user. The call is
// unauthenticated (any stored token is still attached, and ignored by the
// server).
func (a *AuthClient) Login(ctx context.Context, email, password string) (model.AuthResponse, error) {
	return api.Post[model.AuthResponse](ctx, a.api, "/api/auth/mobile",
		model.LoginRequest{Email: email, Password: password})
}

// Refresh exchanges the stored token for a new one. The existing token rides
// in the Authorization header; there is no body.
func (a *AuthClient) Refresh(ctx context.Context) (model.AuthResponse, error) {
	return api.Post[model.AuthResponse](ctx, a.api, "/api/auth/mobile/refresh", nil)
}
