package service

import (
	"context"

	"github.com/airmates/airmates-go/internal/api"
	"github.com/airmates/airmates-go/internal/model"
)

// FleetClient reads fleet status and the club dashboard.
type FleetClient struct {
	api *api.Client
}

func NewFleetClient(c *api.Client) *FleetClient {
	return &FleetClient{api: c}
}

// List returns all aircraft with their current status.
func (f *FleetClient) List(ctx context.Context) ([]model.Aircraft, error) {
	return api.Get[[]model.Aircraft](ctx, f.api, "/api/aircraft", nil)
}

// Dashboard returns the club-wide aggregate for the landing screen.
func (f *FleetClient) Dashboard(ctx context.Context) (model.DashboardData, error) {
	return api.Get[model.DashboardData](ctx, f.api, "/api/dashboard", nil)
}
