package service

import (
	"context"

	"github.com/airmates/airmates-go/internal/api"
	"github.com/airmates/airmates-go/internal/model"
)

// SquawksClient reports aircraft discrepancies.
type SquawksClient struct {
	api *api.Client
}

func NewSquawksClient(c *api.Client) *SquawksClient {
	return &SquawksClient{api: c}
}

// Report files a new squawk against an aircraft.
func (s *SquawksClient) Report(ctx context.Context, req model.SquawkRequest) (model.Squawk, error) {
	return api.Post[model.Squawk](ctx, s.api, "/api/squawks", req)
}
