package service

import (
	"context"

	"github.com/airmates/airmates-go/internal/api"
	"github.com/airmates/airmates-go/internal/model"
)

// CheckoutsClient handles the check-out / check-in workflow. Both flows POST
// to the same endpoint; the server tells them apart by body shape.
type CheckoutsClient struct {
	api *api.Client
}

func NewCheckoutsClient(c *api.Client) *CheckoutsClient {
	return &CheckoutsClient{api: c}
}

// List returns checkout records, most recent first.
func (c *CheckoutsClient) List(ctx context.Context) ([]model.Checkout, error) {
	return api.Get[[]model.Checkout](ctx, c.api, "/api/checkouts", nil)
}

// CheckOut takes an aircraft out. The tach reading travels as entered.
func (c *CheckoutsClient) CheckOut(ctx context.Context, req model.CheckOutRequest) (model.Checkout, error) {
	return api.Post[model.Checkout](ctx, c.api, "/api/checkouts", req)
}

// CheckIn closes an open checkout; the server derives the billable flight.
func (c *CheckoutsClient) CheckIn(ctx context.Context, req model.CheckInRequest) (model.CheckoutResponse, error) {
	return api.Post[model.CheckoutResponse](ctx, c.api, "/api/checkouts", req)
}
