package service

import (
	"context"
	"net/url"
	"time"

	"github.com/airmates/airmates-go/internal/api"
	"github.com/airmates/airmates-go/internal/model"
)

// dateLayout is the query format for schedule lookups.
const dateLayout = "2006-01-02"

// BookingsClient manages schedule slots.
type BookingsClient struct {
	api *api.Client
}

func NewBookingsClient(c *api.Client) *BookingsClient {
	return &BookingsClient{api: c}
}

// ListForDate returns the schedule for one day.
func (b *BookingsClient) ListForDate(ctx context.Context, day time.Time) ([]model.Booking, error) {
	q := url.Values{}
	q.Set("date", day.UTC().Format(dateLayout))
	return api.Get[[]model.Booking](ctx, b.api, "/api/bookings", q)
}

// Create submits a new booking. A schedule conflict surfaces as a
// ConflictError whose message comes from the server; the caller may then
// resubmit via CreateStandby.
func (b *BookingsClient) Create(ctx context.Context, req model.BookingRequest) (model.Booking, error) {
	return api.Post[model.Booking](ctx, b.api, "/api/bookings", req)
}

// CreateStandby resubmits a conflicting booking as standby, pending
// resolution by the club.
func (b *BookingsClient) CreateStandby(ctx context.Context, req model.BookingRequest) (model.Booking, error) {
	standby := model.BookingStandby
	req.Status = &standby
	return b.Create(ctx, req)
}

// Cancel deletes a booking by id and reports whether the server removed it.
func (b *BookingsClient) Cancel(ctx context.Context, id string) (bool, error) {
	q := url.Values{}
	q.Set("id", id)
	resp, err := api.Delete[model.DeleteBookingResponse](ctx, b.api, "/api/bookings", q)
	if err != nil {
		return false, err
	}
	return resp.Deleted, nil
}
