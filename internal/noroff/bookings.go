package noroff

import (
	"context"
	"net/http"
	"net/url"

	"holidaze/internal/models"
)

func bookingPath(id string) string {
	return "/holidaze/bookings/" + url.PathEscape(id)
}

func bookingRelations() url.Values {
	q := url.Values{}
	q.Set("_customer", "true")
	q.Set("_venue", "true")

	return q
}

// ListBookings returns every booking visible to the token, with customer and venue.
func (c *Client) ListBookings(ctx context.Context, token string) ([]models.Booking, error) {
	bookings, _, _, err := many[models.Booking](ctx, c, withQuery("/holidaze/bookings", bookingRelations()), token)
	return bookings, err
}

func (c *Client) BookingsByProfile(ctx context.Context, token, name string) ([]models.Booking, error) {
	q := url.Values{}
	q.Set("_venue", "true")

	bookings, _, _, err := many[models.Booking](ctx, c, withQuery(profilePath(name)+"/bookings", q), token)
	return bookings, err
}

func (c *Client) GetBooking(ctx context.Context, token, id string) (*models.Booking, error) {
	return one[models.Booking](ctx, c, http.MethodGet, withQuery(bookingPath(id), bookingRelations()), token, nil)
}

func (c *Client) CreateBooking(ctx context.Context, token string, in models.BookingInput) (*models.Booking, error) {
	return one[models.Booking](ctx, c, http.MethodPost, "/holidaze/bookings", token, in)
}

func (c *Client) UpdateBooking(ctx context.Context, token, id string, in models.BookingInput) (*models.Booking, error) {
	return one[models.Booking](ctx, c, http.MethodPut, bookingPath(id), token, in)
}

func (c *Client) DeleteBooking(ctx context.Context, token, id string) error {
	return c.exec(ctx, http.MethodDelete, bookingPath(id), token, nil)
}
