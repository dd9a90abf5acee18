package noroff

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"holidaze/internal/lib/logger/sl"
	"holidaze/internal/models"
)

const (
	venuesPageLimit = 100
	venuesMaxPages  = 50
)

// VenueOptions selects the relations embedded in venue responses.
type VenueOptions struct {
	Owner    bool
	Bookings bool
}

func (o VenueOptions) values() url.Values {
	q := url.Values{}
	if o.Owner {
		q.Set("_owner", "true")
	}
	if o.Bookings {
		q.Set("_bookings", "true")
	}

	return q
}

type VenueQuery struct {
	VenueOptions
	Limit int
	Page  int
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}

	return path + "?" + q.Encode()
}

func venuePath(id string) string {
	return "/holidaze/venues/" + url.PathEscape(id)
}

func (c *Client) ListVenues(ctx context.Context, q VenueQuery) ([]models.Venue, Meta, error) {
	venues, meta, _, err := c.listVenues(ctx, q)
	return venues, meta, err
}

func (c *Client) listVenues(ctx context.Context, q VenueQuery) ([]models.Venue, Meta, int, error) {
	values := q.values()
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	return many[models.Venue](ctx, c, withQuery("/holidaze/venues", values), "")
}

// ListAllVenues walks the venue pages until the API runs out, capped at venuesMaxPages.
// A failure after the first page ends the walk with what was collected so far.
func (c *Client) ListAllVenues(ctx context.Context) ([]models.Venue, error) {
	const op = "noroff.ListAllVenues"

	log := c.log.With(slog.String("op", op))

	var all []models.Venue

	page := 1
	for ; page <= venuesMaxPages; page++ {
		venues, meta, sent, err := c.listVenues(ctx, VenueQuery{Limit: venuesPageLimit, Page: page})
		if err != nil {
			if page == 1 {
				return nil, err
			}
			log.Warn("stopping pagination", slog.Int("page", page), sl.Err(err))
			break
		}

		if sent == 0 {
			break
		}

		all = append(all, venues...)

		if sent < venuesPageLimit {
			break
		}

		if p := meta.Pagination; p != nil && (p.IsLastPage || (p.PageCount > 0 && p.CurrentPage >= p.PageCount)) {
			break
		}
	}

	if page > venuesMaxPages {
		log.Warn("reached page limit, more venues may exist", slog.Int("max_pages", venuesMaxPages))
	}

	log.Debug("venues fetched", slog.Int("count", len(all)))

	return all, nil
}

func (c *Client) GetVenue(ctx context.Context, token, id string, opts VenueOptions) (*models.Venue, error) {
	return one[models.Venue](ctx, c, http.MethodGet, withQuery(venuePath(id), opts.values()), token, nil)
}

// VenuesByProfile lists the venues a manager owns, with their bookings.
func (c *Client) VenuesByProfile(ctx context.Context, token, name string) ([]models.Venue, error) {
	q := url.Values{}
	q.Set("_bookings", "true")

	venues, _, _, err := many[models.Venue](ctx, c, withQuery(profilePath(name)+"/venues", q), token)
	return venues, err
}

func (c *Client) CreateVenue(ctx context.Context, token string, in models.VenueInput) (*models.Venue, error) {
	return one[models.Venue](ctx, c, http.MethodPost, "/holidaze/venues", token, in)
}

func (c *Client) UpdateVenue(ctx context.Context, token, id string, in models.VenueInput) (*models.Venue, error) {
	return one[models.Venue](ctx, c, http.MethodPut, venuePath(id), token, in)
}

func (c *Client) DeleteVenue(ctx context.Context, token, id string) error {
	return c.exec(ctx, http.MethodDelete, venuePath(id), token, nil)
}
