package getVenue

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"holidaze/internal/availability"
	"holidaze/internal/booking"
	"holidaze/internal/http-server/handlers/httperr"
	"holidaze/internal/http-server/middleware/auth"
	"holidaze/internal/lib/api/response"
	"holidaze/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	*booking.Availability
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AvailabilityProvider
type AvailabilityProvider interface {
	Availability(ctx context.Context, token string, req booking.AvailabilityRequest) (*booking.Availability, error)
}

// New serves the venue detail view. Optional query params: month (YYYY-MM), checkIn and
// checkOut (YYYY-MM-DD) for the highlighted selection.
func New(log *slog.Logger, provider AvailabilityProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.getVenue.New"

		log := log.With(slog.String("op", op))

		venueID := chi.URLParam(r, "id")
		if venueID == "" {
			log.Error("venue id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("venue id is required"))
			return
		}

		log = log.With(slog.String("venue_id", venueID))

		req := booking.AvailabilityRequest{VenueID: venueID}

		if s := r.URL.Query().Get("month"); s != "" {
			m, err := availability.ParseMonth(s)
			if err != nil {
				log.Error("invalid month", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.FieldError("month", "invalid month format"))
				return
			}
			req.Month = m
		}

		var ok bool
		if req.CheckIn, ok = dateParam(w, r, log, "checkIn"); !ok {
			return
		}
		if req.CheckOut, ok = dateParam(w, r, log, "checkOut"); !ok {
			return
		}

		res, err := provider.Availability(r.Context(), auth.Token(r.Context()), req)
		if err != nil {
			httperr.Render(w, r, log, err, "failed to get venue")
			return
		}

		log.Info("venue availability served", slog.Bool("bookings_known", res.BookingsKnown))

		render.JSON(w, r, Response{
			Response:     response.OK(),
			Availability: res,
		})
	}
}

func dateParam(w http.ResponseWriter, r *http.Request, log *slog.Logger, name string) (time.Time, bool) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return time.Time{}, true
	}

	d, err := availability.ParseDate(s)
	if err != nil {
		log.Error("invalid date", slog.String("param", name), sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.FieldError(name, "invalid date format"))
		return time.Time{}, false
	}

	return d, true
}
