package myBookings

import (
	"context"
	"log/slog"
	"net/http"

	"holidaze/internal/booking"
	"holidaze/internal/http-server/handlers/httperr"
	"holidaze/internal/http-server/middleware/auth"
	"holidaze/internal/lib/api/response"
	"holidaze/internal/session"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Bookings []booking.Entry `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingLister
type BookingLister interface {
	Mine(ctx context.Context, s *session.Session) ([]booking.Entry, error)
}

func New(log *slog.Logger, lister BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.myBookings.New"

		log := log.With(slog.String("op", op))

		sess, ok := auth.SessionFrom(r.Context())
		if !ok {
			httperr.Render(w, r, log, session.ErrNotFound, "failed to get bookings")
			return
		}

		entries, err := lister.Mine(r.Context(), sess)
		if err != nil {
			httperr.Render(w, r, log, err, "failed to get bookings")
			return
		}

		if entries == nil {
			entries = []booking.Entry{}
		}

		log.Info("bookings listed", slog.Int("count", len(entries)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Bookings: entries,
		})
	}
}
