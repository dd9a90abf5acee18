package cancelBooking

import (
	"context"
	"log/slog"
	"net/http"

	"holidaze/internal/http-server/handlers/httperr"
	"holidaze/internal/http-server/middleware/auth"
	"holidaze/internal/lib/api/response"
	"holidaze/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCanceller
type BookingCanceller interface {
	Cancel(ctx context.Context, s *session.Session, bookingID string) error
}

func New(log *slog.Logger, canceller BookingCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.cancelBooking.New"

		log := log.With(slog.String("op", op))

		sess, ok := auth.SessionFrom(r.Context())
		if !ok {
			httperr.Render(w, r, log, session.ErrNotFound, "failed to cancel booking")
			return
		}

		bookingID := chi.URLParam(r, "id")
		if bookingID == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		if err := canceller.Cancel(r.Context(), sess, bookingID); err != nil {
			httperr.Render(w, r, log, err, "failed to cancel booking")
			return
		}

		log.Info("booking cancelled", slog.String("booking_id", bookingID))

		render.JSON(w, r, response.OK())
	}
}
