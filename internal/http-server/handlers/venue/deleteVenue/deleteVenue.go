package deleteVenue

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueDeleter
type VenueDeleter interface {
	Delete(ctx context.Context, s *session.Session, id string) error
}

func New(log *slog.Logger, deleter VenueDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.deleteVenue.New"

		log := log.With(slog.String("op", op))

		sess, ok := auth.SessionFrom(r.Context())
		if !ok {
			httperr.Render(w, r, log, session.ErrNotFound, "failed to delete venue")
			return
		}

		venueID := chi.URLParam(r, "id")
		if venueID == "" {
			log.Error("venue id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("venue id is required"))
			return
		}

		if err := deleter.Delete(r.Context(), sess, venueID); err != nil {
			httperr.Render(w, r, log, err, "failed to delete venue")
			return
		}

		log.Info("venue deleted", slog.String("venue_id", venueID))

		render.JSON(w, r, response.OK())
	}
}
