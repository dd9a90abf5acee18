package managerVenues

import (
	"context"
	"log/slog"
	"net/http"

	"holidaze/internal/http-server/handlers/httperr"
	"holidaze/internal/http-server/middleware/auth"
	"holidaze/internal/lib/api/response"
	"holidaze/internal/models"
	"holidaze/internal/session"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Venues []models.Venue `json:"venues"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ManagedVenueLister
type ManagedVenueLister interface {
	Managed(ctx context.Context, s *session.Session) ([]models.Venue, error)
}

// New lists the dashboard venues of the logged-in manager, each with its bookings.
func New(log *slog.Logger, lister ManagedVenueLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.managerVenues.New"

		log := log.With(slog.String("op", op))

		sess, ok := auth.SessionFrom(r.Context())
		if !ok {
			httperr.Render(w, r, log, session.ErrNotFound, "failed to get venues")
			return
		}

		vs, err := lister.Managed(r.Context(), sess)
		if err != nil {
			httperr.Render(w, r, log, err, "failed to get venues")
			return
		}

		if vs == nil {
			vs = []models.Venue{}
		}

		log.Info("manager venues listed", slog.Int("count", len(vs)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Venues:   vs,
		})
	}
}
