package updateVenue

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"holidaze/internal/http-server/handlers/httperr"
	"holidaze/internal/http-server/middleware/auth"
	"holidaze/internal/lib/api/response"
	"holidaze/internal/lib/logger/sl"
	"holidaze/internal/models"
	"holidaze/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	response.Response
	Venue *models.Venue `json:"venue"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueUpdater
type VenueUpdater interface {
	Update(ctx context.Context, s *session.Session, id string, in models.VenueInput) (*models.Venue, error)
}

func New(log *slog.Logger, updater VenueUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.updateVenue.New"

		log := log.With(slog.String("op", op))

		sess, ok := auth.SessionFrom(r.Context())
		if !ok {
			httperr.Render(w, r, log, session.ErrNotFound, "failed to update venue")
			return
		}

		venueID := chi.URLParam(r, "id")
		if venueID == "" {
			log.Error("venue id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("venue id is required"))
			return
		}

		log = log.With(slog.String("venue_id", venueID))

		var req models.VenueInput

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		venue, err := updater.Update(r.Context(), sess, venueID, req)
		if err != nil {
			httperr.Render(w, r, log, err, "failed to update venue")
			return
		}

		log.Info("venue updated")

		render.JSON(w, r, Response{
			Response: response.OK(),
			Venue:    venue,
		})
	}
}
