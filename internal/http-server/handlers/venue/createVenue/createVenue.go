package createVenue

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

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	response.Response
	Venue *models.Venue `json:"venue"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueCreator
type VenueCreator interface {
	Create(ctx context.Context, s *session.Session, in models.VenueInput) (*models.Venue, error)
}

func New(log *slog.Logger, creator VenueCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.createVenue.New"

		log := log.With(slog.String("op", op))

		sess, ok := auth.SessionFrom(r.Context())
		if !ok {
			httperr.Render(w, r, log, session.ErrNotFound, "failed to create venue")
			return
		}

		var req models.VenueInput

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("name", req.Name))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		venue, err := creator.Create(r.Context(), sess, req)
		if err != nil {
			httperr.Render(w, r, log, err, "failed to create venue")
			return
		}

		log.Info("venue created", slog.String("id", venue.ID))

		render.Status(r, http.StatusCreated)
		responseOK(w, r, venue)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, venue *models.Venue) {
	render.JSON(w, r, Response{
		Response: response.OK(),
		Venue:    venue,
	})
}
