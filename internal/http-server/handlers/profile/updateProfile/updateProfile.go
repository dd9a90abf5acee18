package updateProfile

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
	Profile *models.Profile `json:"profile"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileUpdater
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, s *session.Session, upd models.ProfileUpdate) (*models.Profile, error)
}

// New applies a partial profile update: bio, avatar, banner or the venue manager flag.
func New(log *slog.Logger, updater ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profile.updateProfile.New"

		log := log.With(slog.String("op", op))

		sess, ok := auth.SessionFrom(r.Context())
		if !ok {
			httperr.Render(w, r, log, session.ErrNotFound, "failed to update profile")
			return
		}

		var req models.ProfileUpdate

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if req.Bio == nil && req.Avatar == nil && req.Banner == nil && req.VenueManager == nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("nothing to update"))
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

		p, err := updater.UpdateProfile(r.Context(), sess, req)
		if err != nil {
			httperr.Render(w, r, log, err, "failed to update profile")
			return
		}

		log.Info("profile updated", slog.String("name", p.Name))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Profile:  p,
		})
	}
}
