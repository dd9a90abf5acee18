package getProfile

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
	Profile *models.Profile `json:"profile"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileProvider
type ProfileProvider interface {
	Profile(ctx context.Context, s *session.Session) (*models.Profile, error)
}

func New(log *slog.Logger, provider ProfileProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profile.getProfile.New"

		log := log.With(slog.String("op", op))

		sess, ok := auth.SessionFrom(r.Context())
		if !ok {
			httperr.Render(w, r, log, session.ErrNotFound, "failed to get profile")
			return
		}

		p, err := provider.Profile(r.Context(), sess)
		if err != nil {
			httperr.Render(w, r, log, err, "failed to get profile")
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Profile:  p,
		})
	}
}
