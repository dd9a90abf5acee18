package deleteProfile

import (
	"context"
	"log/slog"
	"net/http"

	"holidaze/internal/http-server/handlers/httperr"
	"holidaze/internal/http-server/middleware/auth"
	"holidaze/internal/lib/api/response"
	"holidaze/internal/session"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AccountDeleter
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, s *session.Session) error
}

// New deletes the user's profile and ends the session.
func New(log *slog.Logger, deleter AccountDeleter, secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profile.deleteProfile.New"

		log := log.With(slog.String("op", op))

		sess, ok := auth.SessionFrom(r.Context())
		if !ok {
			httperr.Render(w, r, log, session.ErrNotFound, "failed to delete account")
			return
		}

		if err := deleter.DeleteAccount(r.Context(), sess); err != nil {
			httperr.Render(w, r, log, err, "failed to delete account")
			return
		}

		auth.ClearCookie(w, secureCookie)

		log.Info("account deleted", slog.String("name", sess.User.Name))

		resp := response.OK()
		resp.Redirect = "/"
		render.JSON(w, r, resp)
	}
}
