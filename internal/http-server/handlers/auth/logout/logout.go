package logout

import (
	"context"
	"log/slog"
	"net/http"

	"holidaze/internal/http-server/middleware/auth"
	"holidaze/internal/lib/api/response"
	"holidaze/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionCloser
type SessionCloser interface {
	Logout(ctx context.Context, sessionID string) error
}

// New ends the current session. Logging out without a session is not an error.
func New(log *slog.Logger, closer SessionCloser, secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logout.New"

		log := log.With(slog.String("op", op))

		if id := auth.SessionID(r); id != "" {
			if err := closer.Logout(r.Context(), id); err != nil {
				log.Error("failed to destroy session", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to log out"))
				return
			}
		}

		auth.ClearCookie(w, secureCookie)

		log.Info("user logged out")

		resp := response.OK()
		resp.Redirect = "/"
		render.JSON(w, r, resp)
	}
}
