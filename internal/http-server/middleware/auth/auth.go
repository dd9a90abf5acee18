// Package auth resolves the request's session and guards the routes that need one.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"holidaze/internal/lib/api/response"
	"holidaze/internal/lib/logger/sl"
	"holidaze/internal/session"

	"github.com/go-chi/render"
)

const (
	CookieName = "holidaze_session"
	HeaderName = "X-Session-ID"
)

type ctxKey struct{}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionGetter
type SessionGetter interface {
	Get(ctx context.Context, id string) (*session.Session, error)
}

// New loads the session named by the cookie or header into the request context.
// Requests without a valid session pass through anonymously.
func New(log *slog.Logger, sessions SessionGetter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			id := SessionID(r)
			if id == "" {
				next.ServeHTTP(w, r)
				return
			}

			s, err := sessions.Get(r.Context(), id)
			if err != nil {
				if !errors.Is(err, session.ErrNotFound) {
					log.Error("failed to load session", sl.Err(err))
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		}

		return http.HandlerFunc(fn)
	}
}

// SessionID reads the session id, preferring the header over the cookie.
func SessionID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(HeaderName)); id != "" {
		return id
	}

	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}

	return ""
}

func WithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func SessionFrom(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*session.Session)
	return s, ok && s != nil
}

// Token is the access token of the request's session, or "" for anonymous requests.
func Token(ctx context.Context) string {
	if s, ok := SessionFrom(ctx); ok {
		return s.Token
	}

	return ""
}

// RequireUser rejects anonymous requests with a pointer to the guest login page.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFrom(r.Context()); !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Redirect("please log in", "/login/user"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireManager admits only venue managers.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := SessionFrom(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Redirect("please log in as a venue manager", "/login/venue-manager"))
			return
		}

		if !s.IsVenueManager() {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Redirect("venue manager role required", "/login/venue-manager"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SetCookie hands the session id to the browser.
func SetCookie(w http.ResponseWriter, s *session.Session, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    s.ID,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
