// Package account handles registration, login and the logged-in user's profile.
package account

import (
	"context"
	"fmt"
	"log/slog"

	"holidaze/internal/lib/logger/sl"
	"holidaze/internal/models"
	"holidaze/internal/session"
)

const (
	RouteManagerHome = "/venue-manager/dashboard"
	RouteUserHome    = "/user/profile"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=API
type API interface {
	Register(ctx context.Context, reg models.Registration) (*models.Profile, error)
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error)
	GetProfile(ctx context.Context, token, name string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, token, name string, upd models.ProfileUpdate) (*models.Profile, error)
	DeleteProfile(ctx context.Context, token string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Sessions
type Sessions interface {
	Create(ctx context.Context, token string, user models.Profile) (*session.Session, error)
	UpdateUser(ctx context.Context, id string, user models.Profile) (*session.Session, error)
	Destroy(ctx context.Context, id string) error
}

type Service struct {
	api      API
	sessions Sessions
	log      *slog.Logger
}

func New(api API, sessions Sessions, log *slog.Logger) *Service {
	return &Service{
		api:      api,
		sessions: sessions,
		log:      log,
	}
}

// LoginResult is a fresh session and the page the user lands on.
type LoginResult struct {
	Session  *session.Session
	Redirect string
}

// HomeRoute is the landing page for a profile.
func HomeRoute(p models.Profile) string {
	if p.VenueManager {
		return RouteManagerHome
	}

	return RouteUserHome
}

// Register creates the profile and logs it in with the same credentials.
func (s *Service) Register(ctx context.Context, reg models.Registration) (*LoginResult, error) {
	const op = "account.Service.Register"

	p, err := s.api.Register(ctx, reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("profile registered",
		slog.String("op", op),
		slog.String("name", p.Name),
		slog.Bool("venue_manager", p.VenueManager),
	)

	res, err := s.Login(ctx, models.Credentials{Email: reg.Email, Password: reg.Password})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}

// Login authenticates and reads the full profile to learn the venue manager flag. When
// the profile lookup fails the login payload is used as is.
func (s *Service) Login(ctx context.Context, creds models.Credentials) (*LoginResult, error) {
	const op = "account.Service.Login"

	log := s.log.With(slog.String("op", op))

	auth, err := s.api.Login(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := auth.Profile

	p, err := s.api.GetProfile(ctx, auth.AccessToken, auth.Name)
	if err != nil {
		log.Warn("profile lookup failed, using login payload", slog.String("name", auth.Name), sl.Err(err))
	} else {
		user = *p
	}

	sess, err := s.sessions.Create(ctx, auth.AccessToken, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("logged in", slog.String("name", user.Name), slog.Bool("venue_manager", user.VenueManager))

	return &LoginResult{
		Session:  sess,
		Redirect: HomeRoute(user),
	}, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	const op = "account.Service.Logout"

	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteAccount removes the profile from the API and ends the session.
func (s *Service) DeleteAccount(ctx context.Context, sess *session.Session) error {
	const op = "account.Service.DeleteAccount"

	if err := s.api.DeleteProfile(ctx, sess.Token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.sessions.Destroy(ctx, sess.ID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("account deleted", slog.String("op", op), slog.String("name", sess.User.Name))

	return nil
}

func (s *Service) Profile(ctx context.Context, sess *session.Session) (*models.Profile, error) {
	const op = "account.Service.Profile"

	p, err := s.api.GetProfile(ctx, sess.Token, sess.User.Name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// UpdateProfile saves the changes and refreshes the session's copy of the profile.
func (s *Service) UpdateProfile(ctx context.Context, sess *session.Session, upd models.ProfileUpdate) (*models.Profile, error) {
	const op = "account.Service.UpdateProfile"

	p, err := s.api.UpdateProfile(ctx, sess.Token, sess.User.Name, upd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err = s.sessions.UpdateUser(ctx, sess.ID, *p); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}
