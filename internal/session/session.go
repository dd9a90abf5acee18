// Package session keeps the logged-in user's access token and profile snapshot
// behind an explicit lifecycle: Create on login, Get to hydrate, Destroy on logout.
package session

import (
	"context"
	"errors"
	"time"

	"holidaze/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrExpired  = errors.New("session expired")
)

type Session struct {
	ID        string         `json:"id"`
	Token     string         `json:"accessToken"`
	User      models.Profile `json:"userData"`
	ExpiresAt time.Time      `json:"expiresAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

func (s *Session) IsVenueManager() bool {
	return s.User.VenueManager
}

type EventKind string

const (
	EventSaved   EventKind = "saved"
	EventCleared EventKind = "cleared"
)

// Event announces that a session changed in the shared store.
type Event struct {
	ID   string    `json:"id"`
	Kind EventKind `json:"kind"`
}

type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// Subscriber is implemented by stores that can push change events.
type Subscriber interface {
	Subscribe(ctx context.Context) (<-chan Event, error)
}

// TokenExpiry reads the exp claim of a JWT without verifying it. The token is
// issued and verified by the API; the claim only bounds how long the session lives.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
