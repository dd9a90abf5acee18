package venues

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"holidaze/internal/lib/logger/sl"
	"holidaze/internal/models"
	"holidaze/internal/noroff"
	"holidaze/internal/session"

	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound   = errors.New("venue not found")
	ErrNotManager = errors.New("venue manager role required")
	ErrNotOwner   = errors.New("venue belongs to another manager")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=API
type API interface {
	ListAllVenues(ctx context.Context) ([]models.Venue, error)
	GetVenue(ctx context.Context, token, id string, opts noroff.VenueOptions) (*models.Venue, error)
	VenuesByProfile(ctx context.Context, token, name string) ([]models.Venue, error)
	CreateVenue(ctx context.Context, token string, in models.VenueInput) (*models.Venue, error)
	UpdateVenue(ctx context.Context, token, id string, in models.VenueInput) (*models.Venue, error)
	DeleteVenue(ctx context.Context, token, id string) error
}

// Catalog serves the public venue list from a short-lived snapshot of every venue
// and runs the manager-side venue operations.
type Catalog struct {
	api API
	ttl time.Duration
	log *slog.Logger
	now func() time.Time

	group singleflight.Group

	mu       sync.RWMutex
	snapshot []Summary
	loadedAt time.Time
}

func NewCatalog(api API, ttl time.Duration, log *slog.Logger) *Catalog {
	return &Catalog{
		api: api,
		ttl: ttl,
		log: log,
		now: time.Now,
	}
}

func (c *Catalog) Search(ctx context.Context, q Query) (Result, error) {
	const op = "venues.Catalog.Search"

	all, err := c.summaries(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}

	return Search(all, q), nil
}

// loadTimeout bounds one shared walk over the API pages.
const loadTimeout = time.Minute

// summaries returns the cached snapshot, reloading it once per ttl. Concurrent
// misses share a single walk over the API pages; the walk is detached from the
// caller that started it, and each caller stops waiting when its own ctx ends.
func (c *Catalog) summaries(ctx context.Context) ([]Summary, error) {
	c.mu.RLock()
	if c.snapshot != nil && c.now().Sub(c.loadedAt) < c.ttl {
		all := c.snapshot
		c.mu.RUnlock()
		return all, nil
	}
	c.mu.RUnlock()

	ch := c.group.DoChan("all", func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		venues, err := c.api.ListAllVenues(loadCtx)
		if err != nil {
			return nil, err
		}

		all := SummarizeAll(venues)

		c.mu.Lock()
		c.snapshot = all
		c.loadedAt = c.now()
		c.mu.Unlock()

		c.log.Debug("venue catalog loaded", slog.Int("venues", len(all)))

		return all, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]Summary), nil
	}
}

// Invalidate drops the snapshot so the next search reloads.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	c.snapshot = nil
	c.mu.Unlock()
}

// Managed lists the venues owned by the session user, with their bookings.
func (c *Catalog) Managed(ctx context.Context, s *session.Session) ([]models.Venue, error) {
	const op = "venues.Catalog.Managed"

	if !s.IsVenueManager() {
		return nil, ErrNotManager
	}

	vs, err := c.api.VenuesByProfile(ctx, s.Token, s.User.Name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return vs, nil
}

func (c *Catalog) Create(ctx context.Context, s *session.Session, in models.VenueInput) (*models.Venue, error) {
	const op = "venues.Catalog.Create"

	if !s.IsVenueManager() {
		return nil, ErrNotManager
	}

	v, err := c.api.CreateVenue(ctx, s.Token, in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c.Invalidate()

	return v, nil
}

func (c *Catalog) Update(ctx context.Context, s *session.Session, id string, in models.VenueInput) (*models.Venue, error) {
	const op = "venues.Catalog.Update"

	if err := c.authorize(ctx, s, id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	v, err := c.api.UpdateVenue(ctx, s.Token, id, in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c.Invalidate()

	return v, nil
}

func (c *Catalog) Delete(ctx context.Context, s *session.Session, id string) error {
	const op = "venues.Catalog.Delete"

	if err := c.authorize(ctx, s, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := c.api.DeleteVenue(ctx, s.Token, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	c.Invalidate()

	return nil
}

// authorize requires the manager role and that the venue's owner is the session user.
func (c *Catalog) authorize(ctx context.Context, s *session.Session, id string) error {
	if !s.IsVenueManager() {
		return ErrNotManager
	}

	v, err := c.api.GetVenue(ctx, s.Token, id, noroff.VenueOptions{Owner: true})
	if err != nil {
		if noroff.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	if !v.OwnedBy(s.User.Name) {
		c.log.Warn("venue ownership check failed",
			slog.String("venue", id),
			slog.String("user", s.User.Name),
			sl.Err(ErrNotOwner),
		)
		return ErrNotOwner
	}

	return nil
}
