// Package booking runs the guest booking flows: the availability view of a venue, price
// quotes, and creating, changing, cancelling and listing the user's own bookings. Every
// write is validated against the venue's existing bookings before it reaches the API.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"holidaze/internal/availability"
	"holidaze/internal/lib/logger/sl"
	"holidaze/internal/models"
	"holidaze/internal/noroff"
	"holidaze/internal/session"

	"golang.org/x/sync/errgroup"
)

var (
	ErrVenueNotFound   = errors.New("venue not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotOwner        = errors.New("booking belongs to another user")
	ErrCancelled       = errors.New("booking is cancelled")
)

// GuestsError rejects a guest count outside 1..Max.
type GuestsError struct {
	Guests int
	Max    int
}

func (e *GuestsError) Error() string {
	if e.Guests < 1 {
		return "at least one guest is required"
	}

	return fmt.Sprintf("this venue allows at most %d guests", e.Max)
}

// FieldOf maps a validation failure to its form field, or "" when err is not one.
func FieldOf(err error) string {
	var guests *GuestsError
	if errors.As(err, &guests) {
		return "guests"
	}

	return availability.FieldOf(err)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=API
type API interface {
	GetVenue(ctx context.Context, token, id string, opts noroff.VenueOptions) (*models.Venue, error)
	ListBookings(ctx context.Context, token string) ([]models.Booking, error)
	BookingsByProfile(ctx context.Context, token, name string) ([]models.Booking, error)
	GetBooking(ctx context.Context, token, id string) (*models.Booking, error)
	CreateBooking(ctx context.Context, token string, in models.BookingInput) (*models.Booking, error)
	UpdateBooking(ctx context.Context, token, id string, in models.BookingInput) (*models.Booking, error)
	DeleteBooking(ctx context.Context, token, id string) error
}

type Service struct {
	api API
	log *slog.Logger
	now func() time.Time
}

func New(api API, log *slog.Logger) *Service {
	return &Service{
		api: api,
		log: log,
		now: time.Now,
	}
}

// excludeHorizon bounds the booked-date list handed to the date pickers.
const excludeHorizon = 2

// venueState is a venue joined with the engine built from its bookings.
type venueState struct {
	venue  *models.Venue
	engine *availability.Engine
	known  bool
}

// load fetches the venue and its bookings concurrently and waits for both. A failed
// bookings fetch is logged and leaves only past dates blocked.
func (s *Service) load(ctx context.Context, token, venueID, excludeID string) (*venueState, error) {
	const op = "booking.load"

	log := s.log.With(
		slog.String("op", op),
		slog.String("venue", venueID),
	)

	var (
		venue    *models.Venue
		bookings []models.Booking
		known    = true
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		v, err := s.api.GetVenue(gctx, token, venueID, noroff.VenueOptions{Owner: true})
		if err != nil {
			if noroff.IsNotFound(err) {
				return ErrVenueNotFound
			}
			return err
		}
		venue = v
		return nil
	})

	g.Go(func() error {
		v, err := s.api.GetVenue(gctx, token, venueID, noroff.VenueOptions{Bookings: true})
		if err != nil {
			if gctx.Err() == nil {
				log.Warn("bookings unavailable, only past dates are blocked", sl.Err(err))
			}
			known = false
			return nil
		}
		bookings = v.Bookings
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var opts []availability.Option
	if excludeID != "" {
		opts = append(opts, availability.Excluding(excludeID))
	}

	return &venueState{
		venue:  venue,
		engine: availability.New(Reservations(bookings), s.now(), opts...),
		known:  known,
	}, nil
}

// Reservations converts the non-cancelled bookings into engine reservations.
func Reservations(bookings []models.Booking) []availability.Reservation {
	out := make([]availability.Reservation, 0, len(bookings))
	for _, b := range bookings {
		if b.Cancelled() {
			continue
		}
		out = append(out, availability.Reservation{
			ID:       b.ID,
			DateFrom: b.DateFrom,
			DateTo:   b.DateTo,
		})
	}

	return out
}

type AvailabilityRequest struct {
	VenueID  string
	Month    availability.Month
	CheckIn  time.Time
	CheckOut time.Time
}

type Availability struct {
	Venue         *models.Venue         `json:"venue"`
	Calendar      availability.Calendar `json:"calendar"`
	BookedDates   []string              `json:"bookedDates"`
	BookingsKnown bool                  `json:"bookingsKnown"`
}

// Availability builds the venue detail view: the month grid with the current selection
// and the booked dates ahead of today.
func (s *Service) Availability(ctx context.Context, token string, req AvailabilityRequest) (*Availability, error) {
	const op = "booking.Service.Availability"

	st, err := s.load(ctx, token, req.VenueID, "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	today := st.engine.Today()

	month := req.Month
	if month.Year == 0 {
		month = availability.MonthOf(today)
	}

	booked := st.engine.BookedDates(today, today.AddDate(excludeHorizon, 0, 0))
	dates := make([]string, 0, len(booked))
	for _, d := range booked {
		dates = append(dates, d.Format(availability.Layout))
	}

	return &Availability{
		Venue: st.venue,
		Calendar: st.engine.Calendar(month, availability.Selection{
			CheckIn:  req.CheckIn,
			CheckOut: req.CheckOut,
		}),
		BookedDates:   dates,
		BookingsKnown: st.known,
	}, nil
}

type QuoteRequest struct {
	VenueID  string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	// ExcludeBookingID leaves the booking being edited out of the blocked dates.
	ExcludeBookingID string
}

type Quote struct {
	VenueID       string  `json:"venueId"`
	CheckIn       string  `json:"checkIn"`
	CheckOut      string  `json:"checkOut"`
	Guests        int     `json:"guests"`
	Nights        int     `json:"nights"`
	NightlyPrice  float64 `json:"nightlyPrice"`
	Total         float64 `json:"total"`
	BookingsKnown bool    `json:"bookingsKnown"`

	stay availability.Stay
}

func (s *Service) Quote(ctx context.Context, token string, req QuoteRequest) (*Quote, error) {
	const op = "booking.Service.Quote"

	st, err := s.load(ctx, token, req.VenueID, req.ExcludeBookingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	q, err := quote(st, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return q, nil
}

func quote(st *venueState, req QuoteRequest) (*Quote, error) {
	if req.Guests < 1 || (st.venue.MaxGuests > 0 && req.Guests > st.venue.MaxGuests) {
		return nil, &GuestsError{Guests: req.Guests, Max: st.venue.MaxGuests}
	}

	stay, err := st.engine.ValidateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	return &Quote{
		VenueID:       st.venue.ID,
		CheckIn:       stay.CheckIn.Format(availability.Layout),
		CheckOut:      stay.CheckOut.Format(availability.Layout),
		Guests:        req.Guests,
		Nights:        stay.Nights,
		NightlyPrice:  st.venue.Price,
		Total:         availability.PriceFor(stay, st.venue.Price),
		BookingsKnown: st.known,
		stay:          stay,
	}, nil
}

// Create validates the stay locally and then books it. A conflicting booking that lands
// between the check and the write is rejected by the API and returned as is.
func (s *Service) Create(ctx context.Context, sess *session.Session, req QuoteRequest) (*models.Booking, *Quote, error) {
	const op = "booking.Service.Create"

	req.ExcludeBookingID = ""

	q, err := s.Quote(ctx, sess.Token, req)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	b, err := s.api.CreateBooking(ctx, sess.Token, input(q))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("booking created",
		slog.String("op", op),
		slog.String("booking", b.ID),
		slog.String("venue", q.VenueID),
	)

	return b, q, nil
}

type UpdateRequest struct {
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

func (s *Service) Update(ctx context.Context, sess *session.Session, bookingID string, req UpdateRequest) (*models.Booking, *Quote, error) {
	const op = "booking.Service.Update"

	existing, err := s.owned(ctx, sess, bookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if existing.Cancelled() {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrCancelled)
	}

	q, err := s.Quote(ctx, sess.Token, QuoteRequest{
		VenueID:          existing.VenueRef(),
		CheckIn:          req.CheckIn,
		CheckOut:         req.CheckOut,
		Guests:           req.Guests,
		ExcludeBookingID: existing.ID,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	in := input(q)
	in.VenueID = ""

	b, err := s.api.UpdateBooking(ctx, sess.Token, bookingID, in)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, q, nil
}

func (s *Service) Cancel(ctx context.Context, sess *session.Session, bookingID string) error {
	const op = "booking.Service.Cancel"

	if _, err := s.owned(ctx, sess, bookingID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.api.DeleteBooking(ctx, sess.Token, bookingID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("booking cancelled", slog.String("op", op), slog.String("booking", bookingID))

	return nil
}

// owned fetches a booking and requires the session user to be its customer.
func (s *Service) owned(ctx context.Context, sess *session.Session, bookingID string) (*models.Booking, error) {
	b, err := s.api.GetBooking(ctx, sess.Token, bookingID)
	if err != nil {
		if noroff.IsNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if b.CustomerDisplayName() != sess.User.Name {
		return nil, ErrNotOwner
	}

	return b, nil
}

func input(q *Quote) models.BookingInput {
	return models.BookingInput{
		DateFrom: q.stay.CheckIn,
		DateTo:   q.stay.CheckOut,
		Guests:   q.Guests,
		VenueID:  q.VenueID,
	}
}

// Entry is one of the user's bookings with its length and cost.
type Entry struct {
	models.Booking
	Nights int     `json:"nights"`
	Total  float64 `json:"total"`
}

// Mine lists the session user's bookings. When the profile endpoint fails it falls back
// to every booking filtered by customer name.
func (s *Service) Mine(ctx context.Context, sess *session.Session) ([]Entry, error) {
	const op = "booking.Service.Mine"

	log := s.log.With(slog.String("op", op))

	bookings, err := s.api.BookingsByProfile(ctx, sess.Token, sess.User.Name)
	if err != nil {
		log.Warn("profile bookings failed, filtering all bookings", sl.Err(err))

		all, ferr := s.api.ListBookings(ctx, sess.Token)
		if ferr != nil {
			return nil, fmt.Errorf("%s: %w", op, errors.Join(err, ferr))
		}

		bookings = nil
		for _, b := range all {
			if b.CustomerDisplayName() == sess.User.Name {
				bookings = append(bookings, b)
			}
		}
	}

	out := make([]Entry, 0, len(bookings))
	for _, b := range bookings {
		e := Entry{Booking: b, Nights: availability.Nights(b.DateFrom, b.DateTo)}
		if b.Venue != nil {
			e.Total = availability.PriceFor(availability.Stay{Nights: e.Nights}, b.Venue.Price)
		}
		out = append(out, e)
	}

	return out, nil
}
