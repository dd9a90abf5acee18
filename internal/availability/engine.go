// Package availability decides which calendar dates of a venue can still be booked
// and validates candidate check-in/check-out ranges against existing reservations.
//
// Dates are civil dates in UTC. Reservation endpoints are inclusive: the checkout day of
// an existing booking is blocked for a new check-in on the same day.
package availability

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// Layout is the wire format of a civil date.
const Layout = "2006-01-02"

// MaxNights bounds a single stay.
const MaxNights = 365

var (
	ErrInvalidRange = errors.New("check-out date must be after check-in date")
	ErrStayTooLong  = fmt.Errorf("a stay can be at most %d nights", MaxNights)
)

// DateBlockedError reports the first unavailable date of a candidate range.
type DateBlockedError struct {
	Date  time.Time
	Past  bool
	Field string
}

func (e *DateBlockedError) Error() string {
	if e.Past {
		return fmt.Sprintf("%s is in the past", e.Date.Format(Layout))
	}

	return fmt.Sprintf("%s is already booked", e.Date.Format(Layout))
}

// Reservation is an existing stay occupying [DateFrom, DateTo].
type Reservation struct {
	ID       string
	DateFrom time.Time
	DateTo   time.Time
}

// Stay is a validated candidate range.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
	Nights   int
}

// Day truncates t to its UTC calendar date.
func Day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp, which is truncated to its UTC date.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(Layout, s); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}

	return Day(t), nil
}

const secondsPerDay = 24 * 60 * 60

// Nights is ceil((checkOut - checkIn) / 1 day). Both ends are civil dates, so the
// division is exact.
func Nights(checkIn, checkOut time.Time) int {
	return int((Day(checkOut).Unix() - Day(checkIn).Unix()) / secondsPerDay)
}

// Set holds blocked dates keyed by Layout.
type Set map[string]struct{}

// Expand marks every date d with DateFrom <= d <= DateTo of every reservation.
// Overlapping reservations collapse into one set.
func Expand(rs []Reservation) Set {
	blocked := make(Set)

	for _, r := range rs {
		to := Day(r.DateTo)
		for d := Day(r.DateFrom); !d.After(to); d = d.AddDate(0, 0, 1) {
			blocked[d.Format(Layout)] = struct{}{}
		}
	}

	return blocked
}

func (s Set) Has(d time.Time) bool {
	_, ok := s[Day(d).Format(Layout)]
	return ok
}

// Dates returns the set in ascending order.
func (s Set) Dates() []time.Time {
	out := make([]time.Time, 0, len(s))
	for k := range s {
		d, _ := time.Parse(Layout, k)
		out = append(out, d)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })

	return out
}

type options struct {
	exclude string
}

type Option func(*options)

// Excluding leaves out the reservation with the given id, so a guest editing a booking
// does not collide with the dates it already holds.
func Excluding(id string) Option {
	return func(o *options) {
		o.exclude = id
	}
}

type Engine struct {
	blocked Set
	today   time.Time
}

func New(rs []Reservation, today time.Time, opts ...Option) *Engine {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.exclude != "" {
		kept := make([]Reservation, 0, len(rs))
		for _, r := range rs {
			if r.ID != o.exclude {
				kept = append(kept, r)
			}
		}
		rs = kept
	}

	return &Engine{
		blocked: Expand(rs),
		today:   Day(today),
	}
}

func (e *Engine) Today() time.Time {
	return e.today
}

func (e *Engine) IsPast(d time.Time) bool {
	return Day(d).Before(e.today)
}

func (e *Engine) IsBooked(d time.Time) bool {
	return e.blocked.Has(d)
}

// IsBlocked is true for booked dates and for every date before today.
func (e *Engine) IsBlocked(d time.Time) bool {
	return e.IsPast(d) || e.IsBooked(d)
}

func (e *Engine) IsSelectable(d time.Time) bool {
	return !e.IsBlocked(d)
}

// BookedDates lists booked dates within [from, to] that are not already past.
func (e *Engine) BookedDates(from, to time.Time) []time.Time {
	var out []time.Time

	for _, d := range e.blocked.Dates() {
		if d.Before(Day(from)) || d.After(Day(to)) || e.IsPast(d) {
			continue
		}
		out = append(out, d)
	}

	return out
}

// ValidateRange checks [checkIn, checkOut] against the blocked dates.
func (e *Engine) ValidateRange(checkIn, checkOut time.Time) (Stay, error) {
	in, out := Day(checkIn), Day(checkOut)

	if !out.After(in) {
		return Stay{}, ErrInvalidRange
	}

	nights := Nights(in, out)
	if nights > MaxNights {
		return Stay{}, ErrStayTooLong
	}

	for d := in; !d.After(out); d = d.AddDate(0, 0, 1) {
		if !e.IsBlocked(d) {
			continue
		}

		field := "dates"
		switch {
		case d.Equal(in):
			field = "checkIn"
		case d.Equal(out):
			field = "checkOut"
		}

		return Stay{}, &DateBlockedError{Date: d, Past: e.IsPast(d), Field: field}
	}

	return Stay{CheckIn: in, CheckOut: out, Nights: nights}, nil
}

// PriceFor is nightlyPrice times the nights of a validated stay.
func PriceFor(stay Stay, nightlyPrice float64) float64 {
	return math.Max(0, nightlyPrice*float64(stay.Nights))
}

// FieldOf maps a validation failure to the form control it belongs to.
func FieldOf(err error) string {
	var blocked *DateBlockedError

	switch {
	case errors.Is(err, ErrInvalidRange), errors.Is(err, ErrStayTooLong):
		return "checkOut"
	case errors.As(err, &blocked):
		return blocked.Field
	default:
		return ""
	}
}
