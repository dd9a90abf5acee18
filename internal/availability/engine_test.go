package availability

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := ParseDate(s)
	require.NoError(t, err)

	return d
}

func reservation(t *testing.T, id, from, to string) Reservation {
	t.Helper()

	return Reservation{ID: id, DateFrom: date(t, from), DateTo: date(t, to)}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "Civil date", input: "2024-02-15", want: "2024-02-15"},
		{name: "API timestamp", input: "2024-02-15T00:00:00.000Z", want: "2024-02-15"},
		{name: "Offset timestamp uses UTC date", input: "2024-02-15T23:30:00-02:00", want: "2024-02-16"},
		{name: "Garbage", input: "15/02/2024", wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDate(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Format(Layout))
		})
	}
}

func TestExpand(t *testing.T) {
	t.Parallel()

	rs := []Reservation{
		reservation(t, "a", "2024-02-15", "2024-02-17"),
		reservation(t, "b", "2024-02-17", "2024-02-18"),
	}

	blocked := Expand(rs)

	assert.Len(t, blocked, 4)
	for _, d := range []string{"2024-02-15", "2024-02-16", "2024-02-17", "2024-02-18"} {
		assert.True(t, blocked.Has(date(t, d)), d)
	}
	assert.False(t, blocked.Has(date(t, "2024-02-14")))
	assert.False(t, blocked.Has(date(t, "2024-02-19")))

	assert.Equal(t, blocked, Expand(rs), "expand must be idempotent")
}

func TestExpandEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Expand(nil))
}

func TestBlockedDatesProperty(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	today := date(t, "2024-01-10")
	base := date(t, "2024-01-01")

	var rs []Reservation
	for i := 0; i < 25; i++ {
		from := base.AddDate(0, 0, rng.Intn(90))
		rs = append(rs, Reservation{DateFrom: from, DateTo: from.AddDate(0, 0, 1+rng.Intn(6))})
	}

	e := New(rs, today)

	inSomeBooking := func(d time.Time) bool {
		for _, r := range rs {
			if !d.Before(r.DateFrom) && !d.After(r.DateTo) {
				return true
			}
		}
		return false
	}

	for d := base; d.Before(base.AddDate(0, 0, 110)); d = d.AddDate(0, 0, 1) {
		want := inSomeBooking(d) || d.Before(today)
		assert.Equal(t, want, e.IsBlocked(d), d.Format(Layout))
		assert.Equal(t, !want, e.IsSelectable(d), d.Format(Layout))
	}

	for i := 0; i < 200; i++ {
		in := base.AddDate(0, 0, rng.Intn(100))
		out := in.AddDate(0, 0, rng.Intn(10)-2)

		_, err := e.ValidateRange(in, out)

		if !out.After(in) {
			assert.ErrorIs(t, err, ErrInvalidRange)
			continue
		}

		intersects := false
		for d := in; !d.After(out); d = d.AddDate(0, 0, 1) {
			if e.IsBlocked(d) {
				intersects = true
				break
			}
		}

		var blocked *DateBlockedError
		assert.Equal(t, intersects, errors.As(err, &blocked), "%s..%s", in.Format(Layout), out.Format(Layout))
		if !intersects {
			assert.NoError(t, err)
		}
	}
}

func TestValidateRangeScenarios(t *testing.T) {
	t.Parallel()

	today := date(t, "2024-01-01")

	testCases := []struct {
		name       string
		bookings   []Reservation
		today      time.Time
		checkIn    string
		checkOut   string
		wantNights int
		wantErr    error
		wantDate   string
		wantPast   bool
		wantField  string
	}{
		{
			name:      "Overlapping an existing booking",
			bookings:  []Reservation{reservation(t, "1", "2024-02-15", "2024-02-20")},
			today:     today,
			checkIn:   "2024-02-18",
			checkOut:  "2024-02-22",
			wantDate:  "2024-02-18",
			wantField: "checkIn",
		},
		{
			name:       "Free calendar",
			today:      today,
			checkIn:    "2024-01-02",
			checkOut:   "2024-01-04",
			wantNights: 2,
		},
		{
			name:      "Check-in yesterday",
			today:     today,
			checkIn:   "2023-12-31",
			checkOut:  "2024-01-03",
			wantDate:  "2023-12-31",
			wantPast:  true,
			wantField: "checkIn",
		},
		{
			name:      "Same-day turnover is blocked",
			bookings:  []Reservation{reservation(t, "1", "2024-03-01", "2024-03-05")},
			today:     today,
			checkIn:   "2024-03-05",
			checkOut:  "2024-03-08",
			wantDate:  "2024-03-05",
			wantField: "checkIn",
		},
		{
			name:      "Check-out on an existing check-in",
			bookings:  []Reservation{reservation(t, "1", "2024-03-10", "2024-03-12")},
			today:     today,
			checkIn:   "2024-03-07",
			checkOut:  "2024-03-10",
			wantDate:  "2024-03-10",
			wantField: "checkOut",
		},
		{
			name:      "Range swallowing a booking",
			bookings:  []Reservation{reservation(t, "1", "2024-03-10", "2024-03-11")},
			today:     today,
			checkIn:   "2024-03-08",
			checkOut:  "2024-03-14",
			wantDate:  "2024-03-10",
			wantField: "dates",
		},
		{
			name:     "Check-out equals check-in",
			today:    today,
			checkIn:  "2024-03-08",
			checkOut: "2024-03-08",
			wantErr:  ErrInvalidRange,
		},
		{
			name:     "Check-out before check-in in the past",
			today:    today,
			checkIn:  "2023-03-08",
			checkOut: "2023-03-01",
			wantErr:  ErrInvalidRange,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			e := New(tc.bookings, tc.today)

			stay, err := e.ValidateRange(date(t, tc.checkIn), date(t, tc.checkOut))

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, "checkOut", FieldOf(err))
			case tc.wantDate != "":
				var blocked *DateBlockedError
				require.ErrorAs(t, err, &blocked)
				assert.Equal(t, tc.wantDate, blocked.Date.Format(Layout))
				assert.Equal(t, tc.wantPast, blocked.Past)
				assert.Equal(t, tc.wantField, FieldOf(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.wantNights, stay.Nights)
			}
		})
	}
}

func TestValidateRangeRelativeToToday(t *testing.T) {
	t.Parallel()

	today := time.Now()
	e := New(nil, today)

	stay, err := e.ValidateRange(today.AddDate(0, 0, 1), today.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, 2, stay.Nights)

	_, err = e.ValidateRange(today.AddDate(0, 0, -1), today.AddDate(0, 0, 3))
	var blocked *DateBlockedError
	require.ErrorAs(t, err, &blocked)
	assert.True(t, blocked.Past)
}

func TestExcludingOwnBooking(t *testing.T) {
	t.Parallel()

	rs := []Reservation{
		reservation(t, "mine", "2024-04-10", "2024-04-12"),
		reservation(t, "theirs", "2024-04-20", "2024-04-22"),
	}
	today := date(t, "2024-04-01")

	_, err := New(rs, today).ValidateRange(date(t, "2024-04-11"), date(t, "2024-04-14"))
	assert.Error(t, err)

	stay, err := New(rs, today, Excluding("mine")).ValidateRange(date(t, "2024-04-11"), date(t, "2024-04-14"))
	require.NoError(t, err)
	assert.Equal(t, 3, stay.Nights)

	_, err = New(rs, today, Excluding("mine")).ValidateRange(date(t, "2024-04-18"), date(t, "2024-04-21"))
	assert.Error(t, err)
}

func TestPriceFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2250.0, PriceFor(Stay{Nights: 5}, 450))
	assert.Equal(t, 0.0, PriceFor(Stay{Nights: 3}, 0))
	assert.Equal(t, 0.0, PriceFor(Stay{Nights: 3}, -10))
}

func TestNights(t *testing.T) {
	t.Parallel()

	in := time.Date(2024, 2, 27, 15, 0, 0, 0, time.UTC)
	out := time.Date(2024, 3, 2, 11, 0, 0, 0, time.UTC)

	assert.Equal(t, 4, Nights(in, out))
}

func TestNightsAcrossCenturies(t *testing.T) {
	t.Parallel()

	in := date(t, "2024-01-01")
	out := date(t, "9999-12-31")

	assert.Equal(t, 2_913_173, Nights(in, out))
}

func TestValidateRangeStayLength(t *testing.T) {
	t.Parallel()

	e := New(nil, date(t, "2024-01-01"))

	stay, err := e.ValidateRange(date(t, "2024-01-01"), date(t, "2024-12-31"))
	require.NoError(t, err)
	assert.Equal(t, MaxNights, stay.Nights)

	_, err = e.ValidateRange(date(t, "2024-01-01"), date(t, "2025-01-01"))
	assert.ErrorIs(t, err, ErrStayTooLong)
	assert.Equal(t, "checkOut", FieldOf(err))

	start := time.Now()
	_, err = e.ValidateRange(date(t, "2024-01-01"), date(t, "9999-12-31"))
	assert.ErrorIs(t, err, ErrStayTooLong)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestBookedDates(t *testing.T) {
	t.Parallel()

	rs := []Reservation{
		reservation(t, "1", "2024-01-30", "2024-02-02"),
		reservation(t, "2", "2024-02-27", "2024-03-02"),
	}
	e := New(rs, date(t, "2024-02-01"))

	var got []string
	for _, d := range e.BookedDates(date(t, "2024-02-01"), date(t, "2024-02-29")) {
		got = append(got, d.Format(Layout))
	}

	assert.Equal(t, []string{"2024-02-01", "2024-02-02", "2024-02-27", "2024-02-28", "2024-02-29"}, got)
}

func TestDateBlockedErrorMessage(t *testing.T) {
	t.Parallel()

	d := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-02-15 is already booked", (&DateBlockedError{Date: d}).Error())
	assert.Equal(t, "2024-02-15 is in the past", (&DateBlockedError{Date: d, Past: true}).Error())
	assert.Equal(t, "", FieldOf(errors.New("other")))
}
