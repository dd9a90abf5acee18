package availability

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

// Month is a calendar month. Navigation has no lower or upper bound.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	d := Day(t)
	return Month{Year: d.Year(), Month: d.Month()}
}

// ParseMonth accepts YYYY-MM.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q", s)
	}

	return MonthOf(t), nil
}

func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) Days() int {
	return m.First().AddDate(0, 1, -1).Day()
}

func (m Month) Previous() Month {
	return MonthOf(m.First().AddDate(0, -1, 0))
}

func (m Month) Next() Month {
	return MonthOf(m.First().AddDate(0, 1, 0))
}

func (m Month) String() string {
	return m.First().Format(monthLayout)
}

func (m Month) Title() string {
	return m.First().Format("January 2006")
}

type CellStatus string

const (
	CellEmpty     CellStatus = "empty"
	CellPast      CellStatus = "past"
	CellBooked    CellStatus = "booked"
	CellCheckIn   CellStatus = "selected-checkin"
	CellCheckOut  CellStatus = "selected-checkout"
	CellInRange   CellStatus = "selected-range"
	CellAvailable CellStatus = "available"
)

var Weekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type Cell struct {
	Date   string     `json:"date,omitempty"`
	Day    int        `json:"day,omitempty"`
	Status CellStatus `json:"status"`
}

func (c Cell) Selectable() bool {
	switch c.Status {
	case CellEmpty, CellPast, CellBooked:
		return false
	default:
		return true
	}
}

// Selection is the range under construction. Zero times mean "not picked yet".
type Selection struct {
	CheckIn  time.Time
	CheckOut time.Time
}

type Calendar struct {
	Month    string    `json:"month"`
	Title    string    `json:"title"`
	Previous string    `json:"previous"`
	Next     string    `json:"next"`
	Weekdays [7]string `json:"weekdays"`
	Cells    []Cell    `json:"cells"`
}

// Calendar lays out m as a Sunday-first grid. Leading cells are padded up to the weekday of
// the first; the grid ends on the last day of the month.
func (e *Engine) Calendar(m Month, sel Selection) Calendar {
	first := m.First()
	offset := int(first.Weekday())

	cells := make([]Cell, 0, offset+m.Days())
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{Status: CellEmpty})
	}

	for day := 1; day <= m.Days(); day++ {
		d := first.AddDate(0, 0, day-1)
		cells = append(cells, Cell{
			Date:   d.Format(Layout),
			Day:    day,
			Status: e.status(d, sel),
		})
	}

	return Calendar{
		Month:    m.String(),
		Title:    m.Title(),
		Previous: m.Previous().String(),
		Next:     m.Next().String(),
		Weekdays: Weekdays,
		Cells:    cells,
	}
}

func (e *Engine) status(d time.Time, sel Selection) CellStatus {
	in, out := sel.CheckIn, sel.CheckOut
	if !in.IsZero() {
		in = Day(in)
	}
	if !out.IsZero() {
		out = Day(out)
	}

	switch {
	case e.IsPast(d):
		return CellPast
	case e.IsBooked(d):
		return CellBooked
	case !in.IsZero() && d.Equal(in):
		return CellCheckIn
	case !out.IsZero() && d.Equal(out):
		return CellCheckOut
	case !in.IsZero() && !out.IsZero() && d.After(in) && d.Before(out):
		return CellInRange
	default:
		return CellAvailable
	}
}
