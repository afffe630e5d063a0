package types

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for window boundaries.
const DateLayout = "2006-01-02"

// MaxWindowDays caps a window's span. Together with the same-month
// check in Validate it guarantees a calendar month number appears at
// most once inside a window, which keeps month alignment unambiguous.
const MaxWindowDays = 366

// TimeWindow is an inclusive [Start, End] date range. Records are
// assigned to a window by their started timestamp.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// NewWindow builds a window from two dates, validating ordering and the
// span constraints.
func NewWindow(start, end time.Time) (TimeWindow, error) {
	start = truncateDay(start)
	end = truncateDay(end)
	if end.Before(start) {
		return TimeWindow{}, fmt.Errorf("window end %s before start %s: %w",
			end.Format(DateLayout), start.Format(DateLayout), ErrInvalidWindow)
	}
	w := TimeWindow{Start: start, End: end}
	if err := w.Validate(); err != nil {
		return TimeWindow{}, err
	}
	return w, nil
}

// Validate checks the span constraints that keep month alignment
// unambiguous: at most MaxWindowDays, and the window must not start
// and end in the same calendar month of different years. A 366-day
// window such as Jan 1 to Jan 1 contains its month number twice, so
// the day cap alone is not enough; a full leap year (Jan 1 to Dec 31)
// stays valid.
func (w TimeWindow) Validate() error {
	if w.Days() > MaxWindowDays {
		return fmt.Errorf("window spans %d days (max %d): %w",
			w.Days(), MaxWindowDays, ErrWindowTooLong)
	}
	if w.Start.Year() != w.End.Year() && w.Start.Month() == w.End.Month() {
		return fmt.Errorf("window %s contains calendar month %s twice: %w",
			w, w.Start.Month(), ErrWindowTooLong)
	}
	return nil
}

// ParseWindow builds a window from YYYY-MM-DD strings.
func ParseWindow(start, end string) (TimeWindow, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("invalid start date %q: %w", start, ErrInvalidWindow)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("invalid end date %q: %w", end, ErrInvalidWindow)
	}
	return NewWindow(s, e)
}

// Contains reports whether t falls inside the window. Both boundary
// days are included in full.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End.AddDate(0, 0, 1))
}

// PriorYear returns the window shifted exactly one calendar year back,
// preserving day-of-month boundaries.
func (w TimeWindow) PriorYear() TimeWindow {
	return TimeWindow{
		Start: w.Start.AddDate(-1, 0, 0),
		End:   w.End.AddDate(-1, 0, 0),
	}
}

// Days returns the number of calendar days covered, counting both ends.
func (w TimeWindow) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

func (w TimeWindow) String() string {
	return w.Start.Format(DateLayout) + " to " + w.End.Format(DateLayout)
}

// Span returns the serializable form of the window.
func (w TimeWindow) Span() WindowSpan {
	return WindowSpan{
		Start: w.Start.Format(DateLayout),
		End:   w.End.Format(DateLayout),
	}
}

// WindowSpan is the wire representation of a TimeWindow.
type WindowSpan struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
