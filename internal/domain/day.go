package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DayFormat is the canonical wire representation of a calendar day.
// All dates exchanged with clients use this ISO form, independent of locale.
const DayFormat = "2006-01-02"

// Day is a civil calendar day with no time-of-day or timezone component.
// Arithmetic goes through time.Time so month lengths and leap years are
// handled correctly.
type Day struct {
	t time.Time
}

// ParseDay parses an ISO "YYYY-MM-DD" string into a Day.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Day{t: t}, nil
}

// NewDay constructs a Day from year, month and day numbers.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// AddDays returns the day n calendar days after d (n may be zero or negative).
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// Before reports whether d is strictly before other.
func (d Day) Before(other Day) bool { return d.t.Before(other.t) }

// After reports whether d is strictly after other.
func (d Day) After(other Day) bool { return d.t.After(other.t) }

// Equal reports whether d and other are the same calendar day.
func (d Day) Equal(other Day) bool { return d.t.Equal(other.t) }

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool { return d.t.IsZero() }

// String returns the canonical "YYYY-MM-DD" form.
func (d Day) String() string { return d.t.Format(DayFormat) }

// MarshalJSON encodes the day as its canonical string form.
func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a canonical "YYYY-MM-DD" string.
func (d *Day) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
