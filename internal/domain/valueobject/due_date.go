package valueobject

import (
	"errors"
	"strings"
	"time"
)

const dueDateLayout = "2006-01-02"

// ErrInvalidDate is returned when a due date cannot be parsed
var ErrInvalidDate = errors.New("invalid date")

// DueDate is a calendar date without a time of day. The zero value means "no due date".
type DueDate struct {
	year  int
	month time.Month
	day   int
}

// NewDueDate creates a DueDate from its components
func NewDueDate(year int, month time.Month, day int) DueDate {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return DueDate{year: t.Year(), month: t.Month(), day: t.Day()}
}

// ParseDueDate accepts "YYYY-MM-DD" or a full timestamp, of which only the
// date part before 'T' is kept. An empty string yields the zero DueDate.
func ParseDueDate(s string) (DueDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DueDate{}, nil
	}
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	t, err := time.Parse(dueDateLayout, s)
	if err != nil {
		return DueDate{}, ErrInvalidDate
	}
	return DueDate{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

// IsZero reports whether no date is set
func (d DueDate) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

// Time returns midnight UTC of the date
func (d DueDate) Time() time.Time {
	if d.IsZero() {
		return time.Time{}
	}
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// String returns "YYYY-MM-DD", or "" when unset
func (d DueDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(dueDateLayout)
}

// IsPast reports whether the date lies strictly before the day of now
func (d DueDate) IsPast(now time.Time) bool {
	if d.IsZero() {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return d.Time().Before(today)
}

// MarshalText implements encoding.TextMarshaler
func (d DueDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *DueDate) UnmarshalText(text []byte) error {
	parsed, err := ParseDueDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
