package kernel

import (
	"fmt"
	"time"

	"freight/internal/pkg/errs"
)

// DateLayout is the textual form of a calendar date.
const DateLayout = time.DateOnly

// Date is a calendar day without time-of-day. It compares as an integer yyyymmdd.
type Date struct {
	year  int
	month time.Month
	day   int
}

// DateOf strips the time-of-day from t, keeping the calendar day of t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate parses a date in DateLayout.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date is invalid", fmt.Errorf("%q: %w", s, err))
	}
	return DateOf(t), nil
}

// Compare returns -1, 0 or +1 when d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	a, b := d.ordinal(), other.ordinal()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Between reports whether d lies within [from, to], both ends inclusive.
func (d Date) Between(from, to Date) bool {
	return d.Compare(from) >= 0 && d.Compare(to) <= 0
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d Date) ordinal() int {
	return d.year*10000 + int(d.month)*100 + d.day
}
