package domain

import "time"

// DateLayout is the calendar date format used for due dates and daily keys
const DateLayout = "2006-01-02"

// FormatDate renders t as YYYY-MM-DD in t's location
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// AddDays shifts a YYYY-MM-DD date by n calendar days
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// IsDue reports whether a word with dueDate is eligible for review on today.
// Both values are YYYY-MM-DD so string order equals date order.
func IsDue(dueDate, today string) bool {
	return dueDate <= today
}

// Clock returns the current time. Services take one so tests can pin the date.
type Clock func() time.Time

// Today returns the calendar date of now in loc
func Today(now time.Time, loc *time.Location) string {
	if loc != nil {
		now = now.In(loc)
	}
	return FormatDate(now)
}
