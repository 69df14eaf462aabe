package domain

import "time"

// Calendar decides which calendar date "today" is
type Calendar struct {
	Clock    Clock
	Location *time.Location
}

// NewCalendar returns a calendar on the wall clock in loc
func NewCalendar(loc *time.Location) Calendar {
	return Calendar{Clock: time.Now, Location: loc}
}

// Now returns the current time in the calendar's location
func (c Calendar) Now() time.Time {
	clock := c.Clock
	if clock == nil {
		clock = time.Now
	}
	now := clock()
	if c.Location != nil {
		now = now.In(c.Location)
	}
	return now
}

// Today returns the current date as YYYY-MM-DD
func (c Calendar) Today() string {
	return FormatDate(c.Now())
}
