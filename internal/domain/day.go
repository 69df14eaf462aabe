package domain

import (
	"fmt"
	"time"
)

// Day is one calendar day of the activity log with its review count
type Day struct {
	Date        time.Time
	ReviewCount int
}

// DateString returns date in YYYY-MM-DD format
func (d Day) DateString() string {
	return d.Date.Format(DateLayout)
}

// DisplayString returns a learner-friendly label relative to now
func (d Day) DisplayString(now time.Time) string {
	date := d.Date

	if sameDay(date, now) {
		return "今天"
	}

	if sameDay(date, now.AddDate(0, 0, -1)) {
		return "昨天"
	}

	if date.Year() == now.Year() {
		return fmt.Sprintf("%d月%d日", int(date.Month()), date.Day())
	}
	return fmt.Sprintf("%d年%d月%d日", date.Year(), int(date.Month()), date.Day())
}

// Bar renders the review count as a short heat bar
func (d Day) Bar() string {
	switch {
	case d.ReviewCount == 0:
		return "⬜"
	case d.ReviewCount < 5:
		return "🟩"
	case d.ReviewCount < 15:
		return "🟩🟩"
	default:
		return "🟩🟩🟩"
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
