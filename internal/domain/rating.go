package domain

import (
	"fmt"
	"strings"
)

// Rating is the learner's answer to a review card
type Rating string

const (
	RatingAgain Rating = "again"
	RatingGood  Rating = "good"
	RatingEasy  Rating = "easy"
)

// ParseRating accepts again, good or easy in any case
func ParseRating(s string) (Rating, error) {
	switch r := Rating(strings.ToLower(strings.TrimSpace(s))); r {
	case RatingAgain, RatingGood, RatingEasy:
		return r, nil
	default:
		return "", fmt.Errorf("unknown rating %q", s)
	}
}

// Label returns the button text shown for the rating
func (r Rating) Label() string {
	switch r {
	case RatingAgain:
		return "🔁 再一次"
	case RatingGood:
		return "👍 記得"
	case RatingEasy:
		return "😎 簡單"
	default:
		return string(r)
	}
}
