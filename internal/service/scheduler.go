package service

import (
	"fmt"
	"sync"

	"vocabdeck/internal/domain"
)

// ReviewOutcome is the new schedule of a reviewed word
type ReviewOutcome struct {
	Interval int
	DueDate  string
}

// The policy is fixed: the previous interval is never consulted.
var ratingIntervals = map[domain.Rating]int{
	domain.RatingAgain: 0,
	domain.RatingGood:  1,
	domain.RatingEasy:  2,
}

// Schedule maps a rating given on today to the next interval and due date
func Schedule(rating domain.Rating, today string) (ReviewOutcome, error) {
	interval, ok := ratingIntervals[rating]
	if !ok {
		return ReviewOutcome{}, fmt.Errorf("unknown rating %q", rating)
	}
	due, err := domain.AddDays(today, interval)
	if err != nil {
		return ReviewOutcome{}, fmt.Errorf("invalid date %q: %w", today, err)
	}
	return ReviewOutcome{Interval: interval, DueDate: due}, nil
}

// ReviewSession is the fixed list of words due when the session started.
// It is not re-filtered if words change or the date rolls over. Safe for
// concurrent use.
type ReviewSession struct {
	mu  sync.Mutex
	ids []string
	pos int
}

// NewReviewSession snapshots the ids of words
func NewReviewSession(words []domain.Word) *ReviewSession {
	ids := make([]string, 0, len(words))
	for _, w := range words {
		ids = append(ids, w.ID)
	}
	return &ReviewSession{ids: ids}
}

// Current returns the id under review, false when the session is over
func (s *ReviewSession) Current() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

func (s *ReviewSession) currentLocked() (string, bool) {
	if s.pos >= len(s.ids) {
		return "", false
	}
	return s.ids[s.pos], true
}

// Advance moves to the next word
func (s *ReviewSession) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos < len(s.ids) {
		s.pos++
	}
}

// AdvanceFrom moves past id only if it is still the current word.
// A second call with the same id reports false.
func (s *ReviewSession) AdvanceFrom(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.currentLocked()
	if !ok || current != id {
		return false
	}
	s.pos++
	return true
}

// Progress returns how many words were reviewed and the session size
func (s *ReviewSession) Progress() (done, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos, len(s.ids)
}
