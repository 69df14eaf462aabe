package service

import (
	"sync"
	"sync/atomic"
	"testing"

	"vocabdeck/internal/domain"
	"vocabdeck/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule(t *testing.T) {
	tests := []struct {
		name     string
		rating   domain.Rating
		today    string
		expected ReviewOutcome
		wantErr  bool
	}{
		{name: "again stays today", rating: domain.RatingAgain, today: "2024-03-10", expected: ReviewOutcome{Interval: 0, DueDate: "2024-03-10"}},
		{name: "good is tomorrow", rating: domain.RatingGood, today: "2024-03-10", expected: ReviewOutcome{Interval: 1, DueDate: "2024-03-11"}},
		{name: "easy is two days", rating: domain.RatingEasy, today: "2024-03-10", expected: ReviewOutcome{Interval: 2, DueDate: "2024-03-12"}},
		{name: "easy crosses month", rating: domain.RatingEasy, today: "2024-02-28", expected: ReviewOutcome{Interval: 2, DueDate: "2024-03-01"}},
		{name: "good crosses year", rating: domain.RatingGood, today: "2023-12-31", expected: ReviewOutcome{Interval: 1, DueDate: "2024-01-01"}},
		{name: "unknown rating", rating: "hard", today: "2024-03-10", wantErr: true},
		{name: "bad date", rating: domain.RatingGood, today: "10/03/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := Schedule(tt.rating, tt.today)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, outcome)
		})
	}
}

func TestSchedule_IgnoresHistory(t *testing.T) {
	first, err := Schedule(domain.RatingEasy, "2024-03-10")
	require.NoError(t, err)
	second, err := Schedule(domain.RatingEasy, first.DueDate)
	require.NoError(t, err)

	assert.Equal(t, 2, second.Interval)
	assert.Equal(t, "2024-03-14", second.DueDate)
}

func TestReviewSession_IsSnapshot(t *testing.T) {
	store := storeWith(t,
		testutil.NewTestWord("a", "audit", testToday, 0),
		testutil.NewTestWord("b", "agenda", testToday, 0),
		testutil.NewTestWord("c", "budget", "2024-03-11", 1),
	)
	s := newTestVocabulary(t, store, nil)

	session := s.StartReview()
	_, total := session.Progress()
	require.Equal(t, 2, total)

	first, ok := session.Current()
	require.True(t, ok)
	_, _, err := s.RecordReview(first, domain.RatingGood)
	require.NoError(t, err)
	_, err = s.Add(testutil.NewTestStub("invoice"))
	require.NoError(t, err)
	session.Advance()

	second, ok := session.Current()
	require.True(t, ok)
	assert.NotEqual(t, first, second)

	session.Advance()
	_, ok = session.Current()
	assert.False(t, ok)
	done, total := session.Progress()
	assert.Equal(t, 2, done)
	assert.Equal(t, 2, total)
}

func TestReviewSession_AdvanceFromOnce(t *testing.T) {
	session := NewReviewSession([]domain.Word{
		testutil.NewTestWord("a", "audit", testToday, 0),
		testutil.NewTestWord("b", "agenda", testToday, 0),
	})

	var advanced atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if session.AdvanceFrom("a") {
				advanced.Add(1)
			}
			session.Current()
			session.Progress()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), advanced.Load())
	current, ok := session.Current()
	require.True(t, ok)
	assert.Equal(t, "b", current)

	assert.False(t, session.AdvanceFrom("a"))
	assert.True(t, session.AdvanceFrom("b"))
	assert.False(t, session.AdvanceFrom("b"))
}
