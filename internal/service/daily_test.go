package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"vocabdeck/internal/domain"
	"vocabdeck/internal/repository"
	"vocabdeck/internal/repository/memory"
	"vocabdeck/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDailyFeed_OneCallPerDate(t *testing.T) {
	store := memory.New()
	gw := new(testutil.MockGateway)
	gw.On("DailySlang", mock.Anything, []string{}).
		Return(domain.DailyWord{Slang: "no cap"}, nil).Once()
	feed := NewDailyWordFeed(store, gw, testutil.FixedCalendar(testToday), testutil.NewTestLogger())
	require.NoError(t, feed.Load())

	first, err := feed.CheckAndFetch(testContext())
	require.NoError(t, err)
	second, err := feed.CheckAndFetch(testContext())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, testToday, first.Date)
	gw.AssertNumberOfCalls(t, "DailySlang", 1)

	current, ok := feed.Current()
	assert.True(t, ok)
	assert.Equal(t, first, current)
}

func TestDailyFeed_UsesStoredEntry(t *testing.T) {
	history := []domain.DailyQuote{{Date: testToday, Quote: "Stay hungry", Author: "Steve Jobs"}}
	data, _ := json.Marshal(history)
	store := memory.NewWith(map[string]string{repository.KeyDailyQuote: string(data)})
	gw := new(testutil.MockGateway)
	feed := NewDailyQuoteFeed(store, gw, testutil.FixedCalendar(testToday), testutil.NewTestLogger())
	require.NoError(t, feed.Load())

	q, err := feed.CheckAndFetch(testContext())

	require.NoError(t, err)
	assert.Equal(t, "Steve Jobs", q.Author)
	gw.AssertNotCalled(t, "DailyQuote", mock.Anything, mock.Anything)
}

func TestDailyFeed_NewDayPrependsAndExcludes(t *testing.T) {
	cal := testutil.NewMovableCalendar("2024-03-09")
	store := memory.New()
	gw := new(testutil.MockGateway)
	gw.On("DailyGrammar", mock.Anything, []string{}).
		Return(domain.DailyGrammar{Topic: "Passive Voice"}, nil).Once()
	gw.On("DailyGrammar", mock.Anything, []string{"Passive Voice"}).
		Return(domain.DailyGrammar{Topic: "Conditionals"}, nil).Once()
	feed := NewDailyGrammarFeed(store, gw, cal.Calendar(), testutil.NewTestLogger())
	require.NoError(t, feed.Load())

	_, err := feed.CheckAndFetch(testContext())
	require.NoError(t, err)
	cal.AdvanceDays(1)
	g, err := feed.CheckAndFetch(testContext())
	require.NoError(t, err)

	assert.Equal(t, "Conditionals", g.Topic)
	history := feed.History()
	require.Len(t, history, 2)
	assert.Equal(t, "2024-03-10", history[0].Date)
	assert.Equal(t, "2024-03-09", history[1].Date)

	var stored []domain.DailyGrammar
	raw, _, _ := store.Get(repository.KeyDailyGrammar)
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, history, stored)
	gw.AssertExpectations(t)
}

func TestDailyFeed_FailureLeavesHistory(t *testing.T) {
	store := memory.New()
	gw := new(testutil.MockGateway)
	gw.On("DailySlang", mock.Anything, mock.Anything).Return(domain.DailyWord{}, errors.New("quota"))
	feed := NewDailyWordFeed(store, gw, testutil.FixedCalendar(testToday), testutil.NewTestLogger())
	require.NoError(t, feed.Load())

	_, err := feed.CheckAndFetch(testContext())

	assert.Error(t, err)
	assert.Equal(t, err, feed.LastError())
	assert.Empty(t, feed.History())
	_, ok := feed.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, store.Writes())
}

func TestDailyFeed_ConcurrentCallsShareGeneration(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	gen := func(ctx context.Context, exclude []string) (domain.DailyWord, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return domain.DailyWord{Slang: "rizz"}, nil
	}
	store := memory.New()
	feed := NewDailyFeed[domain.DailyWord]("test", repository.KeyDailyWord, store,
		testutil.FixedCalendar(testToday), gen,
		func(e domain.DailyWord, date string) domain.DailyWord { e.Date = date; return e },
		testutil.NewTestLogger())

	var wg sync.WaitGroup
	results := make([]domain.DailyWord, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w, err := feed.CheckAndFetch(testContext())
			assert.NoError(t, err)
			results[i] = w
		}(i)
	}
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Len(t, feed.History(), 1)
	for _, r := range results {
		assert.Equal(t, "rizz", r.Slang)
	}
}

func TestDailyFeed_UnreadableHistoryStartsEmpty(t *testing.T) {
	store := memory.NewWith(map[string]string{repository.KeyDailyWord: "garbage"})
	feed := NewDailyWordFeed(store, new(testutil.MockGateway), testutil.FixedCalendar(testToday), testutil.NewTestLogger())

	require.NoError(t, feed.Load())

	assert.Empty(t, feed.History())
}
