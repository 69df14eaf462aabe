package service

import (
	"context"
	"encoding/json"
	"sync"

	"vocabdeck/internal/domain"
	"vocabdeck/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Generator produces a new entry avoiding the given repeat keys
type Generator[T any] func(ctx context.Context, exclude []string) (T, error)

// DailyFeed keeps a history of generated entries with at most one per date.
// Concurrent CheckAndFetch calls for the same date share one generation.
type DailyFeed[T domain.DailyEntry] struct {
	name     string
	key      string
	store    repository.KeyValueStore
	calendar domain.Calendar
	generate Generator[T]
	stamp    func(entry T, date string) T
	logger   *zap.Logger

	group singleflight.Group

	mu      sync.Mutex
	history []T
	current T
	hasCur  bool
	lastErr error
}

// NewDailyFeed creates a feed persisted under key
func NewDailyFeed[T domain.DailyEntry](
	name, key string,
	store repository.KeyValueStore,
	calendar domain.Calendar,
	generate Generator[T],
	stamp func(entry T, date string) T,
	logger *zap.Logger,
) *DailyFeed[T] {
	return &DailyFeed[T]{
		name:     name,
		key:      key,
		store:    store,
		calendar: calendar,
		generate: generate,
		stamp:    stamp,
		logger:   logger.With(zap.String("feed", name)),
	}
}

// Load reads the stored history. Unreadable history starts empty.
func (f *DailyFeed[T]) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.history = nil
	f.hasCur = false
	f.lastErr = nil

	raw, found, err := f.store.Get(f.key)
	if err != nil {
		f.logger.Error("Failed to read daily history", zap.Error(err))
		return err
	}
	if !found {
		return nil
	}

	var history []T
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		f.logger.Error("Stored daily history is unreadable", zap.Error(err))
		return nil
	}
	f.history = history
	return nil
}

func (f *DailyFeed[T]) findLocked(date string) (T, bool) {
	for _, e := range f.history {
		if e.EntryDate() == date {
			return e, true
		}
	}
	var zero T
	return zero, false
}

func (f *DailyFeed[T]) lookup(date string) (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	e, ok := f.findLocked(date)
	if ok {
		f.current, f.hasCur = e, true
	}
	return e, ok
}

func (f *DailyFeed[T]) repeatKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	keys := make([]string, 0, len(f.history))
	for _, e := range f.history {
		keys = append(keys, e.RepeatKey())
	}
	return keys
}

// CheckAndFetch returns today's entry, generating it when missing.
// A failed generation leaves the history untouched.
func (f *DailyFeed[T]) CheckAndFetch(ctx context.Context) (T, error) {
	today := f.calendar.Today()
	if e, ok := f.lookup(today); ok {
		return e, nil
	}

	v, err, shared := f.group.Do(today, func() (any, error) {
		if e, ok := f.lookup(today); ok {
			return e, nil
		}

		entry, err := f.generate(ctx, f.repeatKeys())
		if err != nil {
			return nil, err
		}
		entry = f.stamp(entry, today)

		f.mu.Lock()
		defer f.mu.Unlock()
		f.history = append([]T{entry}, f.history...)
		f.current, f.hasCur = entry, true
		f.lastErr = nil
		f.persistLocked()

		f.logger.Info("Generated daily entry", zap.String("date", today))
		return entry, nil
	})
	if err != nil {
		f.mu.Lock()
		f.lastErr = err
		f.mu.Unlock()
		f.logger.Warn("Daily generation failed", zap.Bool("shared", shared), zap.Error(err))
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (f *DailyFeed[T]) persistLocked() {
	data, err := json.Marshal(f.history)
	if err != nil {
		f.logger.Error("Failed to encode daily history", zap.Error(err))
		return
	}
	if err := f.store.Set(f.key, string(data)); err != nil {
		f.logger.Error("Failed to save daily history", zap.Error(err))
	}
}

// Current returns the entry exposed by the last successful check
func (f *DailyFeed[T]) Current() (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current, f.hasCur
}

// History returns every entry, newest first
func (f *DailyFeed[T]) History() []T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]T(nil), f.history...)
}

// LastError returns the error of the last failed generation
func (f *DailyFeed[T]) LastError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// NewDailyWordFeed keeps the slang word of the day
func NewDailyWordFeed(store repository.KeyValueStore, gw DailyGateway, calendar domain.Calendar, logger *zap.Logger) *DailyFeed[domain.DailyWord] {
	return NewDailyFeed[domain.DailyWord]("daily_word", repository.KeyDailyWord, store, calendar,
		gw.DailySlang,
		func(e domain.DailyWord, date string) domain.DailyWord { e.Date = date; return e },
		logger)
}

// NewDailyGrammarFeed keeps the grammar lesson of the day
func NewDailyGrammarFeed(store repository.KeyValueStore, gw DailyGateway, calendar domain.Calendar, logger *zap.Logger) *DailyFeed[domain.DailyGrammar] {
	return NewDailyFeed[domain.DailyGrammar]("daily_grammar", repository.KeyDailyGrammar, store, calendar,
		gw.DailyGrammar,
		func(e domain.DailyGrammar, date string) domain.DailyGrammar { e.Date = date; return e },
		logger)
}

// NewDailyQuoteFeed keeps the quote of the day
func NewDailyQuoteFeed(store repository.KeyValueStore, gw DailyGateway, calendar domain.Calendar, logger *zap.Logger) *DailyFeed[domain.DailyQuote] {
	return NewDailyFeed[domain.DailyQuote]("daily_quote", repository.KeyDailyQuote, store, calendar,
		gw.DailyQuote,
		func(e domain.DailyQuote, date string) domain.DailyQuote { e.Date = date; return e },
		logger)
}
