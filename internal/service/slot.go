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

type dated interface {
	EntryDate() string
}

// DailySlot stores a single object that is replaced once per date.
// Earlier days are discarded, not archived.
type DailySlot[T dated] struct {
	key      string
	store    repository.KeyValueStore
	calendar domain.Calendar
	stamp    func(v T, date string) T
	fresh    func(v T) bool
	logger   *zap.Logger

	group singleflight.Group

	mu      sync.Mutex
	value   T
	has     bool
	lastErr error
}

// NewDailySlot creates a slot persisted under key. fresh may be nil.
func NewDailySlot[T dated](
	key string,
	store repository.KeyValueStore,
	calendar domain.Calendar,
	stamp func(v T, date string) T,
	fresh func(v T) bool,
	logger *zap.Logger,
) *DailySlot[T] {
	return &DailySlot[T]{
		key:      key,
		store:    store,
		calendar: calendar,
		stamp:    stamp,
		fresh:    fresh,
		logger:   logger.With(zap.String("key", key)),
	}
}

// Load reads the stored object. A corrupted value is removed.
func (s *DailySlot[T]) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.value, s.has, s.lastErr = zero, false, nil

	raw, found, err := s.store.Get(s.key)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.logger.Error("Stored value is corrupted, removing it", zap.Error(err))
		if err := s.store.Delete(s.key); err != nil {
			s.logger.Error("Failed to remove corrupted value", zap.Error(err))
		}
		return nil
	}
	s.value, s.has = v, true
	return nil
}

func (s *DailySlot[T]) todayLocked(today string) (T, bool) {
	if s.has && s.value.EntryDate() == today && (s.fresh == nil || s.fresh(s.value)) {
		return s.value, true
	}
	var zero T
	return zero, false
}

// Today returns the stored object if it belongs to today
func (s *DailySlot[T]) Today() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.todayLocked(s.calendar.Today())
}

// GetOrCreate returns today's object, creating it once when missing
func (s *DailySlot[T]) GetOrCreate(ctx context.Context, create func(ctx context.Context) (T, error)) (T, error) {
	today := s.calendar.Today()
	if v, ok := s.Today(); ok {
		return v, nil
	}

	v, err, _ := s.group.Do(today, func() (any, error) {
		if v, ok := s.Today(); ok {
			return v, nil
		}

		created, err := create(ctx)
		if err != nil {
			return nil, err
		}
		created = s.stamp(created, today)

		s.mu.Lock()
		defer s.mu.Unlock()
		s.value, s.has, s.lastErr = created, true, nil
		s.persistLocked()
		return created, nil
	})
	if err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Update changes today's object in place and persists it when fn reports a change
func (s *DailySlot[T]) Update(fn func(v *T) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todayLocked(s.calendar.Today()); !ok {
		return false
	}
	if !fn(&s.value) {
		return false
	}
	s.persistLocked()
	return true
}

// LastError returns the error of the last failed creation
func (s *DailySlot[T]) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *DailySlot[T]) persistLocked() {
	data, err := json.Marshal(s.value)
	if err != nil {
		s.logger.Error("Failed to encode value", zap.Error(err))
		return
	}
	if err := s.store.Set(s.key, string(data)); err != nil {
		s.logger.Error("Failed to save value", zap.Error(err))
	}
}
