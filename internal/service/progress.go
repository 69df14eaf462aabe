package service

import (
	"encoding/json"
	"sort"
	"sync"

	"vocabdeck/internal/domain"
	"vocabdeck/internal/repository"

	"go.uber.org/zap"
)

const daysPageSize = 7

// ProgressService tracks the visit streak and daily review counts
type ProgressService struct {
	store    repository.KeyValueStore
	calendar domain.Calendar
	logger   *zap.Logger

	mu     sync.Mutex
	streak domain.Streak
	log    domain.ActivityLog
}

// NewProgressService creates a progress service
func NewProgressService(store repository.KeyValueStore, calendar domain.Calendar, logger *zap.Logger) *ProgressService {
	return &ProgressService{
		store:    store,
		calendar: calendar,
		logger:   logger,
		log:      make(domain.ActivityLog),
	}
}

// Load reads the streak and activity log. Unreadable values start fresh.
func (s *ProgressService) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.streak = domain.Streak{}
	s.log = make(domain.ActivityLog)

	if raw, found, err := s.store.Get(repository.KeyStreak); err != nil {
		return err
	} else if found {
		if err := json.Unmarshal([]byte(raw), &s.streak); err != nil {
			s.logger.Error("Stored streak is unreadable", zap.Error(err))
			s.streak = domain.Streak{}
		}
	}

	if raw, found, err := s.store.Get(repository.KeyActivityLog); err != nil {
		return err
	} else if found {
		if err := json.Unmarshal([]byte(raw), &s.log); err != nil {
			s.logger.Error("Stored activity log is unreadable", zap.Error(err))
		}
		if s.log == nil {
			s.log = make(domain.ActivityLog)
		}
	}
	return nil
}

// Visit records that the learner showed up today and returns the streak.
// A visit on the day after the last one extends the streak; a gap resets it.
func (s *ProgressService) Visit() int {
	today := s.calendar.Today()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.streak.LastVisit == today && s.streak.Streak > 0 {
		return s.streak.Streak
	}

	yesterday, err := domain.AddDays(today, -1)
	if err == nil && s.streak.LastVisit == yesterday {
		s.streak.Streak++
	} else {
		s.streak.Streak = 1
	}
	s.streak.LastVisit = today

	s.saveLocked(repository.KeyStreak, s.streak)
	return s.streak.Streak
}

// Streak returns the current streak without recording a visit
func (s *ProgressService) Streak() domain.Streak {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streak
}

// RecordReview adds one review to today's count
func (s *ProgressService) RecordReview() int {
	today := s.calendar.Today()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.log[today]++
	s.saveLocked(repository.KeyActivityLog, s.log)
	return s.log[today]
}

// ReviewsOn returns the review count of date
func (s *ProgressService) ReviewsOn(date string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log[date]
}

// RecentDays returns the last n days ending today, oldest first
func (s *ProgressService) RecentDays(n int) []domain.Day {
	now := s.calendar.Now()
	today, _ := domain.ParseDate(domain.FormatDate(now))

	s.mu.Lock()
	defer s.mu.Unlock()

	days := make([]domain.Day, 0, n)
	for i := n - 1; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		days = append(days, domain.Day{Date: d, ReviewCount: s.log[domain.FormatDate(d)]})
	}
	return days
}

// DaysPage returns one page of days with reviews, newest first, and the page count
func (s *ProgressService) DaysPage(page int) ([]domain.Day, int) {
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	dates := make([]string, 0, len(s.log))
	for date, count := range s.log {
		if count > 0 {
			dates = append(dates, date)
		}
	}
	counts := make(map[string]int, len(dates))
	for _, d := range dates {
		counts[d] = s.log[d]
	}
	s.mu.Unlock()

	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	totalPages := (len(dates) + daysPageSize - 1) / daysPageSize
	if totalPages == 0 {
		totalPages = 1
	}

	offset := (page - 1) * daysPageSize
	if offset >= len(dates) {
		return nil, totalPages
	}
	end := offset + daysPageSize
	if end > len(dates) {
		end = len(dates)
	}

	days := make([]domain.Day, 0, end-offset)
	for _, date := range dates[offset:end] {
		t, err := domain.ParseDate(date)
		if err != nil {
			s.logger.Warn("Skipping malformed activity date", zap.String("date", date))
			continue
		}
		days = append(days, domain.Day{Date: t, ReviewCount: counts[date]})
	}
	return days, totalPages
}

func (s *ProgressService) saveLocked(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("Failed to encode progress", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.store.Set(key, string(data)); err != nil {
		s.logger.Error("Failed to save progress", zap.String("key", key), zap.Error(err))
	}
}
