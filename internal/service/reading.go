package service

import (
	"context"

	"vocabdeck/internal/domain"
	"vocabdeck/internal/repository"

	"go.uber.org/zap"
)

// ReadingService keeps today's reading comprehension test
type ReadingService struct {
	slot *DailySlot[domain.ReadingTest]
	ai   ReadingGateway
}

// NewReadingService creates a reading service. Stored tests without
// vocabulary highlights come from an older format and are regenerated.
func NewReadingService(store repository.KeyValueStore, gw ReadingGateway, calendar domain.Calendar, logger *zap.Logger) *ReadingService {
	return &ReadingService{
		slot: NewDailySlot(repository.KeyReadingComprehend, store, calendar,
			func(t domain.ReadingTest, date string) domain.ReadingTest { t.Date = date; return t },
			func(t domain.ReadingTest) bool { return t.Vocabulary != nil },
			logger),
		ai: gw,
	}
}

func (s *ReadingService) Load() error {
	return s.slot.Load()
}

func (s *ReadingService) CheckAndGenerate(ctx context.Context) (domain.ReadingTest, error) {
	return s.slot.GetOrCreate(ctx, s.ai.ReadingTest)
}

func (s *ReadingService) Current() (domain.ReadingTest, bool) {
	return s.slot.Today()
}
