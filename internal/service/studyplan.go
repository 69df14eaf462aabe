package service

import (
	"context"

	"vocabdeck/internal/ai"
	"vocabdeck/internal/domain"
	"vocabdeck/internal/repository"

	"go.uber.org/zap"
)

// StudyPlanService keeps one generated task list per day
type StudyPlanService struct {
	slot   *DailySlot[domain.StudyPlan]
	ai     PlanGateway
	logger *zap.Logger
}

// NewStudyPlanService creates a study plan service
func NewStudyPlanService(store repository.KeyValueStore, gw PlanGateway, calendar domain.Calendar, logger *zap.Logger) *StudyPlanService {
	return &StudyPlanService{
		slot: NewDailySlot(repository.KeyStudyPlan, store, calendar,
			func(p domain.StudyPlan, date string) domain.StudyPlan { p.Date = date; return p },
			nil, logger),
		ai:     gw,
		logger: logger,
	}
}

func (s *StudyPlanService) Load() error {
	return s.slot.Load()
}

func wordTexts(words []domain.Word) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, w.Word)
	}
	return out
}

// CheckAndGenerate returns today's plan, generating it from the learner's state if needed
func (s *StudyPlanService) CheckAndGenerate(ctx context.Context, due, weak []domain.Word, total int) (domain.StudyPlan, error) {
	return s.slot.GetOrCreate(ctx, func(ctx context.Context) (domain.StudyPlan, error) {
		s.logger.Info("Generating study plan",
			zap.Int("due", len(due)),
			zap.Int("weak", len(weak)),
		)
		return s.ai.StudyPlan(ctx, ai.PlanInput{
			TotalWords: total,
			DueWords:   wordTexts(due),
			WeakWords:  wordTexts(weak),
		})
	})
}

// Current returns today's plan if one exists
func (s *StudyPlanService) Current() (domain.StudyPlan, bool) {
	return s.slot.Today()
}

// CompleteTask marks the task done. Task order is kept.
func (s *StudyPlanService) CompleteTask(taskID string) bool {
	found := false
	s.slot.Update(func(p *domain.StudyPlan) bool {
		for i := range p.Tasks {
			if p.Tasks[i].ID != taskID {
				continue
			}
			found = true
			if p.Tasks[i].IsCompleted {
				return false
			}
			p.Tasks[i].IsCompleted = true
			return true
		}
		return false
	})
	return found
}

func (s *StudyPlanService) LastError() error {
	return s.slot.LastError()
}
