// Package app wires the services shared by the bot and the maintenance CLI.
package app

import (
	"context"

	"vocabdeck/internal/domain"
	"vocabdeck/internal/repository"
	"vocabdeck/internal/service"

	"go.uber.org/zap"
)

// Options configure New
type Options struct {
	BotPassword   string
	BulkWordCount int
	Calendar      domain.Calendar
}

// App holds every service over one store
type App struct {
	Auth       *service.AuthService
	Vocabulary *service.VocabularyService
	Topics     *service.TopicPackService
	DailyWord  *service.DailyFeed[domain.DailyWord]
	Grammar    *service.DailyFeed[domain.DailyGrammar]
	Quote      *service.DailyFeed[domain.DailyQuote]
	Plan       *service.StudyPlanService
	Reading    *service.ReadingService
	Progress   *service.ProgressService
	Backup     *service.BackupService
	Calendar   domain.Calendar

	logger *zap.Logger
}

// New builds the services. Call Load before use.
func New(store repository.KeyValueStore, gw service.Gateway, opts Options, logger *zap.Logger) *App {
	cal := opts.Calendar
	a := &App{
		Auth:       service.NewAuthService(store, opts.BotPassword),
		Vocabulary: service.NewVocabularyService(store, gw, cal, opts.BulkWordCount, logger),
		Topics:     service.NewTopicPackService(store, gw, logger),
		DailyWord:  service.NewDailyWordFeed(store, gw, cal, logger),
		Grammar:    service.NewDailyGrammarFeed(store, gw, cal, logger),
		Quote:      service.NewDailyQuoteFeed(store, gw, cal, logger),
		Plan:       service.NewStudyPlanService(store, gw, cal, logger),
		Reading:    service.NewReadingService(store, gw, cal, logger),
		Progress:   service.NewProgressService(store, cal, logger),
		Calendar:   cal,
		logger:     logger,
	}
	a.Backup = service.NewBackupService(store, logger,
		a.Vocabulary, a.Topics, a.DailyWord, a.Grammar, a.Quote, a.Plan, a.Reading, a.Progress)
	return a
}

// Load reads every service's state from the store
func (a *App) Load() error {
	return a.Backup.Reload()
}

// RefreshDaily generates any of today's daily content that is still missing.
// Failures are logged; each service keeps its last error for the bot to show.
func (a *App) RefreshDaily(ctx context.Context) {
	if _, err := a.DailyWord.CheckAndFetch(ctx); err != nil {
		a.logger.Warn("Daily word refresh failed", zap.Error(err))
	}
	if _, err := a.Grammar.CheckAndFetch(ctx); err != nil {
		a.logger.Warn("Daily grammar refresh failed", zap.Error(err))
	}
	if _, err := a.Quote.CheckAndFetch(ctx); err != nil {
		a.logger.Warn("Daily quote refresh failed", zap.Error(err))
	}

	today := a.Calendar.Today()
	if _, err := a.Plan.CheckAndGenerate(ctx,
		a.Vocabulary.DueWords(today), a.Vocabulary.WeakWords(), a.Vocabulary.Count()); err != nil {
		a.logger.Warn("Study plan refresh failed", zap.Error(err))
	}
}
