package service

import (
	"context"

	"vocabdeck/internal/ai"
	"vocabdeck/internal/domain"
)

// VocabularyGateway is the AI surface used by the vocabulary store
type VocabularyGateway interface {
	DefineWord(ctx context.Context, word string) (domain.WordStub, error)
	GenerateWords(ctx context.Context, exclude []string, count int) ([]domain.WordStub, error)
	ExplainSentence(ctx context.Context, word, sentence string) (string, error)
	MoreExamples(ctx context.Context, word, existing string) ([]string, error)
	SimilarWord(ctx context.Context, word string) (domain.SimilarWord, error)
	WordStructure(ctx context.Context, word string) (domain.WordStructure, error)
	WritingFeedback(ctx context.Context, word, sentence string) (string, error)
}

// TopicGateway generates topic packs and their group titles
type TopicGateway interface {
	TopicPack(ctx context.Context, topic string, existingTitles []string) (domain.TopicPack, error)
	GroupTitle(ctx context.Context, titles []string) (string, error)
}

// PlanGateway generates the study plan
type PlanGateway interface {
	StudyPlan(ctx context.Context, in ai.PlanInput) (domain.StudyPlan, error)
}

// ReadingGateway generates the reading comprehension test
type ReadingGateway interface {
	ReadingTest(ctx context.Context) (domain.ReadingTest, error)
}

// DailyGateway generates the three daily singletons
type DailyGateway interface {
	DailySlang(ctx context.Context, exclude []string) (domain.DailyWord, error)
	DailyGrammar(ctx context.Context, exclude []string) (domain.DailyGrammar, error)
	DailyQuote(ctx context.Context, exclude []string) (domain.DailyQuote, error)
}

// Gateway is everything the app asks of the AI
type Gateway interface {
	VocabularyGateway
	TopicGateway
	PlanGateway
	ReadingGateway
	DailyGateway
}

var _ Gateway = (*ai.Client)(nil)

// Loader is a service that rebuilds its state from the store
type Loader interface {
	Load() error
}
