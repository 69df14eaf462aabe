package testutil

import (
	"context"

	"vocabdeck/internal/ai"
	"vocabdeck/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockGateway is a mock for the AI gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) DefineWord(ctx context.Context, word string) (domain.WordStub, error) {
	args := m.Called(ctx, word)
	return args.Get(0).(domain.WordStub), args.Error(1)
}

func (m *MockGateway) GenerateWords(ctx context.Context, exclude []string, count int) ([]domain.WordStub, error) {
	args := m.Called(ctx, exclude, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordStub), args.Error(1)
}

func (m *MockGateway) ExplainSentence(ctx context.Context, word, sentence string) (string, error) {
	args := m.Called(ctx, word, sentence)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) MoreExamples(ctx context.Context, word, existing string) ([]string, error) {
	args := m.Called(ctx, word, existing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGateway) SimilarWord(ctx context.Context, word string) (domain.SimilarWord, error) {
	args := m.Called(ctx, word)
	return args.Get(0).(domain.SimilarWord), args.Error(1)
}

func (m *MockGateway) WordStructure(ctx context.Context, word string) (domain.WordStructure, error) {
	args := m.Called(ctx, word)
	return args.Get(0).(domain.WordStructure), args.Error(1)
}

func (m *MockGateway) WritingFeedback(ctx context.Context, word, sentence string) (string, error) {
	args := m.Called(ctx, word, sentence)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) TopicPack(ctx context.Context, topic string, existingTitles []string) (domain.TopicPack, error) {
	args := m.Called(ctx, topic, existingTitles)
	return args.Get(0).(domain.TopicPack), args.Error(1)
}

func (m *MockGateway) GroupTitle(ctx context.Context, titles []string) (string, error) {
	args := m.Called(ctx, titles)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) DailySlang(ctx context.Context, exclude []string) (domain.DailyWord, error) {
	args := m.Called(ctx, exclude)
	return args.Get(0).(domain.DailyWord), args.Error(1)
}

func (m *MockGateway) DailyGrammar(ctx context.Context, exclude []string) (domain.DailyGrammar, error) {
	args := m.Called(ctx, exclude)
	return args.Get(0).(domain.DailyGrammar), args.Error(1)
}

func (m *MockGateway) DailyQuote(ctx context.Context, exclude []string) (domain.DailyQuote, error) {
	args := m.Called(ctx, exclude)
	return args.Get(0).(domain.DailyQuote), args.Error(1)
}

func (m *MockGateway) ReadingTest(ctx context.Context) (domain.ReadingTest, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ReadingTest), args.Error(1)
}

func (m *MockGateway) StudyPlan(ctx context.Context, in ai.PlanInput) (domain.StudyPlan, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.StudyPlan), args.Error(1)
}

// MockKVStore is a mock for KeyValueStore
type MockKVStore struct {
	mock.Mock
}

func (m *MockKVStore) Get(key string) (string, bool, error) {
	args := m.Called(key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockKVStore) Set(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *MockKVStore) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}
