package service

import (
	"encoding/json"
	"errors"
	"testing"

	"vocabdeck/internal/ai"
	"vocabdeck/internal/domain"
	"vocabdeck/internal/repository"
	"vocabdeck/internal/repository/memory"
	"vocabdeck/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testPlan() domain.StudyPlan {
	return domain.StudyPlan{
		PlanTitle: "今日衝刺",
		Tasks: []domain.StudyTask{
			{ID: "review", Title: "複習單字", ActionType: "flashcard"},
			{ID: "reading", Title: "閱讀測驗", ActionType: "reading-comprehension"},
		},
	}
}

func newTestPlanService(t *testing.T, store *memory.Store, gw PlanGateway) *StudyPlanService {
	t.Helper()
	s := NewStudyPlanService(store, gw, testutil.FixedCalendar(testToday), testutil.NewTestLogger())
	require.NoError(t, s.Load())
	return s
}

func TestStudyPlanService_GeneratesOncePerDay(t *testing.T) {
	store := memory.New()
	gw := new(testutil.MockGateway)
	due := []domain.Word{testutil.NewTestWord("w1", "audit", testToday, 0)}
	gw.On("StudyPlan", mock.Anything, ai.PlanInput{TotalWords: 5, DueWords: []string{"audit"}, WeakWords: []string{"audit"}}).
		Return(testPlan(), nil).Once()
	s := newTestPlanService(t, store, gw)

	first, err := s.CheckAndGenerate(testContext(), due, due, 5)
	require.NoError(t, err)
	second, err := s.CheckAndGenerate(testContext(), due, due, 5)
	require.NoError(t, err)

	assert.Equal(t, testToday, first.Date)
	assert.Equal(t, first, second)
	gw.AssertExpectations(t)

	var stored domain.StudyPlan
	raw, _, _ := store.Get(repository.KeyStudyPlan)
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, first, stored)
}

func TestStudyPlanService_OldPlanIsReplaced(t *testing.T) {
	old := testPlan()
	old.Date = "2024-03-09"
	data, _ := json.Marshal(old)
	store := memory.NewWith(map[string]string{repository.KeyStudyPlan: string(data)})
	gw := new(testutil.MockGateway)
	fresh := testPlan()
	fresh.PlanTitle = "新的一天"
	gw.On("StudyPlan", mock.Anything, mock.Anything).Return(fresh, nil).Once()
	s := newTestPlanService(t, store, gw)

	_, ok := s.Current()
	assert.False(t, ok)

	plan, err := s.CheckAndGenerate(testContext(), nil, nil, 0)

	require.NoError(t, err)
	assert.Equal(t, "新的一天", plan.PlanTitle)
	assert.Equal(t, testToday, plan.Date)
}

func TestStudyPlanService_CorruptedPlanRemoved(t *testing.T) {
	store := memory.NewWith(map[string]string{repository.KeyStudyPlan: "{broken"})

	s := newTestPlanService(t, store, new(testutil.MockGateway))

	_, found, _ := store.Get(repository.KeyStudyPlan)
	assert.False(t, found)
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestStudyPlanService_GenerationFailure(t *testing.T) {
	store := memory.New()
	gw := new(testutil.MockGateway)
	gw.On("StudyPlan", mock.Anything, mock.Anything).Return(domain.StudyPlan{}, errors.New("down"))
	s := newTestPlanService(t, store, gw)

	_, err := s.CheckAndGenerate(testContext(), nil, nil, 0)

	assert.Error(t, err)
	assert.Error(t, s.LastError())
	assert.Equal(t, 0, store.Writes())
}

func TestStudyPlanService_CompleteTask(t *testing.T) {
	plan := testPlan()
	plan.Date = testToday
	data, _ := json.Marshal(plan)
	store := memory.NewWith(map[string]string{repository.KeyStudyPlan: string(data)})
	s := newTestPlanService(t, store, new(testutil.MockGateway))

	assert.True(t, s.CompleteTask("reading"))
	assert.True(t, s.CompleteTask("reading"))
	assert.False(t, s.CompleteTask("missing"))

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "review", current.Tasks[0].ID)
	assert.False(t, current.Tasks[0].IsCompleted)
	assert.Equal(t, "reading", current.Tasks[1].ID)
	assert.True(t, current.Tasks[1].IsCompleted)
	assert.Equal(t, 1, store.Writes())

	done, total := current.Progress()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, total)
}

func TestReadingService_StaleTestRegenerated(t *testing.T) {
	stale := domain.ReadingTest{Date: testToday, Title: "Old format", Article: "a"}
	data, _ := json.Marshal(stale)
	store := memory.NewWith(map[string]string{repository.KeyReadingComprehend: string(data)})
	gw := new(testutil.MockGateway)
	gw.On("ReadingTest", mock.Anything).Return(domain.ReadingTest{
		Title:      "New",
		Article:    "b",
		Questions:  []domain.ReadingQuestion{},
		Vocabulary: []domain.VocabularyHighlight{{WordOrPhrase: "quarterly"}},
	}, nil).Once()
	s := NewReadingService(store, gw, testutil.FixedCalendar(testToday), testutil.NewTestLogger())
	require.NoError(t, s.Load())

	_, ok := s.Current()
	assert.False(t, ok)

	test, err := s.CheckAndGenerate(testContext())
	require.NoError(t, err)
	again, err := s.CheckAndGenerate(testContext())
	require.NoError(t, err)

	assert.Equal(t, "New", test.Title)
	assert.Equal(t, testToday, test.Date)
	assert.Equal(t, test, again)
	gw.AssertExpectations(t)
}
