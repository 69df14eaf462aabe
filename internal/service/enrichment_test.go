package service

import (
	"errors"
	"testing"

	"vocabdeck/internal/domain"
	"vocabdeck/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVocabularyService_ExplainSentenceCached(t *testing.T) {
	word := testutil.NewTestWord("w1", "audit", testToday, 0)
	store := storeWith(t, word)
	gw := new(testutil.MockGateway)
	gw.On("ExplainSentence", mock.Anything, "audit", word.ExampleSentence).Return("說明", nil).Once()
	s := newTestVocabulary(t, store, gw)

	first, err := s.ExplainSentence(testContext(), "w1")
	require.NoError(t, err)
	second, err := s.ExplainSentence(testContext(), "w1")
	require.NoError(t, err)

	assert.Equal(t, "說明", first)
	assert.Equal(t, first, second)
	require.NotNil(t, storedWords(t, store)[0].SentenceAnalysis)
	gw.AssertNumberOfCalls(t, "ExplainSentence", 1)
}

func TestVocabularyService_EnrichmentUnknownWord(t *testing.T) {
	s := newTestVocabulary(t, storeWith(t), new(testutil.MockGateway))

	_, err := s.ExplainSentence(testContext(), "nope")
	assert.ErrorIs(t, err, ErrWordNotFound)
	_, err = s.FindSimilarWord(testContext(), "nope")
	assert.ErrorIs(t, err, ErrWordNotFound)
	_, err = s.AnalyzeStructure(testContext(), "nope")
	assert.ErrorIs(t, err, ErrWordNotFound)
	_, err = s.MoreExamples(testContext(), "nope")
	assert.ErrorIs(t, err, ErrWordNotFound)
	_, err = s.PracticeWriting(testContext(), "nope", "x")
	assert.ErrorIs(t, err, ErrWordNotFound)
}

func TestVocabularyService_FailedEnrichmentStoresNothing(t *testing.T) {
	store := storeWith(t, testutil.NewTestWord("w1", "audit", testToday, 0))
	gw := new(testutil.MockGateway)
	gw.On("SimilarWord", mock.Anything, "audit").Return(domain.SimilarWord{}, errors.New("bad shape"))
	s := newTestVocabulary(t, store, gw)

	_, err := s.FindSimilarWord(testContext(), "w1")

	assert.Error(t, err)
	w, _ := s.Get("w1")
	assert.Nil(t, w.SimilarWordAnalysis)
	assert.Equal(t, 0, store.Writes())
}

func TestVocabularyService_AnalyzeStructure(t *testing.T) {
	store := storeWith(t, testutil.NewTestWord("w1", "outsource", testToday, 0))
	gw := new(testutil.MockGateway)
	structure := domain.WordStructure{
		Prefix: &domain.Morpheme{Part: "out", Meaning: "向外"},
		Root:   &domain.Morpheme{Part: "source", Meaning: "來源"},
	}
	gw.On("WordStructure", mock.Anything, "outsource").Return(structure, nil).Once()
	s := newTestVocabulary(t, store, gw)

	got, err := s.AnalyzeStructure(testContext(), "w1")
	require.NoError(t, err)
	again, err := s.AnalyzeStructure(testContext(), "w1")
	require.NoError(t, err)

	assert.Equal(t, "out", got.Prefix.Part)
	assert.Equal(t, got, again)
	gw.AssertExpectations(t)
}

func TestVocabularyService_MoreExamples(t *testing.T) {
	word := testutil.NewTestWord("w1", "audit", testToday, 0)
	word.AdditionalExamples = []string{"Old."}
	store := storeWith(t, word)
	gw := new(testutil.MockGateway)
	gw.On("MoreExamples", mock.Anything, "audit", word.ExampleSentence).Return([]string{"Old.", "New."}, nil)
	s := newTestVocabulary(t, store, gw)

	examples, err := s.MoreExamples(testContext(), "w1")

	require.NoError(t, err)
	assert.Equal(t, []string{"Old.", "New."}, examples)
}

func TestVocabularyService_PracticeWriting(t *testing.T) {
	store := storeWith(t, testutil.NewTestWord("w1", "audit", testToday, 0))
	gw := new(testutil.MockGateway)
	gw.On("WritingFeedback", mock.Anything, "audit", "We audit the books.").Return("很好", nil).Twice()
	s := newTestVocabulary(t, store, gw)

	_, err := s.PracticeWriting(testContext(), "w1", "  We audit the books. ")
	require.NoError(t, err)
	attempt, err := s.PracticeWriting(testContext(), "w1", "We audit the books.")
	require.NoError(t, err)

	assert.Equal(t, domain.WritingAttempt{Sentence: "We audit the books.", Feedback: "很好"}, attempt)
	assert.Len(t, storedWords(t, store)[0].WritingPractice, 2)
}
