package service

import (
	"context"
	"strings"

	"vocabdeck/internal/domain"

	"go.uber.org/zap"
)

// Enrichment results are generated once per word and kept for good.
// The AI call runs without the lock; a result is only stored if the field
// is still empty when it arrives.

// ExplainSentence returns the explanation of the word's example sentence
func (s *VocabularyService) ExplainSentence(ctx context.Context, id string) (string, error) {
	w, ok := s.Get(id)
	if !ok {
		return "", ErrWordNotFound
	}
	if w.SentenceAnalysis != nil {
		return *w.SentenceAnalysis, nil
	}

	text, err := s.ai.ExplainSentence(ctx, w.Word, w.ExampleSentence)
	if err != nil {
		return "", err
	}

	var stored string
	s.mutate(id, func(w *domain.Word) bool {
		if w.SentenceAnalysis != nil {
			stored = *w.SentenceAnalysis
			return false
		}
		w.SentenceAnalysis = &text
		stored = text
		return true
	})
	return stored, nil
}

// FindSimilarWord returns a commonly confused word with a usage comparison
func (s *VocabularyService) FindSimilarWord(ctx context.Context, id string) (domain.SimilarWord, error) {
	w, ok := s.Get(id)
	if !ok {
		return domain.SimilarWord{}, ErrWordNotFound
	}
	if w.SimilarWordAnalysis != nil {
		return *w.SimilarWordAnalysis, nil
	}

	similar, err := s.ai.SimilarWord(ctx, w.Word)
	if err != nil {
		return domain.SimilarWord{}, err
	}

	stored := similar
	s.mutate(id, func(w *domain.Word) bool {
		if w.SimilarWordAnalysis != nil {
			stored = *w.SimilarWordAnalysis
			return false
		}
		w.SimilarWordAnalysis = &similar
		return true
	})
	return stored, nil
}

// AnalyzeStructure returns the prefix, root and suffix of the word
func (s *VocabularyService) AnalyzeStructure(ctx context.Context, id string) (domain.WordStructure, error) {
	w, ok := s.Get(id)
	if !ok {
		return domain.WordStructure{}, ErrWordNotFound
	}
	if w.StructureAnalysis != nil {
		return *w.StructureAnalysis, nil
	}

	structure, err := s.ai.WordStructure(ctx, w.Word)
	if err != nil {
		return domain.WordStructure{}, err
	}

	stored := structure
	s.mutate(id, func(w *domain.Word) bool {
		if w.StructureAnalysis != nil {
			stored = *w.StructureAnalysis
			return false
		}
		w.StructureAnalysis = &structure
		return true
	})
	return stored, nil
}

// MoreExamples generates new example sentences and stores the unseen ones
func (s *VocabularyService) MoreExamples(ctx context.Context, id string) ([]string, error) {
	w, ok := s.Get(id)
	if !ok {
		return nil, ErrWordNotFound
	}

	examples, err := s.ai.MoreExamples(ctx, w.Word, w.ExampleSentence)
	if err != nil {
		return nil, err
	}

	s.AddExamples(id, examples)
	updated, _ := s.Get(id)
	return updated.AdditionalExamples, nil
}

// PracticeWriting gets feedback on a sentence the learner wrote with the word
func (s *VocabularyService) PracticeWriting(ctx context.Context, id, sentence string) (domain.WritingAttempt, error) {
	sentence = strings.TrimSpace(sentence)
	w, ok := s.Get(id)
	if !ok {
		return domain.WritingAttempt{}, ErrWordNotFound
	}

	feedback, err := s.ai.WritingFeedback(ctx, w.Word, sentence)
	if err != nil {
		return domain.WritingAttempt{}, err
	}

	attempt := domain.WritingAttempt{Sentence: sentence, Feedback: feedback}
	s.mutate(id, func(w *domain.Word) bool {
		w.WritingPractice = append(w.WritingPractice, attempt)
		return true
	})
	s.logger.Debug("Writing practice saved", zap.String("word_id", id))
	return attempt, nil
}
