package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"vocabdeck/internal/domain"
	"vocabdeck/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBulkCount is how many words one bulk generation asks for
const DefaultBulkCount = 10

// WordPatch holds the text fields to overwrite. Nil fields are kept.
type WordPatch struct {
	Word              *string
	Phonetic          *string
	Definition        *string
	ChineseDefinition *string
	ExampleSentence   *string
}

// VocabularyService owns the word collection and its persisted copy
type VocabularyService struct {
	store     repository.KeyValueStore
	ai        VocabularyGateway
	calendar  domain.Calendar
	bulkCount int
	logger    *zap.Logger
	newID     func() string

	mu    sync.Mutex
	words []domain.Word
}

// NewVocabularyService creates a vocabulary store. Call Load before use.
func NewVocabularyService(
	store repository.KeyValueStore,
	ai VocabularyGateway,
	calendar domain.Calendar,
	bulkCount int,
	logger *zap.Logger,
) *VocabularyService {
	if bulkCount <= 0 {
		bulkCount = DefaultBulkCount
	}
	return &VocabularyService{
		store:     store,
		ai:        ai,
		calendar:  calendar,
		bulkCount: bulkCount,
		logger:    logger,
		newID:     func() string { return uuid.New().String() },
	}
}

func (s *VocabularyService) newWord(stub domain.WordStub, today string, tags ...string) domain.Word {
	return domain.Word{
		ID:                 s.newID(),
		Word:               strings.TrimSpace(stub.Word),
		Phonetic:           stub.Phonetic,
		Definition:         stub.Definition,
		ChineseDefinition:  stub.ChineseDefinition,
		ExampleSentence:    stub.ExampleSentence,
		Familiarity:        domain.DefaultFamiliarity,
		Tags:               append([]string{}, tags...),
		AdditionalExamples: []string{},
		WritingPractice:    []domain.WritingAttempt{},
		DueDate:            today,
		Interval:           0,
		SchemaVersion:      domain.CurrentSchemaVersion,
	}
}

func (s *VocabularyService) seed(today string) []domain.Word {
	words := make([]domain.Word, 0, len(seedWords))
	for _, stub := range seedWords {
		words = append(words, s.newWord(stub, today))
	}
	return words
}

// Load reads the collection, seeding it when nothing was stored.
// Older records are upgraded in memory; the upgrade is written back with
// the next mutation.
func (s *VocabularyService) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.calendar.Today()

	raw, found, err := s.store.Get(repository.KeyWords)
	if err != nil {
		s.logger.Error("Failed to read vocabulary", zap.Error(err))
		s.words = s.seed(today)
		return fmt.Errorf("read vocabulary: %w", err)
	}

	if !found {
		s.words = s.seed(today)
		s.logger.Info("Seeded vocabulary", zap.Int("count", len(s.words)))
		s.persistLocked()
		return nil
	}

	words, err := upgradeWords(raw, upgradeEnv{today: today, newID: s.newID})
	if err != nil {
		s.logger.Error("Stored vocabulary is unreadable, using seed list", zap.Error(err))
		s.words = s.seed(today)
		return nil
	}

	s.words = words
	s.logger.Info("Vocabulary loaded", zap.Int("count", len(words)))
	return nil
}

// persistLocked writes the whole collection. Failures are logged and the
// in-memory state is kept.
func (s *VocabularyService) persistLocked() {
	data, err := json.Marshal(s.words)
	if err != nil {
		s.logger.Error("Failed to encode vocabulary", zap.Error(err))
		return
	}
	if err := s.store.Set(repository.KeyWords, string(data)); err != nil {
		s.logger.Error("Failed to save vocabulary",
			zap.Int("count", len(s.words)),
			zap.Error(err),
		)
	}
}

func (s *VocabularyService) indexLocked(id string) int {
	for i := range s.words {
		if s.words[i].ID == id {
			return i
		}
	}
	return -1
}

// mutate applies fn to the word with id and persists when fn reports a change
func (s *VocabularyService) mutate(id string, fn func(w *domain.Word) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	if fn(&s.words[i]) {
		s.persistLocked()
	}
	return true
}

// Words returns a copy of the collection in insertion order
func (s *VocabularyService) Words() []domain.Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Word, 0, len(s.words))
	for _, w := range s.words {
		out = append(out, w.Clone())
	}
	return out
}

// Get returns the word with id
func (s *VocabularyService) Get(id string) (domain.Word, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return domain.Word{}, false
	}
	return s.words[i].Clone(), true
}

// Count returns the number of words
func (s *VocabularyService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.words)
}

// Add appends a new word with default learning state
func (s *VocabularyService) Add(stub domain.WordStub) (domain.Word, error) {
	if strings.TrimSpace(stub.Word) == "" {
		return domain.Word{}, fmt.Errorf("word cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.newWord(stub, s.calendar.Today())
	s.words = append(s.words, w)
	s.persistLocked()
	return w.Clone(), nil
}

// Define asks the AI for the text fields of word without saving anything
func (s *VocabularyService) Define(ctx context.Context, word string) (domain.WordStub, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return domain.WordStub{}, fmt.Errorf("word cannot be empty")
	}
	return s.ai.DefineWord(ctx, word)
}

// AddStubs merges stubs whose text is not already in the collection,
// compared case-insensitively. It returns how many were added and skipped.
func (s *VocabularyService) AddStubs(stubs []domain.WordStub) (added, skipped int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[string]bool, len(s.words))
	for _, w := range s.words {
		existing[strings.ToLower(w.Word)] = true
	}

	today := s.calendar.Today()
	for _, stub := range stubs {
		key := strings.ToLower(strings.TrimSpace(stub.Word))
		if key == "" || existing[key] {
			skipped++
			continue
		}
		existing[key] = true
		s.words = append(s.words, s.newWord(stub, today))
		added++
	}

	if added > 0 {
		s.persistLocked()
	}
	return added, skipped
}

// Update overwrites the non-nil fields of patch
func (s *VocabularyService) Update(id string, patch WordPatch) bool {
	return s.mutate(id, func(w *domain.Word) bool {
		changed := false
		apply := func(dst *string, src *string) {
			if src != nil && *dst != *src {
				*dst = *src
				changed = true
			}
		}
		apply(&w.Word, patch.Word)
		apply(&w.Phonetic, patch.Phonetic)
		apply(&w.Definition, patch.Definition)
		apply(&w.ChineseDefinition, patch.ChineseDefinition)
		apply(&w.ExampleSentence, patch.ExampleSentence)
		return changed
	})
}

// AddTag adds tag unless the word already has it
func (s *VocabularyService) AddTag(id, tag string) bool {
	tag = strings.TrimSpace(tag)
	return s.mutate(id, func(w *domain.Word) bool {
		if tag == "" || w.HasTag(tag) {
			return false
		}
		w.Tags = append(w.Tags, tag)
		return true
	})
}

// RemoveTag removes tag if present
func (s *VocabularyService) RemoveTag(id, tag string) bool {
	return s.mutate(id, func(w *domain.Word) bool {
		if !w.HasTag(tag) {
			return false
		}
		kept := make([]string, 0, len(w.Tags)-1)
		for _, t := range w.Tags {
			if t != tag {
				kept = append(kept, t)
			}
		}
		w.Tags = kept
		return true
	})
}

// AddExamples appends the examples not already stored
func (s *VocabularyService) AddExamples(id string, examples []string) bool {
	return s.mutate(id, func(w *domain.Word) bool {
		have := make(map[string]bool, len(w.AdditionalExamples))
		for _, ex := range w.AdditionalExamples {
			have[ex] = true
		}
		changed := false
		for _, ex := range examples {
			if strings.TrimSpace(ex) == "" || have[ex] {
				continue
			}
			have[ex] = true
			w.AdditionalExamples = append(w.AdditionalExamples, ex)
			changed = true
		}
		return changed
	})
}

// SetFamiliarity stores the learner's own rating, clamped to 0..5.
// It has no effect on scheduling.
func (s *VocabularyService) SetFamiliarity(id string, value int) bool {
	if value < 0 {
		value = 0
	}
	if value > domain.MaxFamiliarity {
		value = domain.MaxFamiliarity
	}
	return s.mutate(id, func(w *domain.Word) bool {
		if w.Familiarity == value {
			return false
		}
		w.Familiarity = value
		return true
	})
}

// RecordReview reschedules the word with id. Unknown ids are ignored.
func (s *VocabularyService) RecordReview(id string, rating domain.Rating) (ReviewOutcome, bool, error) {
	outcome, err := Schedule(rating, s.calendar.Today())
	if err != nil {
		return ReviewOutcome{}, false, err
	}
	found := s.mutate(id, func(w *domain.Word) bool {
		w.Interval = outcome.Interval
		w.DueDate = outcome.DueDate
		return true
	})
	return outcome, found, nil
}

// DueWords returns the words whose due date is on or before today
func (s *VocabularyService) DueWords(today string) []domain.Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []domain.Word
	for _, w := range s.words {
		if domain.IsDue(w.DueDate, today) {
			due = append(due, w.Clone())
		}
	}
	return due
}

// StartReview snapshots the words due today
func (s *VocabularyService) StartReview() *ReviewSession {
	return NewReviewSession(s.DueWords(s.calendar.Today()))
}

// WeakWords returns the words last rated again or never reviewed
func (s *VocabularyService) WeakWords() []domain.Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	var weak []domain.Word
	for _, w := range s.words {
		if w.Interval == 0 {
			weak = append(weak, w.Clone())
		}
	}
	return weak
}

// Search matches query against the word and both definitions
func (s *VocabularyService) Search(query string) []domain.Word {
	q := strings.ToLower(strings.TrimSpace(query))

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Word
	for _, w := range s.words {
		if q == "" ||
			strings.Contains(strings.ToLower(w.Word), q) ||
			strings.Contains(strings.ToLower(w.Definition), q) ||
			strings.Contains(w.ChineseDefinition, q) {
			out = append(out, w.Clone())
		}
	}
	return out
}

// Tags returns every tag in use, sorted
func (s *VocabularyService) Tags() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	var tags []string
	for _, w := range s.words {
		for _, t := range w.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// WordsWithTag returns the words carrying tag
func (s *VocabularyService) WordsWithTag(tag string) []domain.Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Word
	for _, w := range s.words {
		if w.HasTag(tag) {
			out = append(out, w.Clone())
		}
	}
	return out
}

// BulkGenerate asks the AI for new words not in the collection and adds
// all of them tagged as generated. On error nothing is added.
func (s *VocabularyService) BulkGenerate(ctx context.Context) ([]domain.Word, error) {
	exclude := s.wordTexts()

	stubs, err := s.ai.GenerateWords(ctx, exclude, s.bulkCount)
	if err != nil {
		return nil, err
	}
	if len(stubs) == 0 {
		return nil, errors.New("no words generated")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.calendar.Today()
	added := make([]domain.Word, 0, len(stubs))
	for _, stub := range stubs {
		w := s.newWord(stub, today, domain.TagAIGenerated)
		s.words = append(s.words, w)
		added = append(added, w.Clone())
	}
	s.persistLocked()

	s.logger.Info("Generated words", zap.Int("count", len(added)))
	return added, nil
}

func (s *VocabularyService) wordTexts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	texts := make([]string, 0, len(s.words))
	for _, w := range s.words {
		texts = append(texts, w.Word)
	}
	return texts
}
