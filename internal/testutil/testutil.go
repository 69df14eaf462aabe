package testutil

import (
	"time"

	"vocabdeck/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// FixedCalendar returns a calendar pinned to noon UTC on date (YYYY-MM-DD)
func FixedCalendar(date string) domain.Calendar {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		panic(err)
	}
	noon := t.Add(12 * time.Hour)
	return domain.Calendar{
		Clock:    func() time.Time { return noon },
		Location: time.UTC,
	}
}

// MovableCalendar is a calendar whose date tests can change
type MovableCalendar struct {
	Now time.Time
}

// NewMovableCalendar starts at noon UTC on date
func NewMovableCalendar(date string) *MovableCalendar {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		panic(err)
	}
	return &MovableCalendar{Now: t.Add(12 * time.Hour)}
}

// Calendar returns a calendar reading the current value of m
func (m *MovableCalendar) Calendar() domain.Calendar {
	return domain.Calendar{
		Clock:    func() time.Time { return m.Now },
		Location: time.UTC,
	}
}

// AdvanceDays moves the clock forward n days
func (m *MovableCalendar) AdvanceDays(n int) {
	m.Now = m.Now.AddDate(0, 0, n)
}

// NewTestStub creates a word stub
func NewTestStub(word string) domain.WordStub {
	return domain.WordStub{
		Word:              word,
		Phonetic:          "/" + word + "/",
		Definition:        "definition of " + word,
		ChineseDefinition: "中文 " + word,
		ExampleSentence:   "An example with " + word + ".",
	}
}

// NewTestWord creates a word due on dueDate
func NewTestWord(id, word, dueDate string, interval int) domain.Word {
	stub := NewTestStub(word)
	return domain.Word{
		ID:                 id,
		Word:               stub.Word,
		Phonetic:           stub.Phonetic,
		Definition:         stub.Definition,
		ChineseDefinition:  stub.ChineseDefinition,
		ExampleSentence:    stub.ExampleSentence,
		Familiarity:        domain.DefaultFamiliarity,
		Tags:               []string{},
		AdditionalExamples: []string{},
		WritingPractice:    []domain.WritingAttempt{},
		DueDate:            dueDate,
		Interval:           interval,
		SchemaVersion:      domain.CurrentSchemaVersion,
	}
}

// NewTestDay creates a test day
func NewTestDay(date time.Time, reviewCount int) domain.Day {
	return domain.Day{
		Date:        date,
		ReviewCount: reviewCount,
	}
}
