package service

import (
	"encoding/json"
	"fmt"
	"strconv"

	"vocabdeck/internal/domain"
)

type upgradeEnv struct {
	today string
	newID func() string
}

type record map[string]json.RawMessage

// upgradeStep lifts a record from version-1 to version. Steps only fill in
// what is absent so replaying one is harmless.
type upgradeStep struct {
	version int
	apply   func(rec record, env upgradeEnv) error
}

var upgradeSteps = []upgradeStep{
	{version: 1, apply: backfillLearningFields},
	{version: 2, apply: backfillSchedule},
	{version: 3, apply: dedupeLists},
}

func (r record) absent(key string) bool {
	v, ok := r[key]
	return !ok || string(v) == "null"
}

func (r record) setDefault(key string, value any) error {
	if !r.absent(key) {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r[key] = b
	return nil
}

func backfillLearningFields(rec record, env upgradeEnv) error {
	if rec.absent("id") {
		if err := rec.setDefault("id", env.newID()); err != nil {
			return err
		}
	}
	defaults := []struct {
		key   string
		value any
	}{
		{"familiarity", domain.DefaultFamiliarity},
		{"phonetic", ""},
		{"tags", []string{}},
		{"additionalExamples", []string{}},
		{"writingPractice", []domain.WritingAttempt{}},
	}
	for _, d := range defaults {
		if err := rec.setDefault(d.key, d.value); err != nil {
			return err
		}
	}
	return nil
}

func backfillSchedule(rec record, env upgradeEnv) error {
	if err := rec.setDefault("dueDate", env.today); err != nil {
		return err
	}
	return rec.setDefault("interval", 0)
}

func dedupeLists(rec record, _ upgradeEnv) error {
	for _, key := range []string{"tags", "additionalExamples"} {
		if rec.absent(key) {
			continue
		}
		var items []string
		if err := json.Unmarshal(rec[key], &items); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		b, err := json.Marshal(uniqueStrings(items))
		if err != nil {
			return err
		}
		rec[key] = b
	}
	return nil
}

func uniqueStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// upgradeRecord runs every step newer than the record's version
func upgradeRecord(rec record, env upgradeEnv) (domain.Word, error) {
	version := 0
	if !rec.absent("schemaVersion") {
		if err := json.Unmarshal(rec["schemaVersion"], &version); err != nil {
			return domain.Word{}, fmt.Errorf("schemaVersion: %w", err)
		}
	}

	for _, step := range upgradeSteps {
		if version >= step.version {
			continue
		}
		if err := step.apply(rec, env); err != nil {
			return domain.Word{}, fmt.Errorf("upgrade to v%d: %w", step.version, err)
		}
		version = step.version
	}
	rec["schemaVersion"] = json.RawMessage(strconv.Itoa(version))

	b, err := json.Marshal(rec)
	if err != nil {
		return domain.Word{}, err
	}
	var w domain.Word
	if err := json.Unmarshal(b, &w); err != nil {
		return domain.Word{}, err
	}
	return w, nil
}

// upgradeWords decodes a persisted collection of any schema version
func upgradeWords(raw string, env upgradeEnv) ([]domain.Word, error) {
	var records []record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decode word collection: %w", err)
	}

	words := make([]domain.Word, 0, len(records))
	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("word %d is null", i)
		}
		w, err := upgradeRecord(rec, env)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i, err)
		}
		words = append(words, w)
	}
	return words, nil
}
