package service

import (
	"encoding/json"
	"errors"
	"testing"

	"vocabdeck/internal/repository"
	"vocabdeck/internal/repository/memory"
	"vocabdeck/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLoader struct {
	calls int
	err   error
}

func (l *countingLoader) Load() error {
	l.calls++
	return l.err
}

func fullBackup(t *testing.T, overrides map[string]any) []byte {
	t.Helper()
	payload := map[string]any{}
	for _, key := range repository.TrackedKeys() {
		payload[key] = nil
	}
	for k, v := range overrides {
		payload[k] = v
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return data
}

func TestBackupService_ExportImportRoundTrip(t *testing.T) {
	source := memory.NewWith(map[string]string{
		repository.KeyWords:     `[{"id":"w1","word":"audit"}]`,
		repository.KeyStreak:    `{"streak":3,"lastVisit":"2024-03-10"}`,
		repository.KeyBotOwner:  "42",
		"unrelated_setting_key": "x",
	})
	exporter := NewBackupService(source, testutil.NewTestLogger())

	data, name, err := exporter.Export(testToday)
	require.NoError(t, err)
	assert.Equal(t, "toeic_vocab_backup_2024-03-10.json", name)

	var payload map[string]*string
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Len(t, payload, len(repository.TrackedKeys()))
	assert.Nil(t, payload[repository.KeyTopicPacks])
	assert.NotContains(t, payload, repository.KeyBotOwner)

	target := memory.New()
	loader := &countingLoader{}
	importer := NewBackupService(target, testutil.NewTestLogger(), loader)

	report, err := importer.Import(data)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{repository.KeyWords, repository.KeyStreak}, report.Written)
	assert.Len(t, report.Null, len(repository.TrackedKeys())-2)
	assert.Equal(t, 1, loader.calls)

	snapshot := target.Snapshot()
	assert.Equal(t, `[{"id":"w1","word":"audit"}]`, snapshot[repository.KeyWords])
	assert.Equal(t, `{"streak":3,"lastVisit":"2024-03-10"}`, snapshot[repository.KeyStreak])
	assert.NotContains(t, snapshot, repository.KeyBotOwner)
}

func TestBackupService_ImportRejectsIncompleteBackup(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		wantMissing bool
	}{
		{name: "not json", data: []byte("hello")},
		{name: "json array", data: []byte(`["a"]`)},
		{name: "missing key", data: []byte(`{"toeic_vocabulary_words":"[]"}`), wantMissing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewWith(map[string]string{repository.KeyWords: "[]"})
			loader := &countingLoader{}
			s := NewBackupService(store, testutil.NewTestLogger(), loader)

			_, err := s.Import(tt.data)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantMissing, len(verr.Missing) > 0)
			assert.Equal(t, 0, store.Writes())
			assert.Equal(t, 0, loader.calls)
		})
	}
}

func TestBackupService_ImportNullKeepsExistingValue(t *testing.T) {
	store := memory.NewWith(map[string]string{repository.KeyStreak: `{"streak":9,"lastVisit":"2024-03-01"}`})
	s := NewBackupService(store, testutil.NewTestLogger())

	report, err := s.Import(fullBackup(t, map[string]any{
		repository.KeyWords:       "[]",
		repository.KeyActivityLog: map[string]int{"2024-03-01": 2},
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{repository.KeyWords}, report.Written)
	assert.Equal(t, []string{repository.KeyActivityLog}, report.Skipped)
	snapshot := store.Snapshot()
	assert.Equal(t, `{"streak":9,"lastVisit":"2024-03-01"}`, snapshot[repository.KeyStreak])
	assert.NotContains(t, snapshot, repository.KeyActivityLog)
}

// failingStore accepts writes until okWrites have succeeded, then rejects the rest
type failingStore struct {
	*memory.Store
	okWrites int
}

func (f *failingStore) Set(key, value string) error {
	if f.Writes() >= f.okWrites {
		return errors.New("disk full")
	}
	return f.Store.Set(key, value)
}

func TestBackupService_ImportWriteFailure(t *testing.T) {
	store := &failingStore{Store: memory.New(), okWrites: 100}
	vocab := NewVocabularyService(store, nil, testutil.FixedCalendar(testToday), DefaultBulkCount, testutil.NewTestLogger())
	require.NoError(t, vocab.Load())
	progress := NewProgressService(store, testutil.FixedCalendar(testToday), testutil.NewTestLogger())
	require.NoError(t, progress.Load())
	loader := &countingLoader{}
	s := NewBackupService(store, testutil.NewTestLogger(), vocab, progress, loader)

	// only the word collection, first in backup order, gets through
	store.okWrites = store.Writes() + 1
	report, err := s.Import(fullBackup(t, map[string]any{
		repository.KeyWords:      `[{"id":"w9","word":"invoice","definition":"發票","exampleSentence":"Send the invoice."}]`,
		repository.KeyTopicPacks: "[]",
		repository.KeyStreak:     `{"streak":12,"lastVisit":"2024-03-09"}`,
	}))

	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, []string{repository.KeyWords}, report.Written)
	assert.Equal(t, []string{repository.KeyTopicPacks, repository.KeyStreak}, report.Failed)
	assert.Equal(t, 1, loader.calls)

	// services reloaded from what the store now holds
	assert.Equal(t, 1, vocab.Count())
	_, ok := vocab.Get("w9")
	assert.True(t, ok)
	assert.Zero(t, progress.Streak().Streak)
}

func TestBackupService_ImportReloadsServices(t *testing.T) {
	store := memory.New()
	vocab := NewVocabularyService(store, nil, testutil.FixedCalendar(testToday), DefaultBulkCount, testutil.NewTestLogger())
	require.NoError(t, vocab.Load())
	progress := NewProgressService(store, testutil.FixedCalendar(testToday), testutil.NewTestLogger())
	require.NoError(t, progress.Load())
	s := NewBackupService(store, testutil.NewTestLogger(), vocab, progress)

	_, err := s.Import(fullBackup(t, map[string]any{
		repository.KeyWords:  `[{"id":"w9","word":"invoice","definition":"發票","exampleSentence":"Send the invoice."}]`,
		repository.KeyStreak: `{"streak":12,"lastVisit":"2024-03-09"}`,
	}))
	require.NoError(t, err)

	assert.Equal(t, 1, vocab.Count())
	w, ok := vocab.Get("w9")
	require.True(t, ok)
	assert.Equal(t, 3, w.Familiarity)
	assert.Equal(t, 12, progress.Streak().Streak)
}
