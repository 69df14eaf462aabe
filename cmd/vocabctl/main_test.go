package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"vocabdeck/internal/domain"
	"vocabdeck/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(db)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeBackup(t *testing.T, dir string, words []domain.Word) string {
	t.Helper()
	encoded, err := json.Marshal(words)
	require.NoError(t, err)

	payload := map[string]any{}
	for _, key := range repository.TrackedKeys() {
		payload[key] = nil
	}
	payload[repository.KeyWords] = string(encoded)

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	path := filepath.Join(dir, "backup.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestVocabctl(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("OPENAI_API_KEY", "")
	dir := t.TempDir()
	db := filepath.Join(dir, "data", "vocab.db")

	backup := writeBackup(t, dir, []domain.Word{
		{
			ID: "aaaa1111-0000-0000-0000-000000000000", Word: "audit",
			Definition: "an official inspection", ChineseDefinition: "審計",
			Tags: []string{"finance"}, DueDate: "2000-01-01",
		},
		{
			ID: "bbbb2222-0000-0000-0000-000000000000", Word: "agenda",
			Definition: "a list of items to discuss", ChineseDefinition: "議程",
			DueDate: "2999-01-01", Interval: 2,
		},
	})

	out, err := run(t, db, "import", backup)
	require.NoError(t, err)
	assert.Contains(t, out, "Written: "+repository.KeyWords)
	assert.Contains(t, out, "Words: 2")

	out, err = run(t, db, "due")
	require.NoError(t, err)
	assert.Contains(t, out, "audit")
	assert.NotContains(t, out, "agenda")

	out, err = run(t, db, "review", "aaaa1111", "good")
	require.NoError(t, err)
	assert.Contains(t, out, "audit: next review")
	assert.Contains(t, out, "(interval 1)")

	out, err = run(t, db, "due")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing due today.")

	tests := []struct {
		name     string
		args     []string
		contains string
		excludes string
	}{
		{name: "by tag", args: []string{"words", "--tag", "finance"}, contains: "audit", excludes: "agenda"},
		{name: "by search", args: []string{"words", "-s", "議程"}, contains: "agenda", excludes: "audit"},
		{name: "all", args: []string{"words"}, contains: "2 words"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, db, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.contains)
			if tt.excludes != "" {
				assert.NotContains(t, out, tt.excludes)
			}
		})
	}
}

func TestVocabctl_ReviewArgs(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "UTC")
	db := filepath.Join(t.TempDir(), "vocab.db")

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing rating", args: []string{"review", "aaaa1111"}},
		{name: "unknown rating", args: []string{"review", "aaaa1111", "hard"}},
		{name: "unknown word", args: []string{"review", "zzzz9999", "good"}},
		{name: "short prefix", args: []string{"review", "zz", "good"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, db, tt.args...)
			assert.Error(t, err)
		})
	}
}
