package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *KVRepo {
	t.Helper()
	repo, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestKVRepo_GetMissing(t *testing.T) {
	repo := newTestRepo(t)

	value, found, err := repo.Get("toeic_vocabulary_words")

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestKVRepo_SetOverwrites(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Set("learning_activity_log", `{"2026-10-13":4}`))
	require.NoError(t, repo.Set("learning_activity_log", `{"2026-10-14":1}`))

	value, found, err := repo.Get("learning_activity_log")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"2026-10-14":1}`, value)
}

func TestKVRepo_Delete(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Set("ai_daily_study_plan", "{}"))
	require.NoError(t, repo.Delete("ai_daily_study_plan"))
	require.NoError(t, repo.Delete("never_set"))

	_, found, err := repo.Get("ai_daily_study_plan")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestKVRepo_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.db")

	repo, err := New(path)
	require.NoError(t, err)
	require.NoError(t, repo.Set("toeic_topic_packs", "[]"))
	require.NoError(t, repo.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, found, err := reopened.Get("toeic_topic_packs")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", value)
}
