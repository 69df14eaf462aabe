package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetAndGet(t *testing.T) {
	s := New()

	_, found, err := s.Get("toeic_vocabulary_words")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set("toeic_vocabulary_words", "[]"))
	value, found, err := s.Get("toeic_vocabulary_words")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", value)
	assert.Equal(t, 1, s.Writes())
}

func TestStore_FailWrites(t *testing.T) {
	s := NewWith(map[string]string{"toeic_topic_packs": "[]"})
	s.FailWrites = errors.New("quota exceeded")

	assert.EqualError(t, s.Set("toeic_topic_packs", `[{"id":"p1"}]`), "quota exceeded")
	assert.EqualError(t, s.Delete("toeic_topic_packs"), "quota exceeded")

	assert.Equal(t, map[string]string{"toeic_topic_packs": "[]"}, s.Snapshot())
	assert.Zero(t, s.Writes())
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := NewWith(map[string]string{"a": "1"})

	snap := s.Snapshot()
	snap["a"] = "2"

	value, _, _ := s.Get("a")
	assert.Equal(t, "1", value)
}
