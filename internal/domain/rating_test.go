package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRating(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      Rating
		expectedError bool
	}{
		{name: "again", input: "again", expected: RatingAgain},
		{name: "good uppercase", input: "GOOD", expected: RatingGood},
		{name: "easy with spaces", input: " easy ", expected: RatingEasy},
		{name: "unknown", input: "hard", expectedError: true},
		{name: "empty", input: "", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRating(tt.input)
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestWord_CloneIsIndependent(t *testing.T) {
	analysis := "note"
	w := Word{
		ID:               "1",
		Tags:             []string{"a"},
		SentenceAnalysis: &analysis,
	}

	c := w.Clone()
	c.Tags[0] = "b"
	*c.SentenceAnalysis = "changed"

	assert.Equal(t, "a", w.Tags[0])
	assert.Equal(t, "note", *w.SentenceAnalysis)
	assert.True(t, w.HasTag("a"))
	assert.False(t, w.HasTag("b"))
}
