package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDay_DateString(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "date 2024-12-12",
			date:     time.Date(2024, 12, 12, 10, 0, 0, 0, time.UTC),
			expected: "2024-12-12",
		},
		{
			name:     "date 2024-01-01",
			date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "2024-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := Day{Date: tt.date}
			assert.Equal(t, tt.expected, day.DateString())
		})
	}
}

func TestDay_DisplayString(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "today",
			date:     now,
			expected: "今天",
		},
		{
			name:     "yesterday",
			date:     now.AddDate(0, 0, -1),
			expected: "昨天",
		},
		{
			name:     "same year",
			date:     time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
			expected: "6月15日",
		},
		{
			name:     "previous year",
			date:     time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			expected: "2025年12月31日",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := Day{Date: tt.date}
			assert.Equal(t, tt.expected, day.DisplayString(now))
		})
	}
}

func TestDay_Bar(t *testing.T) {
	assert.Equal(t, "⬜", Day{ReviewCount: 0}.Bar())
	assert.Equal(t, "🟩", Day{ReviewCount: 3}.Bar())
	assert.Equal(t, "🟩🟩", Day{ReviewCount: 10}.Bar())
	assert.Equal(t, "🟩🟩🟩", Day{ReviewCount: 40}.Bar())
}
