package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "word page", input: "wpage_2", expected: "wpage_2"},
		{name: "telebot prefix", input: "\fdpage_3", expected: "dpage_3"},
		{name: "padded", input: "  main_menu  ", expected: "main_menu"},
		{name: "control bytes", input: "wpage\x00_1\x01", expected: "wpage_1"},
		{name: "empty", input: "", expected: ""},
		{name: "only prefix", input: "\f", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}
