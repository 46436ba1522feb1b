package profanity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher_ContainsDisallowed(t *testing.T) {
	m := NewMatcher([]string{"damn", "Hell"})

	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{name: "clean text", text: "have a nice day", expected: false},
		{name: "listed word", text: "damn it", expected: true},
		{name: "case insensitive text", text: "DAMN it", expected: true},
		{name: "case insensitive list entry", text: "go to hell", expected: true},
		{name: "word inside punctuation", text: "well, damn!", expected: true},
		{name: "substring is not a match", text: "the dam broke", expected: false},
		{name: "empty text", text: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.ContainsDisallowed(tt.text))
		})
	}
}

func TestMatcher_EmptyList(t *testing.T) {
	m := NewMatcher(nil)

	assert.False(t, m.ContainsDisallowed("anything goes"))
}

func TestMatcher_IgnoresBlankEntries(t *testing.T) {
	m := NewMatcher([]string{"  ", "", "damn "})

	assert.True(t, m.ContainsDisallowed("damn"))
	assert.False(t, m.ContainsDisallowed(""))
}
