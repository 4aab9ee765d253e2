package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already normalized", input: "hello world", expected: "hello world"},
		{name: "collapses inner whitespace", input: "Hello   World", expected: "hello world"},
		{name: "trims surrounding whitespace", input: "  Hello World  ", expected: "hello world"},
		{name: "mixed whitespace kinds", input: "Hello\t\nWorld", expected: "hello world"},
		{name: "only whitespace", input: " \t \n ", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestKeyStability(t *testing.T) {
	t.Parallel()

	const sourceID = "3f1f9af2-5df6-4f42-9c2a-8f9e6cb1a001"

	// The same source and text must collide regardless of case and spacing.
	want := Key(sourceID, "Hello   World")
	assert.Equal(t, want, Key(sourceID, "hello world"))
	assert.Equal(t, want, Key(sourceID, "  Hello World  "))
	assert.Equal(t, sourceID+"::hello world", want)
}

func TestKeyEmptyCases(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Key("", "hello"))
	assert.Empty(t, Key("3f1f9af2-5df6-4f42-9c2a-8f9e6cb1a001", "   "))
	assert.Empty(t, Key("", ""))
}

func TestKeyDiffersAcrossSources(t *testing.T) {
	t.Parallel()

	a := Key("source-a", "same text")
	b := Key("source-b", "same text")
	assert.NotEqual(t, a, b)
}
