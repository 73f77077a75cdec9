package cleaner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prepkit/prepkit/pkg/cleaner"
)

func TestCleanHeaders(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "already clean",
			input:    []string{"age", "city"},
			expected: []string{"age", "city"},
		},
		{
			name:     "strips quotes and whitespace",
			input:    []string{" 'age' ", "  city"},
			expected: []string{"age", "city"},
		},
		{
			name:     "duplicates get counted suffixes",
			input:    []string{"x", "x", "x"},
			expected: []string{"x", "x_1", "x_2"},
		},
		{
			name:     "duplicates created by stripping",
			input:    []string{"x", " x "},
			expected: []string{"x", "x_1"},
		},
		{
			name:     "suffix collision advances the counter",
			input:    []string{"x", "x", "x_1"},
			expected: []string{"x", "x_1", "x_1_1"},
		},
		{
			name:     "existing suffix then duplicates",
			input:    []string{"x_1", "x", "x"},
			expected: []string{"x_1", "x", "x_2"},
		},
		{
			name:     "empty input",
			input:    nil,
			expected: []string{},
		},
		{
			name:     "empty names deduplicate too",
			input:    []string{"''", "  "},
			expected: []string{"", "_1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleaner.CleanHeaders(tt.input))
		})
	}
}

func TestCleanHeadersAlwaysDistinct(t *testing.T) {
	inputs := [][]string{
		{"x", "x", "x_1", "x_1", "x_2"},
		{"a", "a", "a", "a_1", "a_2", "a_1_1"},
		{"", "", ""},
	}

	for _, input := range inputs {
		out := cleaner.CleanHeaders(input)
		seen := make(map[string]struct{}, len(out))
		for _, name := range out {
			_, dup := seen[name]
			assert.False(t, dup, "duplicate name %q in %v", name, out)
			seen[name] = struct{}{}
		}
	}
}

func TestCleanHeadersIdempotent(t *testing.T) {
	inputs := [][]string{
		{"x", "x", "x"},
		{" 'a' ", "b", "b"},
		{"x", "x", "x_1"},
	}

	for _, input := range inputs {
		once := cleaner.CleanHeaders(input)
		twice := cleaner.CleanHeaders(once)
		assert.Equal(t, once, twice)
	}
}
