package cleaner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prepkit/prepkit/pkg/cleaner"
	"github.com/prepkit/prepkit/pkg/frame"
)

func TestIsNumericLooking(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"plain integer", "1234", true},
		{"decimal point", "1234.56", true},
		{"decimal comma", "1234,56", true},
		{"internal spaces", "1 234 567", true},
		{"tab separated", "1\t234", true},
		{"non-breaking space", "1 234", true},
		{"commas and periods", "1,234.56", true},
		{"only separators", ".,", true},
		{"empty string", "", false},
		{"plain word", "hello", false},
		{"negative sign", "-5", false},
		{"exponent", "1e3", false},
		{"currency prefix", "$100", false},
		{"trailing unit", "12kg", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleaner.IsNumericLooking(tt.input))
		})
	}
}

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		ok       bool
	}{
		{"integer", "1234", 1234, true},
		{"decimal point", "1234.56", 1234.56, true},
		{"comma becomes decimal point", "1234,56", 1234.56, true},
		{"comma only when no period", "1,234.56", 0, false},
		{"several commas all replaced", "1,2,3", 0, false},
		{"several periods", "1.2.3", 0, false},
		{"bare period", ".", 0, false},
		{"leading period", ".5", 0.5, true},
		{"empty string", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := cleaner.ParseNumeric(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, v, 1e-12)
			}
		})
	}
}

func TestCleanCell(t *testing.T) {
	tests := []struct {
		name     string
		input    frame.Cell
		coerce   bool
		expected frame.Cell
	}{
		{"quoted decimal comma coerced", frame.Str("' 1 234,56 '"), true, frame.Num(1234.56)},
		{"quoted decimal comma kept as text", frame.Str("' 1 234,56 '"), false, frame.Str("1234,56")},
		{"plain word unchanged", frame.Str("hello"), true, frame.Str("hello")},
		{"padded word stripped", frame.Str("  hello '"), true, frame.Str("hello")},
		{"unparseable numeric looking becomes missing", frame.Str("1,2,3"), true, frame.Missing()},
		{"unparseable kept as text without coercion", frame.Str("1,2,3"), false, frame.Str("1,2,3")},
		{"us style grouping becomes missing", frame.Str("1,234.56"), true, frame.Missing()},
		{"integer", frame.Str("42"), true, frame.Num(42)},
		{"negative stays text", frame.Str("-5"), true, frame.Str("-5")},
		{"exponent stays text", frame.Str("1e3"), true, frame.Str("1e3")},
		{"quotes only become empty text", frame.Str("''"), true, frame.Str("")},
		{"whitespace only becomes empty text", frame.Str("   "), true, frame.Str("")},
		{"non breaking space grouping", frame.Str("1 234,56"), true, frame.Num(1234.56)},
		{"numeric cell passes through", frame.Num(7), true, frame.Num(7)},
		{"missing cell passes through", frame.Missing(), true, frame.Missing()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleaner.CleanCell(tt.input, tt.coerce))
		})
	}
}

func TestCleanCellIdempotent(t *testing.T) {
	inputs := []frame.Cell{
		frame.Str("hello"),
		frame.Str("1234,56"),
		frame.Str(""),
		frame.Num(1234.56),
		frame.Missing(),
	}

	for _, coerce := range []bool{true, false} {
		for _, in := range inputs {
			once := cleaner.CleanCell(in, coerce)
			twice := cleaner.CleanCell(once, coerce)
			assert.Equal(t, once, twice)
		}
	}
}
