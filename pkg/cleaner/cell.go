package cleaner

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/prepkit/prepkit/pkg/frame"
)

// IsNumericLooking reports whether s consists entirely of digits, periods,
// commas and whitespace, with at least one character. Signs and exponents
// are deliberately absent from the character class, so "-5" and "1e3" are
// not numeric-looking.
func IsNumericLooking(s string) bool {
	return numericLookingRegex.MatchString(s)
}

// ParseNumeric applies the decimal-comma convention and parses s as a
// float64: when s contains commas but no period, every comma becomes a
// period first. A false result means s is not a valid number after the
// substitution; callers turn that into a missing cell. The input is
// expected to have passed IsNumericLooking already.
func ParseNumeric(s string) (float64, bool) {
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// CleanCell applies the full cell policy: strip stray quotes and
// whitespace, detect numeric-looking content, and, when coerce is set,
// parse it with failure degrading to a missing cell. Non-text cells pass
// through untouched.
func CleanCell(c frame.Cell, coerce bool) frame.Cell {
	s, ok := c.Text()
	if !ok {
		return c
	}
	v := stripQuotes(s)
	if !IsNumericLooking(v) {
		return frame.Str(v)
	}
	v = removeWhitespace(v)
	if !coerce {
		return frame.Str(v)
	}
	f, ok := ParseNumeric(v)
	if !ok {
		return frame.Missing()
	}
	return frame.Num(f)
}

// stripQuotes removes leading and trailing single quotes and whitespace.
func stripQuotes(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == '\'' || unicode.IsSpace(r)
	})
}

// removeWhitespace drops every whitespace rune, non-breaking spaces
// included.
func removeWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
