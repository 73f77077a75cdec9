package cleaner

import "regexp"

// Pre-compiled patterns used by the cell cleaning policy.
var (
	// numericLookingRegex matches full strings made only of digits, periods,
	// commas and whitespace (including non-breaking spaces used as thousands
	// separators). No sign, no exponent: "-5" and "1e3" are text.
	numericLookingRegex = regexp.MustCompile(`^[0-9.,\s\p{Zs}]+$`)
)
