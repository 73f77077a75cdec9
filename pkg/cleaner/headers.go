package cleaner

import "fmt"

// CleanHeaders strips stray quotes and whitespace from column names and
// makes the result pairwise distinct. The first occurrence of a name keeps
// it verbatim; the n-th occurrence gets an _{n-1} suffix. When a suffixed
// candidate is itself already taken, the counter keeps advancing, so the
// output never contains duplicates even for inputs like [x, x, x_1].
func CleanHeaders(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]int, len(names))
	used := make(map[string]struct{}, len(names))

	for _, name := range names {
		base := stripQuotes(name)
		count := seen[base]
		candidate := base
		if count > 0 {
			candidate = fmt.Sprintf("%s_%d", base, count)
		}
		for {
			if _, taken := used[candidate]; !taken {
				break
			}
			count++
			candidate = fmt.Sprintf("%s_%d", base, count)
		}
		seen[base] = count + 1
		used[candidate] = struct{}{}
		out = append(out, candidate)
	}
	return out
}
