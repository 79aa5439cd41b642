package grouping

import (
	"sort"
	"strings"
)

// NameDelimiter separates family name and given name in roster entries.
const NameDelimiter = ", "

// GivenName returns the part of a "Last, First" name after the first delimiter.
func GivenName(name string) (string, bool) {
	_, given, ok := strings.Cut(name, NameDelimiter)
	return given, ok
}

// Normalize sorts roster names by given name while keeping the "Last, First"
// display form. Ties keep their input order. The input slice is not modified.
func Normalize(names []string) ([]string, error) {
	keys := make([]string, len(names))
	for i, name := range names {
		given, ok := GivenName(name)
		if !ok {
			return nil, &InputFormatError{Index: i, Name: name}
		}
		keys[i] = given
	}

	order := make([]int, len(names))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]] < keys[order[b]]
	})

	sorted := make([]string, len(names))
	for i, idx := range order {
		sorted[i] = names[idx]
	}
	return sorted, nil
}
