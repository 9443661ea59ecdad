package view

import (
	"reflect"
	"strings"
)

// maxSuggestDistance bounds how far a field name may be from the requested
// one before suggesting it would be noise.
const maxSuggestDistance = 2

// closestField returns the exported field name nearest to name by edit
// distance, or "" when nothing is within maxSuggestDistance.
func closestField(t reflect.Type, name string) string {
	best := ""
	bestDist := maxSuggestDistance + 1

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		d := levenshtein(strings.ToLower(name), strings.ToLower(f.Name))
		if d < bestDist {
			best, bestDist = f.Name, d
		}
	}

	return best
}

// levenshtein computes the edit distance between two strings using two
// rolling rows.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Keep a as the shorter string so the rows stay small.
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}
