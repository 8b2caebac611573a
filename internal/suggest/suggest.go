// Package suggest ranks near-miss candidates for unknown command and option
// names, so parse errors can carry a "did you mean" hint.
package suggest

import "github.com/agext/levenshtein"

// maxDistance caps how far a candidate may drift before a hint does more
// harm than good.
const maxDistance = 3

// Closest returns the candidate with the smallest edit distance to the
// input, provided the distance is small relative to the input length.
// Returns false when no candidate is close enough.
func Closest(input string, candidates []string) (string, bool) {
	limit := len(input)/2 + 1
	if limit > maxDistance {
		limit = maxDistance
	}

	best := ""
	bestDist := limit + 1
	for _, cand := range candidates {
		dist := levenshtein.Distance(input, cand, nil)
		if dist < bestDist {
			best = cand
			bestDist = dist
		}
	}
	if bestDist > limit {
		return "", false
	}
	return best, true
}
