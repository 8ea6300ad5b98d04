// Package suggest proposes the closest known command name for a word that
// failed to dispatch.
package suggest

import "strings"

// Nearest returns the candidate closest to input by edit distance, if any
// candidate is close enough to be a plausible typo. The allowed distance
// scales with input length so short words only match near-exact candidates.
func Nearest(input string, candidates []string) (string, bool) {
	if len(input) < 2 {
		return "", false
	}

	max := 1
	switch {
	case len(input) > 8:
		max = 3
	case len(input) >= 4:
		max = 2
	}

	best := ""
	bestDist := max + 1
	in := strings.ToLower(input)
	for _, c := range candidates {
		d := levenshtein(in, strings.ToLower(c))
		if d < bestDist {
			best = c
			bestDist = d
		}
	}
	if bestDist > max {
		return "", false
	}
	return best, true
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

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
