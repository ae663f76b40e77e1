// Package suggest attaches "did you mean" hints to name-resolution errors,
// grounded on the teacher's runtime/planner.go use of
// github.com/lithammer/fuzzysearch/fuzzy to suggest decorator names.
package suggest

import "github.com/lithammer/fuzzysearch/fuzzy"

// Closest returns the candidate with the smallest edit distance among those
// containing name's characters in order (case-insensitively), or "" if no
// candidate does. A transposed typo such as "sqaure" for "square" is not a
// subsequence of the target and so gets no suggestion.
func Closest(name string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(name, candidates)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}
