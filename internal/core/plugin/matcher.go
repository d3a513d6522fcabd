package plugin

import "strings"

// Score computes a plugin's trigger match score for a query: the sum of the
// character lengths of every trigger that appears as a substring of the
// lowercased query. Longer, more specific trigger phrases therefore dominate
// shorter generic ones without a weighting table.
//
// Matching is plain substring containment, not tokenized: a query containing
// the trigger inside a larger word ("test" in "testimony") still counts.
// That is a known, accepted limitation of the matching model, relied on by
// callers for ranking stability.
func Score(query string, triggers []string) int {
	lowered := strings.ToLower(query)
	score := 0
	for _, trigger := range triggers {
		if trigger == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(trigger)) {
			score += len(trigger)
		}
	}
	return score
}
