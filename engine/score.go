package engine

import "credential-assistant/knowledge"

// MatchThreshold is the minimum Jaccard score a knowledge entry must reach
// to be accepted. Raising it trades false positive matches for more
// fallback-chain invocations.
const MatchThreshold = 0.3

// Jaccard returns the set-similarity score between a query keyword set and an
// entry keyword set: intersection size over union size. An empty union scores
// 0, never NaN.
func Jaccard(query, entry map[string]struct{}) float64 {
	intersection := 0
	for k := range query {
		if _, ok := entry[k]; ok {
			intersection++
		}
	}
	union := len(query) + len(entry) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// SelectBest scans the knowledge base in authoring order and returns the
// highest-scoring entry at or above MatchThreshold. Ties keep the entry seen
// first. Returns false when nothing clears the threshold.
func SelectBest(query map[string]struct{}, base *knowledge.Base) (knowledge.Entry, float64, bool) {
	var best knowledge.Entry
	bestScore := 0.0
	for _, entry := range base.Entries() {
		// Strict improvement only, so the first-seen entry wins ties.
		if score := Jaccard(query, entry.Keywords); score > bestScore {
			bestScore = score
			best = entry
		}
	}
	if bestScore < MatchThreshold {
		return knowledge.Entry{}, bestScore, false
	}
	return best, bestScore, true
}
