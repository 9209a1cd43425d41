package engine

// Context blending limits. historyWindow bounds how many trailing user
// utterances contribute; historyKeywordCap bounds how many distinct keywords
// they may add in total. Current-utterance keywords are never capped.
const (
	historyWindow     = 3
	historyKeywordCap = 5
)

// Aggregate unions the current utterance's keywords with a capped set of
// keywords drawn from the most recent history entries. History keywords are
// deduplicated and truncated earliest-first: the first historyKeywordCap
// distinct tokens encountered in scan order win.
func Aggregate(current string, history []string) map[string]struct{} {
	keywords := make(map[string]struct{})
	for _, tok := range Tokenize(current) {
		keywords[tok] = struct{}{}
	}

	start := len(history) - historyWindow
	if start < 0 {
		start = 0
	}
	seen := make(map[string]struct{}, historyKeywordCap)
	for _, utterance := range history[start:] {
		for _, tok := range Tokenize(utterance) {
			if _, dup := seen[tok]; dup {
				continue
			}
			if len(seen) >= historyKeywordCap {
				return keywords
			}
			seen[tok] = struct{}{}
			keywords[tok] = struct{}{}
		}
	}
	return keywords
}
