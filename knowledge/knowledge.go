package knowledge

// QA is a hand-authored question/answer pair before keyword derivation.
type QA struct {
	Topic    string
	Question string
	Answer   string
}

// Entry is a single knowledge base entry with its derived keyword set.
// Entries are immutable after construction.
type Entry struct {
	Topic    string
	Question string
	Answer   string
	Keywords map[string]struct{}
}

// Base is the read-only question/answer table the assistant matches against.
// Iteration order is authoring order, stable for the process lifetime. A Base
// is safe for unsynchronized concurrent reads since it is never mutated after
// construction.
type Base struct {
	entries    []Entry
	byQuestion map[string]int
}

// NewBase builds a Base from authored pairs, deriving each entry's keyword
// set once via the supplied tokenizer. A pair whose question tokenizes to
// zero keywords is kept but can never win a similarity match; it stays
// reachable through fallback rules only.
func NewBase(pairs []QA, tokenize func(string) []string) *Base {
	base := &Base{
		entries:    make([]Entry, 0, len(pairs)),
		byQuestion: make(map[string]int, len(pairs)),
	}
	for _, qa := range pairs {
		keywords := make(map[string]struct{})
		for _, tok := range tokenize(qa.Question) {
			keywords[tok] = struct{}{}
		}
		base.byQuestion[qa.Question] = len(base.entries)
		base.entries = append(base.entries, Entry{
			Topic:    qa.Topic,
			Question: qa.Question,
			Answer:   qa.Answer,
			Keywords: keywords,
		})
	}
	return base
}

// Entries returns the entries in authoring order. Callers must not mutate.
func (b *Base) Entries() []Entry {
	return b.entries
}

// Lookup returns the entry for a canonical question string.
func (b *Base) Lookup(question string) (Entry, bool) {
	idx, ok := b.byQuestion[question]
	if !ok {
		return Entry{}, false
	}
	return b.entries[idx], true
}

// Len returns the number of entries.
func (b *Base) Len() int {
	return len(b.entries)
}
