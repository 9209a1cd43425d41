package engine

import (
	"testing"

	"credential-assistant/knowledge"
)

func set(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name  string
		query map[string]struct{}
		entry map[string]struct{}
		want  float64
	}{
		{"both_empty", set(), set(), 0},
		{"empty_query", set(), set("issue"), 0},
		{"disjoint", set("wallet"), set("issue", "credential"), 0},
		{"identical", set("issue", "credential"), set("issue", "credential"), 1},
		{"half_overlap", set("issue", "credential"), set("issue", "credential", "required", "information"), 0.5},
		{"single_shared", set("revoke"), set("revoke", "credential"), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Jaccard(tt.query, tt.entry); got != tt.want {
				t.Errorf("Jaccard() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectBestThresholdBoundary(t *testing.T) {
	// Entry derives 7 keywords.
	base := knowledge.NewBase([]knowledge.QA{
		{Topic: "t", Question: "alpha beta gamma delta epsilon zeta eta", Answer: "boundary answer"},
	}, Tokenize)

	// 3 shared, union 10: exactly the acceptance threshold.
	atThreshold := set("alpha", "beta", "gamma", "foo1", "bar2", "baz3")
	entry, score, ok := SelectBest(atThreshold, base)
	if !ok {
		t.Fatalf("SelectBest rejected a score of exactly %v", score)
	}
	if score != MatchThreshold {
		t.Errorf("score = %v, want %v", score, MatchThreshold)
	}
	if entry.Answer != "boundary answer" {
		t.Errorf("unexpected entry %q", entry.Question)
	}

	// 3 shared, union 11: just below the threshold.
	belowThreshold := set("alpha", "beta", "gamma", "foo1", "bar2", "baz3", "qux4")
	if _, score, ok := SelectBest(belowThreshold, base); ok {
		t.Errorf("SelectBest accepted sub-threshold score %v", score)
	}
}

func TestSelectBestTieBreakFirstSeen(t *testing.T) {
	base := knowledge.NewBase([]knowledge.QA{
		{Topic: "t", Question: "orchid tulip", Answer: "first"},
		{Topic: "t", Question: "orchid daisy", Answer: "second"},
	}, Tokenize)

	query := set("orchid")
	for i := 0; i < 20; i++ {
		entry, _, ok := SelectBest(query, base)
		if !ok {
			t.Fatal("SelectBest found no match")
		}
		if entry.Answer != "first" {
			t.Fatalf("run %d: tie broke to %q, want the earlier entry", i, entry.Answer)
		}
	}
}

func TestSelectBestPrefersHigherScore(t *testing.T) {
	base := knowledge.NewBase([]knowledge.QA{
		{Topic: "t", Question: "orchid tulip daisy rose", Answer: "diluted"},
		{Topic: "t", Question: "orchid tulip", Answer: "exact"},
	}, Tokenize)

	entry, _, ok := SelectBest(set("orchid", "tulip"), base)
	if !ok {
		t.Fatal("SelectBest found no match")
	}
	if entry.Answer != "exact" {
		t.Errorf("best entry = %q, want %q", entry.Answer, "exact")
	}
}

func TestSelectBestEmptyQuery(t *testing.T) {
	base := knowledge.NewBase(knowledge.Platform(), Tokenize)
	if _, score, ok := SelectBest(set(), base); ok || score != 0 {
		t.Errorf("empty query matched with score %v", score)
	}
}
