package knowledge_test

import (
	"testing"

	"credential-assistant/engine"
	"credential-assistant/knowledge"
)

func TestPlatformEntriesAllMatchable(t *testing.T) {
	// An entry whose question tokenizes to zero keywords can never win a
	// similarity match; the shipped table must not contain one.
	base := knowledge.NewBase(knowledge.Platform(), engine.Tokenize)
	for _, entry := range base.Entries() {
		if len(entry.Keywords) == 0 {
			t.Errorf("entry %q derives no keywords and is dead to scoring", entry.Question)
		}
		if entry.Answer == "" {
			t.Errorf("entry %q has an empty answer", entry.Question)
		}
		if entry.Topic == "" {
			t.Errorf("entry %q has no topic", entry.Question)
		}
	}
}

func TestZeroKeywordEntryIsKeptButUnmatchable(t *testing.T) {
	base := knowledge.NewBase([]knowledge.QA{
		{Topic: "t", Question: "can i do it", Answer: "stopword-only question"},
		{Topic: "t", Question: "issue credential", Answer: "real question"},
	}, engine.Tokenize)

	if base.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", base.Len())
	}
	dead := base.Entries()[0]
	if len(dead.Keywords) != 0 {
		t.Fatalf("expected a zero-keyword entry, got %v", dead.Keywords)
	}
	// Even a perfect echo of the dead question cannot reach it via scoring.
	query := map[string]struct{}{}
	for _, tok := range engine.Tokenize(dead.Question) {
		query[tok] = struct{}{}
	}
	if engine.Jaccard(query, dead.Keywords) != 0 {
		t.Error("zero-keyword entry scored above 0")
	}
}

func TestIterationOrderIsAuthoringOrder(t *testing.T) {
	base := knowledge.NewBase(knowledge.Platform(), engine.Tokenize)
	pairs := knowledge.Platform()
	for i, entry := range base.Entries() {
		if entry.Question != pairs[i].Question {
			t.Fatalf("entry %d is %q, want %q", i, entry.Question, pairs[i].Question)
		}
	}
}

func TestLookup(t *testing.T) {
	base := knowledge.NewBase(knowledge.Platform(), engine.Tokenize)

	entry, ok := base.Lookup(knowledge.QuestionIssueRequirements)
	if !ok {
		t.Fatalf("Lookup(%q) missed", knowledge.QuestionIssueRequirements)
	}
	if entry.Topic != knowledge.TopicIssuance {
		t.Errorf("topic = %q, want %q", entry.Topic, knowledge.TopicIssuance)
	}

	if _, ok := base.Lookup("no such question"); ok {
		t.Error("Lookup found a nonexistent question")
	}
}

func TestFallbackAnswerKeysExist(t *testing.T) {
	base := knowledge.NewBase(knowledge.Platform(), engine.Tokenize)
	for _, key := range []string{
		knowledge.QuestionIssueRequirements,
		knowledge.QuestionVerifyCredential,
		knowledge.QuestionNonTransferable,
		knowledge.QuestionShareLinkExpiry,
		knowledge.QuestionSwitchNetwork,
		knowledge.QuestionIPFSDowntime,
		knowledge.QuestionPricingPlans,
		knowledge.QuestionPrivateKeys,
		knowledge.QuestionApproveRequests,
		knowledge.QuestionRevokeCredential,
		knowledge.QuestionWalletNotConnected,
	} {
		if _, ok := base.Lookup(key); !ok {
			t.Errorf("fallback answer key %q is not in the knowledge base", key)
		}
	}
}
