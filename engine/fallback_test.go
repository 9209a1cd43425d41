package engine

import (
	"testing"

	"credential-assistant/knowledge"
)

func TestResolveFallback(t *testing.T) {
	base := knowledge.NewBase(knowledge.Platform(), Tokenize)

	tests := []struct {
		name      string
		utterance string
		wantKey   string
		wantHit   bool
	}{
		{"issuance", "how to MINT my degree", knowledge.QuestionIssueRequirements, true},
		{"verification", "need to check authenticity", knowledge.QuestionVerifyCredential, true},
		{"soulbound", "tell me about sbt", knowledge.QuestionNonTransferable, true},
		{"sharing", "generate a qr please", knowledge.QuestionShareLinkExpiry, true},
		{"wallet", "metamask acting weird", knowledge.QuestionSwitchNetwork, true},
		{"pricing", "what does a subscription cost", knowledge.QuestionPricingPlans, true},
		{"revocation", "revoke it now", knowledge.QuestionRevokeCredential, true},
		{"trouble", "something failed", knowledge.QuestionWalletNotConnected, true},
		{"no_match", "zzz qqq", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := resolveFallback(tt.utterance, base)
			if ok != tt.wantHit {
				t.Fatalf("resolveFallback(%q) hit = %v, want %v", tt.utterance, ok, tt.wantHit)
			}
			if ok && entry.Question != tt.wantKey {
				t.Errorf("resolveFallback(%q) = %q, want %q", tt.utterance, entry.Question, tt.wantKey)
			}
		})
	}
}

func TestResolveFallbackPriorityOrder(t *testing.T) {
	base := knowledge.NewBase(knowledge.Platform(), Tokenize)

	// "verify" (verification rule) outranks "share" (sharing rule); the chain
	// short-circuits on the first hit.
	entry, ok := resolveFallback("verify and share please", base)
	if !ok {
		t.Fatal("expected a fallback hit")
	}
	if entry.Question != knowledge.QuestionVerifyCredential {
		t.Errorf("got %q, want the verification rule to win", entry.Question)
	}

	// Issuance is the very first rule and beats everything after it.
	entry, ok = resolveFallback("issue then verify then share", base)
	if !ok {
		t.Fatal("expected a fallback hit")
	}
	if entry.Question != knowledge.QuestionIssueRequirements {
		t.Errorf("got %q, want the issuance rule to win", entry.Question)
	}
}
