package engine

import (
	"strings"

	"credential-assistant/knowledge"
)

// EmptyInputMessage is returned for blank input without consulting the
// knowledge base.
const EmptyInputMessage = "Sorry, I didn't catch that. Could you rephrase?"

// DeflectionMessage is the terminal fallback when neither scoring nor the
// rule chain produces an answer. The pipeline has no "no answer" state.
const DeflectionMessage = "I couldn't find a perfect match, but based on our conversation, here's what might help. For more, ask about issuing credentials, verification, SBTs, wallets, security, or plans. What's next?"

// fallbackRule maps substring predicates to a canonical knowledge base
// question whose answer is returned when the rule fires.
type fallbackRule struct {
	substrings []string
	answerKey  string
}

// fallbackRules is evaluated top to bottom against the lowercased raw
// utterance; the first rule with a matching substring wins.
var fallbackRules = []fallbackRule{
	{[]string{"issue", "mint", "create credential"}, knowledge.QuestionIssueRequirements},
	{[]string{"verify", "check", "validate"}, knowledge.QuestionVerifyCredential},
	{[]string{"soulbound", "sbt", "non-transferable"}, knowledge.QuestionNonTransferable},
	{[]string{"share", "link", "qr"}, knowledge.QuestionShareLinkExpiry},
	{[]string{"wallet", "connect", "metamask"}, knowledge.QuestionSwitchNetwork},
	{[]string{"ipfs", "file", "upload"}, knowledge.QuestionIPFSDowntime},
	{[]string{"plan", "price", "subscription"}, knowledge.QuestionPricingPlans},
	{[]string{"security", "private key", "safe"}, knowledge.QuestionPrivateKeys},
	{[]string{"admin", "approve"}, knowledge.QuestionApproveRequests},
	{[]string{"revoke", "cancel credential"}, knowledge.QuestionRevokeCredential},
	{[]string{"trouble", "error", "failed"}, knowledge.QuestionWalletNotConnected},
}

// resolveFallback applies the ordered rule chain to the raw utterance.
// Returns the bound entry and true on the first substring hit.
func resolveFallback(utterance string, base *knowledge.Base) (knowledge.Entry, bool) {
	lower := strings.ToLower(utterance)
	for _, rule := range fallbackRules {
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				entry, ok := base.Lookup(rule.answerKey)
				return entry, ok
			}
		}
	}
	return knowledge.Entry{}, false
}
