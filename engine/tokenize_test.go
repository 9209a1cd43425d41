package engine

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty_input",
			input: "",
			want:  []string{},
		},
		{
			name:  "whitespace_only",
			input: "   \t\n  ",
			want:  []string{},
		},
		{
			name:  "all_stopwords",
			input: "the and for with how what can",
			want:  []string{},
		},
		{
			name:  "short_tokens_dropped",
			input: "it is ok to go",
			want:  []string{},
		},
		{
			name:  "question_with_stopwords",
			input: "How do I issue a credential?",
			want:  []string{"issue", "credential"},
		},
		{
			name:  "punctuation_stripped",
			input: "non-transferable!",
			want:  []string{"nontransferable"},
		},
		{
			name:  "case_folded",
			input: "MetaMask WALLET Connect",
			want:  []string{"metamask", "wallet", "connect"},
		},
		{
			// Stopwords are recognized after punctuation stripping, so a
			// punctuation-adjacent stopword is still a stopword.
			name:  "stopword_with_trailing_punctuation_dropped",
			input: "the. credential",
			want:  []string{"credential"},
		},
		{
			name:  "punctuation_only_token_dropped",
			input: "wallet --- !!!",
			want:  []string{"wallet"},
		},
		{
			name:  "digits_kept",
			input: "erc721 token 2024",
			want:  []string{"erc721", "token", "2024"},
		},
		{
			name:  "duplicates_preserved",
			input: "verify verify verify",
			want:  []string{"verify", "verify", "verify"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	input := "How does a university verify a credential on Sepolia?"
	first := Tokenize(input)
	second := Tokenize(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Tokenize is not deterministic: %v vs %v", first, second)
	}
}
