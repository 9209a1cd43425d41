package format

import (
	"strings"
	"testing"
)

func TestPreprocessAssistantText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "no changes here", "no changes here"},
		{"curly_double_quotes", "say “hello” now", "say \"hello\" now"},
		{"curly_single_quotes", "it’s ‘fine’", "it's 'fine'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PreprocessAssistantText(tt.input); got != tt.want {
				t.Errorf("PreprocessAssistantText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderAnswerBold(t *testing.T) {
	got := RenderAnswer("Connect your **MetaMask** wallet first.")
	if !strings.Contains(got, "<strong>MetaMask</strong>") {
		t.Errorf("RenderAnswer() = %q, want bold markup", got)
	}
}

func TestRenderAnswerNewlinesBecomeParagraphs(t *testing.T) {
	got := RenderAnswer("First step.\nSecond step.")
	if strings.Count(got, "<p>") < 2 {
		t.Errorf("RenderAnswer() = %q, want two paragraphs", got)
	}
}
