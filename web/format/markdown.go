package format

import (
	"strings"

	"github.com/gomarkdown/markdown"
)

// PreprocessAssistantText normalizes assistant output.
// Performs basic text cleanup for better readability.
func PreprocessAssistantText(text string) string {
	if text == "" {
		return text
	}

	// Replace curly quotes (helps readability)
	text = strings.NewReplacer(
		"“", "\"", // "
		"”", "\"", // "
		"‘", "'", // '
		"’", "'", // '
	).Replace(text)

	return text
}

// RenderAnswer converts a markdown-authored knowledge base answer to HTML for
// the chat payload. Bare newlines in answers are hard breaks, not paragraph
// joins, so they are doubled before rendering.
func RenderAnswer(text string) string {
	text = PreprocessAssistantText(text)
	text = strings.ReplaceAll(text, "\n", "\n\n")
	return string(markdown.ToHTML([]byte(text), nil, nil))
}
