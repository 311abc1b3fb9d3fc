package utils

import "strings"

// markdownEscaper covers the special characters of Telegram's legacy
// Markdown parse mode.
var markdownEscaper = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"`", "\\`",
	"[", "\\[",
)

// EscapeMarkdown escapes text for safe embedding in a Markdown message.
func EscapeMarkdown(input string) string {
	return markdownEscaper.Replace(input)
}

// TruncateText cuts input to at most max runes.
func TruncateText(input string, max int) string {
	runes := []rune(input)
	if len(runes) <= max {
		return input
	}
	return string(runes[:max])
}
