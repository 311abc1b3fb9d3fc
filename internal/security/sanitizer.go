package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.StrictPolicy()

// maxDisplayNameLen caps names embedded in scoreboard messages.
const maxDisplayNameLen = 64

// SanitizeDisplayName strips markup and control bytes from a user-supplied
// name before it is stored on the score sheet. Markdown escaping happens
// separately at the transport edge.
func SanitizeDisplayName(input string) string {
	input = htmlPolicy.Sanitize(input)
	input = strings.ReplaceAll(input, "\x00", "")
	input = strings.TrimSpace(input)

	runes := []rune(input)
	if len(runes) > maxDisplayNameLen {
		input = string(runes[:maxDisplayNameLen])
	}

	if input == "" {
		return "anonymous"
	}
	return input
}
