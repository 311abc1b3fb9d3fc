package security

import (
	"strings"
	"testing"
)

func TestSanitizeDisplayName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Plain name",
			input: "Alice",
			want:  "Alice",
		},
		{
			name:  "Surrounding whitespace",
			input: "  Bob  ",
			want:  "Bob",
		},
		{
			name:  "HTML stripped",
			input: "<b>Eve</b><script>alert(1)</script>",
			want:  "Eve",
		},
		{
			name:  "Null bytes removed",
			input: "Ma\x00llory",
			want:  "Mallory",
		},
		{
			name:  "Empty becomes placeholder",
			input: "   ",
			want:  "anonymous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeDisplayName(tt.input); got != tt.want {
				t.Errorf("SanitizeDisplayName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeDisplayName_Truncates(t *testing.T) {
	long := strings.Repeat("x", 200)
	got := SanitizeDisplayName(long)
	if len([]rune(got)) != maxDisplayNameLen {
		t.Errorf("len = %d, want %d", len([]rune(got)), maxDisplayNameLen)
	}
}
