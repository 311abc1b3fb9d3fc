package utils

import "crypto/rand"

const runIDCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewRunID generates a short random identifier for one quiz run. Callback
// payloads carry it so that buttons left over from a previous run are
// recognized as stale.
func NewRunID(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	for i := range b {
		b[i] = runIDCharset[int(b[i])%len(runIDCharset)]
	}
	return string(b)
}
