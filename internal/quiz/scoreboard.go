package quiz

import (
	"fmt"
	"sort"
	"strings"
)

// rankEntries sorts by score descending. The sort must be stable so equal
// scores keep the order users first appeared on the score sheet.
func rankEntries(entries []ScoreEntry) []ScoreEntry {
	ranked := make([]ScoreEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// RenderScoreboard formats ranked entries as "{rank}. {name}: {score}"
// lines. Display names are expected to already be escaped for the target
// parse mode.
func RenderScoreboard(entries []ScoreEntry) string {
	lines := make([]string, 0, len(entries))
	for rank, entry := range entries {
		lines = append(lines, fmt.Sprintf("%d. %s: %d", rank+1, entry.DisplayName, entry.Score))
	}
	return strings.Join(lines, "\n")
}
