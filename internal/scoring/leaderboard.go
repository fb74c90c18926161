package scoring

import (
	"fmt"
	"strings"

	"github.com/mauv0809/wordle-tally/internal/wordle"
)

// BuildLeaderboard renders an already-ranked entry list as numbered plain
// text. Ranks increase by exactly one per line, ties included.
func BuildLeaderboard(entries []wordle.LeaderboardEntry, limit int) string {
	var b strings.Builder
	for pos, entry := range entries {
		if pos >= limit {
			break
		}
		fmt.Fprintf(&b, "%d. <@%s>: %d points\n", pos+1, entry.PlayerID, entry.Points)
	}
	return strings.TrimRight(b.String(), "\n")
}
