package survival

import (
	"fmt"
	"sort"
	"strings"

	"github.com/northfold/AuroraBot/internal/domain"
)

// RenderBoard renders the survival board as a code block: one section per
// difficulty in display order, longest runs first. Day, hour and minute
// columns are right-aligned to the widest value across all entries.
func RenderBoard(entries []domain.ScoreEntry) string {
	grouped := make(map[string][]domain.ScoreEntry, len(domain.Difficulties))
	for _, e := range entries {
		grouped[e.Difficulty] = append(grouped[e.Difficulty], e)
	}
	for _, bucket := range grouped {
		sort.Slice(bucket, func(i, j int) bool {
			if bucket[i].TotalMinutes() != bucket[j].TotalMinutes() {
				return bucket[i].TotalMinutes() > bucket[j].TotalMinutes()
			}
			return bucket[i].UserID < bucket[j].UserID
		})
	}

	dayWidth, hourWidth, minuteWidth := 1, 1, 1
	for _, e := range entries {
		if w := len(fmt.Sprintf("%d", e.Day)); w > dayWidth {
			dayWidth = w
		}
		if w := len(fmt.Sprintf("%d", e.Hour)); w > hourWidth {
			hourWidth = w
		}
		if w := len(fmt.Sprintf("%d", e.Minute)); w > minuteWidth {
			minuteWidth = w
		}
	}

	var b strings.Builder
	b.WriteString("```\n")
	for _, diff := range domain.Difficulties {
		b.WriteString(diff)
		b.WriteString(":\n")
		for _, e := range grouped[diff] {
			fmt.Fprintf(&b, "%*dD %*dH %*dM | %s\n",
				dayWidth, e.Day, hourWidth, e.Hour, minuteWidth, e.Minute, e.Username)
		}
		b.WriteString("\n")
	}
	b.WriteString("```")
	return b.String()
}
