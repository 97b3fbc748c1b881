package leaderboard

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/northfold/AuroraBot/internal/domain"
)

var numberPrinter = message.NewPrinter(language.English)

// FormatXP renders a cumulative XP total as a comma-grouped whole number.
func FormatXP(xp float64) string {
	return numberPrinter.Sprintf("%d", int64(math.Floor(xp)))
}

// FormatCount renders a message count with comma grouping.
func FormatCount(n int64) string {
	return numberPrinter.Sprintf("%d", n)
}

// RenderLevelBoard renders the pinned level board as a code block. Levels
// and XP totals are right-aligned to the widest entry.
func RenderLevelBoard(entries []domain.LevelProfile) string {
	if len(entries) == 0 {
		return EmptyBoardText
	}

	levelWidth, xpWidth := 1, 1
	for _, e := range entries {
		if w := len(fmt.Sprintf("%d", e.Level)); w > levelWidth {
			levelWidth = w
		}
		if w := len(FormatXP(e.XP)); w > xpWidth {
			xpWidth = w
		}
	}

	var b strings.Builder
	b.WriteString("```\n")
	b.WriteString(BoardHeader)
	b.WriteString("\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%*d | %*s XP | %s\n", levelWidth, e.Level, xpWidth, FormatXP(e.XP), e.Username)
	}
	b.WriteString("```")
	return b.String()
}
