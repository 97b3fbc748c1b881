package leaderboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northfold/AuroraBot/internal/domain"
)

func TestFormatXP(t *testing.T) {
	tests := []struct {
		xp   float64
		want string
	}{
		{0, "0"},
		{999.9, "999"},
		{1932, "1,932"},
		{2320092, "2,320,092"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatXP(tt.xp))
	}
}

func TestRenderLevelBoard(t *testing.T) {
	t.Run("empty board has placeholder text", func(t *testing.T) {
		out := RenderLevelBoard(nil)

		assert.Contains(t, out, BoardHeader)
		assert.Contains(t, out, "No users have gained XP yet!")
	})

	t.Run("aligns levels and XP to the widest entry", func(t *testing.T) {
		entries := []domain.LevelProfile{
			{UserID: "a", Username: "astrid", XP: 12345.7, Level: 31},
			{UserID: "b", Username: "bear", XP: 980, Level: 9},
		}

		out := RenderLevelBoard(entries)

		require.True(t, strings.HasPrefix(out, "```\n"+BoardHeader+"\n"))
		require.True(t, strings.HasSuffix(out, "```"))

		lines := strings.Split(out, "\n")
		assert.Equal(t, "31 | 12,345 XP | astrid", lines[2])
		assert.Equal(t, " 9 |    980 XP | bear", lines[3])
	})

	t.Run("fractional XP is floored for display", func(t *testing.T) {
		entries := []domain.LevelProfile{
			{UserID: "a", Username: "astrid", XP: 10.9999, Level: 1},
		}

		out := RenderLevelBoard(entries)
		assert.Contains(t, out, "1 | 10 XP | astrid")
	})
}
