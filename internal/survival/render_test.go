package survival

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northfold/AuroraBot/internal/domain"
)

func TestRenderBoard(t *testing.T) {
	t.Run("empty board still lists every difficulty", func(t *testing.T) {
		out := RenderBoard(nil)

		for _, diff := range domain.Difficulties {
			assert.Contains(t, out, diff+":")
		}
		assert.True(t, strings.HasPrefix(out, "```"))
		assert.True(t, strings.HasSuffix(out, "```"))
	})

	t.Run("groups by difficulty in display order", func(t *testing.T) {
		entries := []domain.ScoreEntry{
			{UserID: "a", Username: "astrid", Day: 3, Hour: 2, Minute: 1, Difficulty: domain.DifficultyPilgrim},
			{UserID: "b", Username: "bear", Day: 50, Hour: 11, Minute: 40, Difficulty: domain.DifficultyMisery},
		}

		out := RenderBoard(entries)

		miseryIdx := strings.Index(out, domain.DifficultyMisery+":")
		pilgrimIdx := strings.Index(out, domain.DifficultyPilgrim+":")
		require.NotEqual(t, -1, miseryIdx)
		require.NotEqual(t, -1, pilgrimIdx)
		assert.Less(t, miseryIdx, pilgrimIdx)
	})

	t.Run("longest run leads its bucket", func(t *testing.T) {
		entries := []domain.ScoreEntry{
			{UserID: "a", Username: "astrid", Day: 1, Hour: 0, Minute: 0, Difficulty: domain.DifficultyStalker},
			{UserID: "b", Username: "bear", Day: 0, Hour: 30, Minute: 0, Difficulty: domain.DifficultyStalker},
		}

		out := RenderBoard(entries)

		// 30 hours beats 1 day.
		assert.Less(t, strings.Index(out, "bear"), strings.Index(out, "astrid"))
	})

	t.Run("columns align to the widest values", func(t *testing.T) {
		entries := []domain.ScoreEntry{
			{UserID: "a", Username: "astrid", Day: 100, Hour: 5, Minute: 9, Difficulty: domain.DifficultyMisery},
			{UserID: "b", Username: "bear", Day: 7, Hour: 23, Minute: 59, Difficulty: domain.DifficultyMisery},
		}

		out := RenderBoard(entries)

		assert.Contains(t, out, "100D  5H  9M | astrid")
		assert.Contains(t, out, "  7D 23H 59M | bear")
	})
}
