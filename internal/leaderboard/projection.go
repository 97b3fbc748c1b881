package leaderboard

import (
	"sort"

	"github.com/northfold/AuroraBot/internal/domain"
)

// TopByLevel returns the top limit profiles ordered by level, with XP as the
// tiebreaker. User ID breaks exact ties so the ordering is stable across
// refreshes.
func TopByLevel(profiles map[string]domain.LevelProfile, limit int) []domain.LevelProfile {
	entries := make([]domain.LevelProfile, 0, len(profiles))
	for _, p := range profiles {
		entries = append(entries, p)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Level != entries[j].Level {
			return entries[i].Level > entries[j].Level
		}
		if entries[i].XP != entries[j].XP {
			return entries[i].XP > entries[j].XP
		}
		return entries[i].UserID < entries[j].UserID
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// RankByXP returns a user's 1-based rank within the guild, ordered purely by
// cumulative XP. Returns false if the user has no ledger entry.
func RankByXP(profiles map[string]domain.LevelProfile, userID string) (int, bool) {
	target, ok := profiles[userID]
	if !ok {
		return 0, false
	}

	rank := 1
	for id, p := range profiles {
		if id == userID {
			continue
		}
		if p.XP > target.XP || (p.XP == target.XP && id < userID) {
			rank++
		}
	}
	return rank, true
}
