package repository

import (
	"context"

	"github.com/northfold/AuroraBot/internal/domain"
)

// Survival defines the interface for survival score persistence.
type Survival interface {
	// UpsertScore replaces any existing entry for the same
	// (user, difficulty) pair.
	UpsertScore(ctx context.Context, guildID string, entry domain.ScoreEntry) error

	ListScores(ctx context.Context, guildID string) ([]domain.ScoreEntry, error)
}
