package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/northfold/AuroraBot/internal/domain"
	"github.com/northfold/AuroraBot/internal/repository"
)

// SurvivalRepository implements the survival score repository for PostgreSQL
type SurvivalRepository struct {
	pool *pgxpool.Pool
}

// NewSurvivalRepository creates a new SurvivalRepository
func NewSurvivalRepository(pool *pgxpool.Pool) repository.Survival {
	return &SurvivalRepository{pool: pool}
}

// UpsertScore stores a run, replacing any existing entry for the same
// (user, difficulty) pair.
func (r *SurvivalRepository) UpsertScore(ctx context.Context, guildID string, entry domain.ScoreEntry) error {
	_, err := r.pool.Exec(ctx, queryUpsertScore,
		guildID,
		entry.UserID,
		entry.Username,
		entry.Day,
		entry.Hour,
		entry.Minute,
		entry.Difficulty,
	)
	if err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}
	return nil
}

// ListScores returns every stored run for a guild.
func (r *SurvivalRepository) ListScores(ctx context.Context, guildID string) ([]domain.ScoreEntry, error) {
	rows, err := r.pool.Query(ctx, queryListScores, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	var entries []domain.ScoreEntry
	for rows.Next() {
		var e domain.ScoreEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.Day, &e.Hour, &e.Minute, &e.Difficulty); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scores: %w", err)
	}

	return entries, nil
}
