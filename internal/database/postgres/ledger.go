package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/northfold/AuroraBot/internal/domain"
	"github.com/northfold/AuroraBot/internal/repository"
)

// LedgerRepository implements the XP ledger repository for PostgreSQL
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(pool *pgxpool.Pool) repository.Ledger {
	return &LedgerRepository{pool: pool}
}

// LoadGuild reads every profile and activity state stored for a guild.
func (r *LedgerRepository) LoadGuild(ctx context.Context, guildID string) (*repository.GuildLedger, error) {
	ledger := &repository.GuildLedger{
		Profiles: make(map[string]*domain.LevelProfile),
		Activity: make(map[repository.ActivityKey]domain.ActivityState),
	}

	rows, err := r.pool.Query(ctx, queryLoadProfiles, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.LevelProfile
		if err := rows.Scan(&p.UserID, &p.Username, &p.XP, &p.Level, &p.MessageCount, &p.LastDailyBonus); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profile := p
		ledger.Profiles[p.UserID] = &profile
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}
	rows.Close()

	activityRows, err := r.pool.Query(ctx, queryLoadActivity, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity states: %w", err)
	}
	defer activityRows.Close()

	for activityRows.Next() {
		var (
			userID       string
			kind         string
			lastActivity pgtype.Timestamptz
			count        int
		)
		if err := activityRows.Scan(&userID, &kind, &lastActivity, &count); err != nil {
			return nil, fmt.Errorf("failed to scan activity state: %w", err)
		}

		state := domain.ActivityState{SaturationCount: count}
		if lastActivity.Valid {
			state.LastActivity = lastActivity.Time
		}
		key := repository.ActivityKey{UserID: userID, Kind: domain.ChannelKind(kind)}
		ledger.Activity[key] = state
	}
	if err := activityRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read activity states: %w", err)
	}

	return ledger, nil
}

// SaveProfile upserts one ledger entry.
func (r *LedgerRepository) SaveProfile(ctx context.Context, guildID string, profile domain.LevelProfile) error {
	_, err := r.pool.Exec(ctx, queryUpsertProfile,
		guildID,
		profile.UserID,
		profile.Username,
		profile.XP,
		profile.Level,
		profile.MessageCount,
		profile.LastDailyBonus,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// SaveActivity upserts one activity state. A zero LastActivity is stored as
// NULL so reloads keep the never-active sentinel.
func (r *LedgerRepository) SaveActivity(ctx context.Context, guildID, userID string, kind domain.ChannelKind, state domain.ActivityState) error {
	var lastActivity pgtype.Timestamptz
	if !state.LastActivity.IsZero() {
		lastActivity = pgtype.Timestamptz{Time: state.LastActivity.UTC(), Valid: true}
	}

	_, err := r.pool.Exec(ctx, queryUpsertActivity,
		guildID,
		userID,
		string(kind),
		lastActivity,
		state.SaturationCount,
	)
	if err != nil {
		return fmt.Errorf("failed to save activity state: %w", err)
	}
	return nil
}
