package repository

import (
	"context"

	"github.com/northfold/AuroraBot/internal/domain"
)

// ActivityKey identifies one activity state within a guild ledger.
type ActivityKey struct {
	UserID string
	Kind   domain.ChannelKind
}

// GuildLedger is the persisted snapshot of one guild's XP state.
type GuildLedger struct {
	Profiles map[string]*domain.LevelProfile
	Activity map[ActivityKey]domain.ActivityState
}

// Ledger defines the interface for XP ledger persistence.
// The ledger service owns the authoritative in-memory state; this store is
// loaded once per guild and written through after each accrual.
type Ledger interface {
	// LoadGuild returns the stored ledger for a guild. A guild with no
	// history yields empty (non-nil) maps, not an error.
	LoadGuild(ctx context.Context, guildID string) (*GuildLedger, error)

	SaveProfile(ctx context.Context, guildID string, profile domain.LevelProfile) error
	SaveActivity(ctx context.Context, guildID, userID string, kind domain.ChannelKind, state domain.ActivityState) error
}
