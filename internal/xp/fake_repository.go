package xp

import (
	"context"
	"sync"

	"github.com/northfold/AuroraBot/internal/domain"
	"github.com/northfold/AuroraBot/internal/repository"
)

// fakeLedgerRepo is an in-memory repository.Ledger for service tests.
type fakeLedgerRepo struct {
	mu       sync.Mutex
	profiles map[string]map[string]domain.LevelProfile
	activity map[string]map[repository.ActivityKey]domain.ActivityState

	loadErr error
	saveErr error

	saveProfileCalls  int
	saveActivityCalls int
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{
		profiles: make(map[string]map[string]domain.LevelProfile),
		activity: make(map[string]map[repository.ActivityKey]domain.ActivityState),
	}
}

// seedProfile installs a stored profile so a later LoadGuild returns it.
func (f *fakeLedgerRepo) seedProfile(guildID string, profile domain.LevelProfile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.profiles[guildID] == nil {
		f.profiles[guildID] = make(map[string]domain.LevelProfile)
	}
	f.profiles[guildID][profile.UserID] = profile
}

// seedActivity installs a stored activity state.
func (f *fakeLedgerRepo) seedActivity(guildID, userID string, kind domain.ChannelKind, state domain.ActivityState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.activity[guildID] == nil {
		f.activity[guildID] = make(map[repository.ActivityKey]domain.ActivityState)
	}
	f.activity[guildID][repository.ActivityKey{UserID: userID, Kind: kind}] = state
}

func (f *fakeLedgerRepo) LoadGuild(ctx context.Context, guildID string) (*repository.GuildLedger, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loadErr != nil {
		return nil, f.loadErr
	}

	ledger := &repository.GuildLedger{
		Profiles: make(map[string]*domain.LevelProfile),
		Activity: make(map[repository.ActivityKey]domain.ActivityState),
	}
	for userID, p := range f.profiles[guildID] {
		profile := p
		ledger.Profiles[userID] = &profile
	}
	for key, state := range f.activity[guildID] {
		ledger.Activity[key] = state
	}
	return ledger, nil
}

func (f *fakeLedgerRepo) SaveProfile(ctx context.Context, guildID string, profile domain.LevelProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.saveProfileCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.profiles[guildID] == nil {
		f.profiles[guildID] = make(map[string]domain.LevelProfile)
	}
	f.profiles[guildID][profile.UserID] = profile
	return nil
}

func (f *fakeLedgerRepo) SaveActivity(ctx context.Context, guildID, userID string, kind domain.ChannelKind, state domain.ActivityState) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.saveActivityCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.activity[guildID] == nil {
		f.activity[guildID] = make(map[repository.ActivityKey]domain.ActivityState)
	}
	f.activity[guildID][repository.ActivityKey{UserID: userID, Kind: kind}] = state
	return nil
}
