package xp

import (
	"context"
	"sync"
	"time"

	"github.com/northfold/AuroraBot/internal/domain"
	"github.com/northfold/AuroraBot/internal/levels"
	"github.com/northfold/AuroraBot/internal/logger"
	"github.com/northfold/AuroraBot/internal/metrics"
	"github.com/northfold/AuroraBot/internal/repository"
)

// Service is the XP ledger: the single in-process authority over per-guild
// XP state. Accrual transactions never fail; persistence problems are
// logged and the in-memory result stands.
type Service interface {
	// ApplyChatActivity applies one chat message of wordCount words.
	ApplyChatActivity(ctx context.Context, guildID, userID, username string, wordCount int, tagActive bool, now time.Time) domain.AccrualResult

	// ApplyVoiceTick applies one elapsed voice minute.
	ApplyVoiceTick(ctx context.Context, guildID, userID, username string, tagActive bool, now time.Time) domain.AccrualResult

	// Profile returns a copy of a user's ledger entry.
	Profile(ctx context.Context, guildID, userID string) (domain.LevelProfile, bool)

	// GuildProfiles returns a copy of every ledger entry in a guild.
	GuildProfiles(ctx context.Context, guildID string) map[string]domain.LevelProfile

	// ChatModifier returns the chat reduction multiplier a message sent at
	// now would receive, excluding the server tag bonus.
	ChatModifier(ctx context.Context, guildID, userID string, now time.Time) float64

	// VoicePenaltyMinutes returns the voice minute counter as it stands at
	// now, after idle recovery.
	VoicePenaltyMinutes(ctx context.Context, guildID, userID string, now time.Time) int
}

type service struct {
	repo     repository.Ledger
	bonusLoc *time.Location

	mu     sync.Mutex
	guilds map[string]*guildState
}

type guildState struct {
	mu    sync.Mutex
	users map[string]*userState
}

// userState serializes all accruals for one (guild, user) pair. Chat and
// voice share the profile's cumulative XP, so the lock covers both kinds.
type userState struct {
	mu       sync.Mutex
	profile  domain.LevelProfile
	activity map[domain.ChannelKind]domain.ActivityState
}

// NewService creates the XP ledger service. bonusLoc is the timezone whose
// calendar date gates the daily bonus; pass the location loaded from
// BonusTimeZone in production and a fixed zone in tests.
func NewService(repo repository.Ledger, bonusLoc *time.Location) Service {
	return &service{
		repo:     repo,
		bonusLoc: bonusLoc,
		guilds:   make(map[string]*guildState),
	}
}

func (s *service) ApplyChatActivity(ctx context.Context, guildID, userID, username string, wordCount int, tagActive bool, now time.Time) domain.AccrualResult {
	return s.accrue(ctx, guildID, userID, username, domain.ChannelChat, float64(wordCount)*ChatXPPerWord, tagActive, now)
}

func (s *service) ApplyVoiceTick(ctx context.Context, guildID, userID, username string, tagActive bool, now time.Time) domain.AccrualResult {
	return s.accrue(ctx, guildID, userID, username, domain.ChannelVoice, VoiceXPPerMinute, tagActive, now)
}

// accrue runs the full accrual transaction for one activity event.
// Step order is fixed: saturation transition, reduction, tag multiplier,
// gain floor, daily bonus (chat only), XP and level update, counters,
// timestamp. Rounding happens only on the returned result.
func (s *service) accrue(ctx context.Context, guildID, userID, username string, kind domain.ChannelKind, baseXP float64, tagActive bool, now time.Time) domain.AccrualResult {
	log := logger.FromContext(ctx)

	u := s.guild(ctx, guildID).user(userID, username)
	u.mu.Lock()
	defer u.mu.Unlock()

	if username != "" {
		u.profile.Username = username
	}

	state := u.activity[kind]

	var reduction float64
	switch kind {
	case domain.ChannelVoice:
		state.SaturationCount = NextVoiceMinutes(state.SaturationCount, state.LastActivity, now)
		reduction = VoiceReduction(state.SaturationCount)
	default:
		state.SaturationCount = NextChatSaturation(state.SaturationCount, state.LastActivity, now)
		reduction = ChatReduction(state.SaturationCount)
	}

	gain := baseXP * reduction * TagMultiplier(tagActive)
	if gain < MinXPGain {
		gain = MinXPGain
	}

	if kind == domain.ChannelChat {
		if today := BonusDate(now, s.bonusLoc); u.profile.LastDailyBonus != today {
			u.profile.LastDailyBonus = today
			gain += DailyBonusXP
		}
	}

	oldLevel := u.profile.Level
	u.profile.XP += gain
	u.profile.Level = levels.LevelForXP(u.profile.XP)
	if kind == domain.ChannelChat {
		u.profile.MessageCount++
	}

	state.LastActivity = now
	u.activity[kind] = state

	metrics.XPEvents.WithLabelValues(string(kind)).Inc()
	if u.profile.Level > oldLevel {
		metrics.LevelUps.Inc()
		log.Info(LogMsgLevelUp, "guild_id", guildID, "user_id", userID, "level", u.profile.Level)
	}

	s.persist(ctx, guildID, userID, kind, u.profile, state)

	return domain.AccrualResult{
		XPGain:    round4(gain),
		TotalXP:   round4(u.profile.XP),
		Level:     u.profile.Level,
		LeveledUp: u.profile.Level > oldLevel,
		OldLevel:  oldLevel,
	}
}

// persist writes the updated entry through to the store. Failures are
// warnings: the accrual already happened and its result is authoritative.
func (s *service) persist(ctx context.Context, guildID, userID string, kind domain.ChannelKind, profile domain.LevelProfile, state domain.ActivityState) {
	log := logger.FromContext(ctx)

	if err := s.repo.SaveProfile(ctx, guildID, profile); err != nil {
		metrics.PersistenceFailures.WithLabelValues(metrics.OpSaveProfile).Inc()
		log.Warn(LogMsgSaveProfileFailed, "error", err, "guild_id", guildID, "user_id", userID)
	}
	if err := s.repo.SaveActivity(ctx, guildID, userID, kind, state); err != nil {
		metrics.PersistenceFailures.WithLabelValues(metrics.OpSaveActivity).Inc()
		log.Warn(LogMsgSaveActivityFailed, "error", err, "guild_id", guildID, "user_id", userID)
	}
}

func (s *service) Profile(ctx context.Context, guildID, userID string) (domain.LevelProfile, bool) {
	g := s.guild(ctx, guildID)

	g.mu.Lock()
	u, ok := g.users[userID]
	g.mu.Unlock()
	if !ok {
		return domain.LevelProfile{}, false
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	return u.profile, true
}

func (s *service) GuildProfiles(ctx context.Context, guildID string) map[string]domain.LevelProfile {
	g := s.guild(ctx, guildID)

	g.mu.Lock()
	users := make([]*userState, 0, len(g.users))
	for _, u := range g.users {
		users = append(users, u)
	}
	g.mu.Unlock()

	out := make(map[string]domain.LevelProfile, len(users))
	for _, u := range users {
		u.mu.Lock()
		out[u.profile.UserID] = u.profile
		u.mu.Unlock()
	}
	return out
}

func (s *service) ChatModifier(ctx context.Context, guildID, userID string, now time.Time) float64 {
	state, ok := s.activityState(ctx, guildID, userID, domain.ChannelChat)
	if !ok {
		return 1.0
	}
	return ChatReduction(NextChatSaturation(state.SaturationCount, state.LastActivity, now))
}

func (s *service) VoicePenaltyMinutes(ctx context.Context, guildID, userID string, now time.Time) int {
	state, ok := s.activityState(ctx, guildID, userID, domain.ChannelVoice)
	if !ok {
		return 0
	}
	return RecoveredVoiceMinutes(state.SaturationCount, state.LastActivity, now)
}

func (s *service) activityState(ctx context.Context, guildID, userID string, kind domain.ChannelKind) (domain.ActivityState, bool) {
	g := s.guild(ctx, guildID)

	g.mu.Lock()
	u, ok := g.users[userID]
	g.mu.Unlock()
	if !ok {
		return domain.ActivityState{}, false
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	state, ok := u.activity[kind]
	return state, ok
}

// guild returns the in-memory state for a guild, loading it from the store
// on first access. An unreadable ledger starts empty instead of failing.
func (s *service) guild(ctx context.Context, guildID string) *guildState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.guilds[guildID]; ok {
		return g
	}

	g := &guildState{users: make(map[string]*userState)}

	stored, err := s.repo.LoadGuild(ctx, guildID)
	if err != nil {
		metrics.PersistenceFailures.WithLabelValues(metrics.OpLoadGuild).Inc()
		logger.FromContext(ctx).Warn(LogMsgGuildLoadFailed, "error", err, "guild_id", guildID)
	} else if stored != nil {
		for userID, profile := range stored.Profiles {
			g.users[userID] = &userState{
				profile:  *profile,
				activity: make(map[domain.ChannelKind]domain.ActivityState),
			}
		}
		for key, state := range stored.Activity {
			u, ok := g.users[key.UserID]
			if !ok {
				u = newUserState(key.UserID, "")
				g.users[key.UserID] = u
			}
			u.activity[key.Kind] = state
		}
	}

	s.guilds[guildID] = g
	return g
}

func (g *guildState) user(userID, username string) *userState {
	g.mu.Lock()
	defer g.mu.Unlock()

	u, ok := g.users[userID]
	if !ok {
		u = newUserState(userID, username)
		g.users[userID] = u
	}
	return u
}

func newUserState(userID, username string) *userState {
	return &userState{
		profile: domain.LevelProfile{
			UserID:   userID,
			Username: username,
			Level:    1,
		},
		activity: make(map[domain.ChannelKind]domain.ActivityState),
	}
}
