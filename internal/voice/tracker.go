package voice

import (
	"context"
	"sync"
	"time"

	"github.com/northfold/AuroraBot/internal/logger"
	"github.com/northfold/AuroraBot/internal/metrics"
)

// TickFunc is called once per elapsed minute of an active voice session.
type TickFunc func(ctx context.Context, guildID, userID, username string, now time.Time)

type sessionKey struct {
	GuildID string
	UserID  string
}

// Tracker runs one ticking goroutine per user currently in a voice channel.
// Channel switches within a guild keep the session alive; only a full
// disconnect ends it.
type Tracker struct {
	tick     TickFunc
	interval time.Duration

	mu       sync.Mutex
	sessions map[sessionKey]context.CancelFunc
	wg       sync.WaitGroup
	stopped  bool
}

// NewTracker creates a voice tracker that calls tick every interval for each
// active session.
func NewTracker(tick TickFunc, interval time.Duration) *Tracker {
	return &Tracker{
		tick:     tick,
		interval: interval,
		sessions: make(map[sessionKey]context.CancelFunc),
	}
}

// Join starts a session for the user. Joining while a session is already
// active is a no-op, so channel switches do not reset the ticker.
func (t *Tracker) Join(ctx context.Context, guildID, userID, username string) {
	key := sessionKey{GuildID: guildID, UserID: userID}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}
	if _, active := t.sessions[key]; active {
		return
	}

	sessionCtx, cancel := context.WithCancel(context.Background())
	t.sessions[key] = cancel
	metrics.VoiceSessions.Inc()
	logger.FromContext(ctx).Info(LogMsgSessionStarted, "guild_id", guildID, "user_id", userID)

	t.wg.Add(1)
	go t.run(sessionCtx, guildID, userID, username)
}

// Leave ends the user's session if one is active.
func (t *Tracker) Leave(ctx context.Context, guildID, userID string) {
	key := sessionKey{GuildID: guildID, UserID: userID}

	// Cancel before removing the record so no tick can be delivered for a
	// session that is already gone.
	t.mu.Lock()
	cancel, active := t.sessions[key]
	if active {
		cancel()
		delete(t.sessions, key)
	}
	t.mu.Unlock()

	if !active {
		return
	}
	metrics.VoiceSessions.Dec()
	logger.FromContext(ctx).Info(LogMsgSessionEnded, "guild_id", guildID, "user_id", userID)
}

// Active reports whether the user currently has a ticking session.
func (t *Tracker) Active(guildID, userID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, active := t.sessions[sessionKey{GuildID: guildID, UserID: userID}]
	return active
}

// Stop cancels every session and waits for the ticking goroutines to exit.
func (t *Tracker) Stop(ctx context.Context) {
	t.mu.Lock()
	t.stopped = true
	for key, cancel := range t.sessions {
		cancel()
		metrics.VoiceSessions.Dec()
		delete(t.sessions, key)
	}
	t.mu.Unlock()

	t.wg.Wait()
	logger.FromContext(ctx).Info(LogMsgTrackerStopped)
}

func (t *Tracker) run(ctx context.Context, guildID, userID, username string) {
	defer t.wg.Done()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			t.tick(ctx, guildID, userID, username, now)
		}
	}
}
