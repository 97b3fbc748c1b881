package voice

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tickRecorder struct {
	mu    sync.Mutex
	ticks map[string]int
}

func newTickRecorder() *tickRecorder {
	return &tickRecorder{ticks: make(map[string]int)}
}

func (r *tickRecorder) tick(ctx context.Context, guildID, userID, username string, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks[guildID+"/"+userID]++
}

func (r *tickRecorder) count(guildID, userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ticks[guildID+"/"+userID]
}

func TestTrackerTicksWhileActive(t *testing.T) {
	rec := newTickRecorder()
	tracker := NewTracker(rec.tick, 5*time.Millisecond)

	tracker.Join(context.Background(), "g1", "u1", "trapper")
	require.True(t, tracker.Active("g1", "u1"))

	assert.Eventually(t, func() bool {
		return rec.count("g1", "u1") >= 3
	}, time.Second, time.Millisecond)

	tracker.Leave(context.Background(), "g1", "u1")
	assert.False(t, tracker.Active("g1", "u1"))

	settled := rec.count("g1", "u1")
	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, rec.count("g1", "u1"), settled+1, "session should stop ticking after leave")
}

func TestTrackerJoinIsIdempotent(t *testing.T) {
	rec := newTickRecorder()
	tracker := NewTracker(rec.tick, 10*time.Millisecond)
	defer tracker.Stop(context.Background())

	// A channel switch arrives as another join for the same user.
	tracker.Join(context.Background(), "g1", "u1", "trapper")
	tracker.Join(context.Background(), "g1", "u1", "trapper")

	assert.Eventually(t, func() bool {
		return rec.count("g1", "u1") >= 2
	}, time.Second, time.Millisecond)

	tracker.Leave(context.Background(), "g1", "u1")
	assert.False(t, tracker.Active("g1", "u1"), "a single leave ends the session")
}

func TestTrackerLeaveCancelsBeforeRemoval(t *testing.T) {
	rec := newTickRecorder()
	tracker := NewTracker(rec.tick, 2*time.Millisecond)

	tracker.Join(context.Background(), "g1", "u1", "trapper")
	assert.Eventually(t, func() bool {
		return rec.count("g1", "u1") >= 1
	}, time.Second, time.Millisecond)

	// The session is cancelled before its record goes away, so once Leave
	// returns the tick count may advance by at most the one tick that was
	// already in flight.
	tracker.Leave(context.Background(), "g1", "u1")
	settled := rec.count("g1", "u1")

	time.Sleep(20 * time.Millisecond)
	assert.LessOrEqual(t, rec.count("g1", "u1"), settled+1)
	assert.False(t, tracker.Active("g1", "u1"))
}

func TestTrackerLeaveWithoutJoin(t *testing.T) {
	tracker := NewTracker(newTickRecorder().tick, time.Minute)
	// Must not panic or underflow.
	tracker.Leave(context.Background(), "g1", "ghost")
	assert.False(t, tracker.Active("g1", "ghost"))
}

func TestTrackerTracksUsersIndependently(t *testing.T) {
	rec := newTickRecorder()
	tracker := NewTracker(rec.tick, 5*time.Millisecond)
	defer tracker.Stop(context.Background())

	tracker.Join(context.Background(), "g1", "u1", "trapper")
	tracker.Join(context.Background(), "g1", "u2", "stalker")
	tracker.Leave(context.Background(), "g1", "u1")

	assert.Eventually(t, func() bool {
		return rec.count("g1", "u2") >= 2
	}, time.Second, time.Millisecond)
	assert.True(t, tracker.Active("g1", "u2"))
	assert.False(t, tracker.Active("g1", "u1"))
}

func TestTrackerStopEndsAllSessions(t *testing.T) {
	rec := newTickRecorder()
	tracker := NewTracker(rec.tick, 5*time.Millisecond)

	tracker.Join(context.Background(), "g1", "u1", "trapper")
	tracker.Join(context.Background(), "g2", "u2", "stalker")

	tracker.Stop(context.Background())

	assert.False(t, tracker.Active("g1", "u1"))
	assert.False(t, tracker.Active("g2", "u2"))

	// Joins after stop are ignored.
	tracker.Join(context.Background(), "g1", "u3", "drifter")
	assert.False(t, tracker.Active("g1", "u3"))
}
