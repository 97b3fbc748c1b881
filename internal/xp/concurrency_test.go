package xp

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentChatAccrualsLoseNothing(t *testing.T) {
	svc := newTestService(newFakeLedgerRepo())

	const events = 50

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total float64
	)
	for i := 0; i < events; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := svc.ApplyChatActivity(context.Background(), testGuildID, testUserID, testUsername, 10, false, t0)
			mu.Lock()
			total += res.XPGain
			mu.Unlock()
		}()
	}
	wg.Wait()

	profile, ok := svc.Profile(context.Background(), testGuildID, testUserID)
	require.True(t, ok)

	// Every event landed and the cumulative XP matches the sum of the
	// individually reported gains.
	assert.Equal(t, int64(events), profile.MessageCount)
	assert.InDelta(t, total, profile.XP, 0.01)
}

func TestConcurrentChatAndVoiceShareOneProfile(t *testing.T) {
	svc := newTestService(newFakeLedgerRepo())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			now := t0.Add(time.Duration(n) * time.Minute)
			if n%2 == 0 {
				svc.ApplyChatActivity(context.Background(), testGuildID, testUserID, testUsername, 5, false, now)
			} else {
				svc.ApplyVoiceTick(context.Background(), testGuildID, testUserID, testUsername, false, now)
			}
		}(i)
	}
	wg.Wait()

	profile, ok := svc.Profile(context.Background(), testGuildID, testUserID)
	require.True(t, ok)
	assert.Equal(t, int64(10), profile.MessageCount)
	assert.Greater(t, profile.XP, 10.0)
}

func TestConcurrentDistinctUsersDoNotInterfere(t *testing.T) {
	svc := newTestService(newFakeLedgerRepo())

	users := []string{"u1", "u2", "u3", "u4", "u5"}

	var wg sync.WaitGroup
	for _, userID := range users {
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(userID string) {
				defer wg.Done()
				svc.ApplyChatActivity(context.Background(), testGuildID, userID, userID, 10, false, t0)
			}(userID)
		}
	}
	wg.Wait()

	for _, userID := range users {
		profile, ok := svc.Profile(context.Background(), testGuildID, userID)
		require.True(t, ok)
		assert.Equal(t, int64(10), profile.MessageCount, "user %s", userID)
	}
}
