package xp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNextChatSaturation(t *testing.T) {
	tests := []struct {
		name  string
		count int
		last  time.Time
		now   time.Time
		want  int
	}{
		{"never active starts recovered", 3, time.Time{}, t0, 0},
		{"within spam window increments", 2, t0, t0.Add(time.Minute), 3},
		{"just inside spam window", 0, t0, t0.Add(5*time.Minute - time.Millisecond), 1},
		{"between window and one hour holds", 4, t0, t0.Add(30 * time.Minute), 4},
		{"one idle hour recovers one step", 4, t0, t0.Add(time.Hour), 3},
		{"three idle hours recover three steps", 5, t0, t0.Add(3 * time.Hour), 2},
		{"recovery clamps at zero", 2, t0, t0.Add(10 * time.Hour), 0},
		{"partial hour rounds down", 5, t0, t0.Add(time.Hour + 59*time.Minute), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextChatSaturation(tt.count, tt.last, tt.now))
		})
	}
}

func TestChatReduction(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  float64
	}{
		{"fully recovered", 0, 1.0},
		{"one step", 1, 0.1},
		{"two steps", 2, 0.01},
		{"at the floor", 3, 0.001},
		{"below the floor clamps", 4, 0.001},
		{"deep saturation clamps", 30, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ChatReduction(tt.count), 1e-12)
		})
	}
}

func TestNextVoiceMinutes(t *testing.T) {
	tests := []struct {
		name  string
		count int
		last  time.Time
		now   time.Time
		want  int
	}{
		{"first ever tick", 7, time.Time{}, t0, 1},
		{"consecutive minute adds one", 9, t0, t0.Add(time.Minute), 10},
		{"one idle hour recovers five", 20, t0, t0.Add(time.Hour), 16},
		{"long idle clamps then adds current minute", 30, t0, t0.Add(24 * time.Hour), 1},
		{"caps at fifty", 50, t0, t0.Add(time.Minute), 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextVoiceMinutes(tt.count, tt.last, tt.now))
		})
	}
}

func TestVoiceMinutesNeverExceedCap(t *testing.T) {
	count := 0
	now := t0
	for i := 0; i < 6*60; i++ {
		last := now
		now = now.Add(time.Minute)
		count = NextVoiceMinutes(count, last, now)
		assert.LessOrEqual(t, count, VoiceMinuteCap)
	}
	assert.Equal(t, VoiceMinuteCap, count)
}

func TestRecoveredVoiceMinutes(t *testing.T) {
	tests := []struct {
		name  string
		count int
		last  time.Time
		now   time.Time
		want  int
	}{
		{"never in voice", 10, time.Time{}, t0, 0},
		{"no idle time", 10, t0, t0, 10},
		{"two idle hours recover ten", 23, t0, t0.Add(2 * time.Hour), 13},
		{"clamps at zero", 5, t0, t0.Add(12 * time.Hour), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecoveredVoiceMinutes(tt.count, tt.last, tt.now))
		})
	}
}

func TestVoiceReduction(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    float64
	}{
		{"under five minutes", 4, 1.0},
		{"one window", 5, 0.5},
		{"two windows", 10, 0.25},
		{"window boundary rounds down", 9, 0.5},
		{"max windows stay above floor", 50, 0.0009765625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, VoiceReduction(tt.minutes), 1e-12)
		})
	}
}

func TestVoiceReductionFloorValue(t *testing.T) {
	// The voice floor sits an order of magnitude below the chat floor.
	assert.InDelta(t, VoiceReductionFloor, VoiceReduction(70), 1e-12)
	assert.Less(t, VoiceReductionFloor, ChatReductionFloor)
}

func TestTagMultiplier(t *testing.T) {
	assert.Equal(t, 2.0, TagMultiplier(true))
	assert.Equal(t, 1.0, TagMultiplier(false))
}

func TestBonusDateUsesFixedZone(t *testing.T) {
	berlin, err := time.LoadLocation(BonusTimeZone)
	assert.NoError(t, err)

	// 23:30 UTC on June 1st is already June 2nd in Berlin (CEST).
	late := time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-02", BonusDate(late, berlin))
	assert.Equal(t, "2025-06-01", BonusDate(late, time.UTC))
}
