package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForXPRoundTrip(t *testing.T) {
	for level := 1; level <= MaxLevel; level++ {
		threshold := XPForLevel(level)
		assert.Equal(t, level, LevelForXP(threshold), "level %d threshold should map back to itself", level)

		if level > 1 {
			assert.Equal(t, level-1, LevelForXP(threshold-0.0001), "just below level %d threshold", level)
		}
	}
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		name string
		xp   float64
		want int
	}{
		{"zero xp", 0, 1},
		{"negative xp clamps to level 1", -5, 1},
		{"mid level 1", 25.9, 1},
		{"level 2 boundary", 26, 2},
		{"just under level 20", 1931, 19},
		{"level 20 boundary", 1932, 20},
		{"beyond table saturates", 99999999, MaxLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelForXP(tt.xp))
		})
	}
}

func TestXPForLevel(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  float64
	}{
		{"level zero", 0, 0},
		{"negative level", -3, 0},
		{"level one", 1, 0},
		{"level two", 2, 26},
		{"level twenty", 20, 1932},
		{"max level", MaxLevel, 1467619},
		{"beyond max saturates", MaxLevel + 50, 1467619},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, XPForLevel(tt.level))
		})
	}
}

func TestCurveShape(t *testing.T) {
	assert.Len(t, xpThresholds, 180)
	assert.Equal(t, 180, MaxLevel)
	assert.Equal(t, float64(0), xpThresholds[0])
	assert.Equal(t, float64(1467619), xpThresholds[len(xpThresholds)-1])
}

func TestThresholdsStrictlyIncreasing(t *testing.T) {
	for i := 1; i < len(xpThresholds); i++ {
		assert.Greater(t, xpThresholds[i], xpThresholds[i-1], "threshold %d", i)
	}
}
