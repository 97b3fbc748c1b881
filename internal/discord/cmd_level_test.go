package discord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/northfold/AuroraBot/internal/levels"
)

func TestLevelProgress(t *testing.T) {
	tests := []struct {
		name         string
		totalXP      float64
		level        int
		wantProgress float64
		wantNeeded   float64
		wantPct      int
	}{
		{"halfway through level 1", 13, 1, 13, 26, 50},
		{"start of level 2", 26, 2, 0, 28, 0},
		{"just below level 3", 53.5, 2, 27.5, 28, 98},
		{"fresh level 20", 1932, 20, 0, 219, 0},
		{"max level reports full", 1467619, levels.MaxLevel, 0, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress, needed, pct := levelProgress(tt.totalXP, tt.level)
			assert.InDelta(t, tt.wantProgress, progress, 1e-9)
			assert.InDelta(t, tt.wantNeeded, needed, 1e-9)
			assert.Equal(t, tt.wantPct, pct)
		})
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name       string
		pct        int
		wantFilled int
	}{
		{"empty", 0, 0},
		{"half", 50, 10},
		{"full", 100, 20},
		{"rounds down within a segment", 54, 10},
		{"clamps negative", -10, 0},
		{"clamps above hundred", 150, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := progressBar(tt.pct)
			assert.Equal(t, tt.wantFilled, strings.Count(bar, ProgressBarFilled))
			assert.Equal(t, ProgressBarWidth-tt.wantFilled, strings.Count(bar, ProgressBarEmpty))
		})
	}
}
