package domain

import "time"

// ChannelKind identifies which XP economy an activity event belongs to.
type ChannelKind string

const (
	ChannelChat  ChannelKind = "chat"
	ChannelVoice ChannelKind = "voice"
)

// ActivityState tracks recent activity density for one user on one channel
// kind. For chat the saturation count is a message counter; for voice it is
// the number of minutes spent in voice within the recent recovery window.
type ActivityState struct {
	// LastActivity is the instant of the previous accrual event.
	// The zero value means the user has never been active on this channel.
	LastActivity time.Time `json:"last_activity"`

	// SaturationCount is the decaying density counter driving the
	// diminishing-returns multiplier. Never negative.
	SaturationCount int `json:"saturation_count"`
}

// LevelProfile is the per-guild ledger entry for a single user.
// XP only ever grows; Level is derived from XP via the level curve and is
// never mutated independently.
type LevelProfile struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`

	XP           float64 `json:"xp"`
	Level        int     `json:"level"`
	MessageCount int64   `json:"message_count"`

	// LastDailyBonus is the calendar date (YYYY-MM-DD, bonus timezone) on
	// which the daily bonus was last granted. Empty means never.
	LastDailyBonus string `json:"last_daily_bonus,omitempty"`
}

// AccrualResult reports the outcome of a single accrual transaction.
// XPGain and TotalXP are rounded to four decimal places at this boundary;
// the stored ledger value keeps full precision.
type AccrualResult struct {
	XPGain    float64 `json:"xp_gain"`
	TotalXP   float64 `json:"total_xp"`
	Level     int     `json:"level"`
	LeveledUp bool    `json:"leveled_up"`
	OldLevel  int     `json:"old_level"`
}
