package xp

import "time"

// =============================================================================
// Accrual Rate Constants
// =============================================================================

const (
	// ChatXPPerWord is the base chat XP granted per word of a message
	ChatXPPerWord = 0.1

	// VoiceXPPerMinute is the base voice XP granted per connected minute
	VoiceXPPerMinute = 1.0

	// MinXPGain is the absolute floor applied to every accrual before the
	// daily bonus
	MinXPGain = 0.0001

	// DailyBonusXP is the flat bonus added to the first chat accrual of a
	// calendar day
	DailyBonusXP = 10.0

	// BaseMultiplier is the multiplier applied when no server tag is shown
	BaseMultiplier = 1.0

	// ServerTagMultiplier doubles XP while the user displays the guild's
	// server tag
	ServerTagMultiplier = 2.0
)

// =============================================================================
// Saturation / Recovery Constants
// =============================================================================

const (
	// ChatSpamWindow is the window within which consecutive messages
	// increase chat saturation
	ChatSpamWindow = 5 * time.Minute

	// RecoveryPeriod is the idle period granting one recovery step
	RecoveryPeriod = time.Hour

	// ChatDecayBase is the per-saturation-step chat multiplier
	ChatDecayBase = 0.1

	// ChatReductionFloor caps the chat penalty at a 99.9% reduction
	ChatReductionFloor = 0.001

	// VoiceRecoveryPerHour is the number of voice minutes recovered per
	// full idle hour
	VoiceRecoveryPerHour = 5

	// VoiceMinuteCap bounds the voice saturation counter
	VoiceMinuteCap = 50

	// VoiceWindowMinutes is the size of one voice penalty window
	VoiceWindowMinutes = 5

	// VoiceDecayBase is the per-window voice multiplier
	VoiceDecayBase = 0.5

	// VoiceReductionFloor caps the voice penalty. Deliberately one order of
	// magnitude below the chat floor; the two channels have always used
	// distinct floors.
	VoiceReductionFloor = 0.0001
)

// =============================================================================
// Daily Bonus Constants
// =============================================================================

const (
	// BonusTimeZone is the fixed timezone whose calendar date gates the
	// daily bonus, regardless of where users or the host process live
	BonusTimeZone = "Europe/Berlin"

	// BonusDateLayout formats bonus gate dates as YYYY-MM-DD
	BonusDateLayout = "2006-01-02"
)

// =============================================================================
// Result Rounding
// =============================================================================

const (
	// resultPrecision rounds reported XP values to 4 decimal places.
	// Stored ledger values keep full precision.
	resultPrecision = 10000
)

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	// LogMsgGuildLoadFailed is logged when a guild ledger cannot be loaded;
	// the guild starts empty rather than failing accrual
	LogMsgGuildLoadFailed = "Failed to load guild ledger, starting empty"

	// LogMsgSaveProfileFailed is logged when persisting a profile fails;
	// the in-memory accrual result remains valid
	LogMsgSaveProfileFailed = "Failed to persist level profile"

	// LogMsgSaveActivityFailed is logged when persisting activity state fails
	LogMsgSaveActivityFailed = "Failed to persist activity state"

	// LogMsgLevelUp is logged when an accrual crosses a level threshold
	LogMsgLevelUp = "User leveled up"
)
