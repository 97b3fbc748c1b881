package discord

import "time"

// ===========================================
// Command Names
// ===========================================

const (
	CmdScore         = "score"
	CmdScoreboard    = "scoreboard"
	CmdLevel         = "level"
	CmdLevelboard    = "levelboard"
	CmdVoiceCooldown = "voicecooldown"
)

// ===========================================
// Option Names
// ===========================================

const (
	OptDay        = "day"
	OptHour       = "hour"
	OptMinute     = "minute"
	OptDifficulty = "difficulty"
	OptUser       = "user"
)

// ===========================================
// Embed Appearance
// ===========================================

const (
	ColorGreen = 0x00ff00
	ColorRed   = 0xe74c3c

	FooterAuroraBot = "AuroraBot"

	LevelUpEmoji = "🎉"

	ProgressBarWidth   = 20
	ProgressBarFilled  = "█"
	ProgressBarEmpty   = "░"
)

// ===========================================
// Caches and Limits
// ===========================================

const (
	// Interactions are remembered briefly so gateway redeliveries are
	// processed once.
	InteractionCacheSize = 1024
	InteractionCacheTTL  = 5 * time.Minute

	// Server tag lookups hit the REST API, so results are cached.
	TagCacheSize = 4096
	TagCacheTTL  = 5 * time.Minute

	// BoardScanMessageLimit is how many recent messages per channel the
	// startup recovery scan inspects.
	BoardScanMessageLimit = 50

	// BoardScanTimeout bounds the whole startup recovery scan; on expiry
	// the bot keeps whatever pointers it already has.
	BoardScanTimeout = 2 * time.Minute
)

// ===========================================
// Log Messages
// ===========================================

const (
	LogMsgBotReady              = "Bot is ready"
	LogMsgBotRunning            = "Discord bot is now running. Press CTRL-C to exit."
	LogMsgRespondFailed         = "Failed to send interaction response"
	LogMsgReactionFailed        = "Failed to add level-up reaction"
	LogMsgDuplicateInteraction  = "Duplicate interaction skipped"
	LogMsgTagLookupFailed       = "Server tag lookup failed"
	LogMsgBoardCreated          = "Board created"
	LogMsgBoardRefreshed        = "Board refreshed"
	LogMsgBoardRefreshFailed    = "Board refresh failed, clearing pointer"
	LogMsgBoardRecovered        = "Recovered existing board message"
	LogMsgBoardScanDone         = "Finished scanning for existing boards"
	LogMsgBoardScanExpired      = "Board scan deadline reached, keeping local state"
	LogMsgRoleSyncFailed        = "Level role sync failed"
	LogMsgRoleCreated           = "Created level role"
	LogMsgRoleAssigned          = "Assigned level role"
)
