package metrics

// ============================================================================
// Metric Names
// ============================================================================

const (
	MetricNameXPEvents            = "aurorabot_xp_events_total"
	MetricNameLevelUps            = "aurorabot_level_ups_total"
	MetricNameCommands            = "aurorabot_commands_total"
	MetricNameBoardRefreshes      = "aurorabot_board_refreshes_total"
	MetricNamePersistenceFailures = "aurorabot_persistence_failures_total"
	MetricNameVoiceSessions       = "aurorabot_voice_sessions"
	MetricNameScoreSubmissions    = "aurorabot_score_submissions_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextXPEvents            = "Total number of XP accrual events by channel kind"
	HelpTextLevelUps            = "Total number of level-ups awarded"
	HelpTextCommands            = "Total number of slash commands handled"
	HelpTextBoardRefreshes      = "Total number of board message refreshes by board and outcome"
	HelpTextPersistenceFailures = "Total number of ledger persistence failures by operation"
	HelpTextVoiceSessions       = "Current number of tracked voice sessions"
	HelpTextScoreSubmissions    = "Total number of survival score submissions by difficulty"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelChannel    = "channel"
	LabelCommand    = "command"
	LabelBoard      = "board"
	LabelStatus     = "status"
	LabelOperation  = "operation"
	LabelDifficulty = "difficulty"
)

// ============================================================================
// Label Values
// ============================================================================

const (
	StatusOK    = "ok"
	StatusError = "error"

	OpLoadGuild    = "load_guild"
	OpSaveProfile  = "save_profile"
	OpSaveActivity = "save_activity"
	OpSaveScore    = "save_score"
	OpSaveBoard    = "save_board"
)
