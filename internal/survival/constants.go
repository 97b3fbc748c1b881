package survival

// ===========================================
// Validation
// ===========================================

const (
	validationTagDifficulty = "difficulty"

	MaxDay    = 9999
	MaxHour   = 23
	MaxMinute = 59
)

// ===========================================
// Error Messages
// ===========================================

const (
	ErrMsgInvalidSubmission = "invalid score submission"
	ErrMsgSaveScore         = "saving score entry"
	ErrMsgListScores        = "listing score entries"
)

// ===========================================
// Log Messages
// ===========================================

const (
	LogMsgScoreSubmitted = "Survival score submitted"
)
