package voice

import "time"

const (
	// TickInterval is how often an active voice session accrues a minute.
	TickInterval = time.Minute
)

// ===========================================
// Log Messages
// ===========================================

const (
	LogMsgSessionStarted = "Voice session started"
	LogMsgSessionEnded   = "Voice session ended"
	LogMsgTrackerStopped = "Voice tracker stopped"
)
