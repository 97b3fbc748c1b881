package discord

import (
	"sync/atomic"
	"time"
)

var (
	startTime        = time.Now()
	commandsReceived atomic.Int64
)

// HealthStatus is a point-in-time snapshot of bot liveness.
type HealthStatus struct {
	Uptime           string `json:"uptime"`
	CommandsReceived int64  `json:"commands_received"`
}

// RecordCommand increments the received command counter.
func RecordCommand() {
	commandsReceived.Add(1)
}

// Health returns the current health snapshot.
func Health() HealthStatus {
	return HealthStatus{
		Uptime:           time.Since(startTime).Round(time.Second).String(),
		CommandsReceived: commandsReceived.Load(),
	}
}
