package domain

// BoardKind identifies one of the persistent auto-updating board messages.
type BoardKind string

const (
	BoardLevels   BoardKind = "levels"
	BoardSurvival BoardKind = "survival"
)

// BoardRef points at the Discord message a board is rendered into.
type BoardRef struct {
	ChannelID string `json:"channel_id"`
	MessageID string `json:"message_id"`
}
