package domain

// Survival difficulty buckets, in board display order.
const (
	DifficultyMisery     = "MISERY"
	DifficultyInterloper = "INTERLOPER"
	DifficultyStalker    = "STALKER"
	DifficultyVoyageur   = "VOYAGEUR"
	DifficultyPilgrim    = "PILGRIM"
	DifficultyCustom     = "CUSTOM"
)

// Difficulties lists all survival difficulty buckets in display order.
var Difficulties = []string{
	DifficultyMisery,
	DifficultyInterloper,
	DifficultyStalker,
	DifficultyVoyageur,
	DifficultyPilgrim,
	DifficultyCustom,
}

// ScoreEntry is one submitted survival run. A user holds at most one entry
// per difficulty; resubmitting replaces the previous run.
type ScoreEntry struct {
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Day        int    `json:"day"`
	Hour       int    `json:"hour"`
	Minute     int    `json:"minute"`
	Difficulty string `json:"difficulty"`
}

// TotalMinutes is the sort key for score entries within a difficulty bucket.
func (e ScoreEntry) TotalMinutes() int {
	return e.Day*24*60 + e.Hour*60 + e.Minute
}
