package leaderboard

// ===========================================
// Board Layout
// ===========================================

const (
	// BoardSize is the number of entries shown on the pinned level board.
	BoardSize = 15

	BoardHeader = "LEVEL SCOREBOARD:"

	EmptyBoardText = "```\n" + BoardHeader + "\n\nNo users have gained XP yet!\nStart chatting to appear on the scoreboard.\n```"
)
