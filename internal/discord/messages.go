package discord

// Friendly message constants for Discord responses
const (
	MsgScoreSubmitted   = "✅ Score submitted: Day %d, %dh %dm on %s"
	MsgScoreError       = "❌ Error submitting score. Please try again."
	MsgScoreInvalid     = "❌ That score doesn't look right. Check the day, hour, minute and difficulty values."
	MsgBoardCreated     = "✅ Scoreboard created in this channel!"
	MsgBoardExists      = "❌ Scoreboard already exists in <#%s>! Delete that message first if you want to create a new one."
	MsgBoardError       = "❌ Error creating scoreboard. Please try again."
	MsgLevelboardMade   = "✅ Level scoreboard created in this channel!"
	MsgLevelNoSelfData  = "📊 You haven't sent any messages yet! Start chatting to gain XP and levels."
	MsgLevelNoUserData  = "📊 %s hasn't sent any messages yet!"
	MsgLevelError       = "❌ Error getting level information. Please try again."
	MsgVoicePenalty     = "%s currently has %d minute(s) of voice XP penalty remaining."
	MsgNoPermission     = "You do not have permission to use this command."
)
