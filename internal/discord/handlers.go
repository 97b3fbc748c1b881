package discord

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// messageCreate accrues chat XP for every guild message. Bots and empty
// messages earn nothing.
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	wordCount := len(strings.Fields(m.Content))
	if wordCount == 0 {
		return
	}

	tagActive := b.Tags.HasServerTag(m.Author.ID, m.GuildID)

	result := b.XP.ApplyChatActivity(context.Background(),
		m.GuildID, m.Author.ID, m.Author.Username, wordCount, tagActive, time.Now())

	if result.LeveledUp {
		if err := s.MessageReactionAdd(m.ChannelID, m.ID, LevelUpEmoji); err != nil {
			slog.Warn(LogMsgReactionFailed, "channel_id", m.ChannelID, "error", err)
		}
	}
}

// voiceStateUpdate starts and stops voice sessions. Switching channels keeps
// the session alive; only a full disconnect ends it.
func (b *Bot) voiceStateUpdate(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	if v.GuildID == "" {
		return
	}
	if member := v.Member; member != nil && member.User != nil && member.User.Bot {
		return
	}

	username := ""
	if v.Member != nil && v.Member.User != nil {
		username = v.Member.User.Username
	}

	ctx := context.Background()
	switch {
	case v.ChannelID == "":
		b.Tracker.Leave(ctx, v.GuildID, v.UserID)
	default:
		b.Tracker.Join(ctx, v.GuildID, v.UserID, username)
	}
}

// voiceTick accrues one voice minute for a tracked session.
func (b *Bot) voiceTick(ctx context.Context, guildID, userID, username string, now time.Time) {
	tagActive := b.Tags.HasServerTag(userID, guildID)
	b.XP.ApplyVoiceTick(ctx, guildID, userID, username, tagActive, now)
}
