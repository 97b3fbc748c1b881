package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/northfold/AuroraBot/internal/domain"
)

// LevelboardCommand creates the auto-updating level scoreboard.
func LevelboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     CmdLevelboard,
		Description:              "Create the auto-updating level scoreboard in this channel",
		DefaultMemberPermissions: adminPermission(),
	}

	return cmd, handleLevelboard
}

func handleLevelboard(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
	if !isAdmin(i) {
		respondEphemeral(s, i, MsgNoPermission)
		return
	}

	ctx := context.Background()

	// Unlike the survival board, recreating the level board is always
	// allowed; the old message is simply abandoned.
	content := b.Boards.LevelBoardText(ctx, i.GuildID)

	if err := b.Boards.Create(ctx, i.GuildID, i.ChannelID, domain.BoardLevels, content); err != nil {
		slog.Error("Failed to create level board", "guild_id", i.GuildID, "error", err)
		respondEphemeral(s, i, MsgBoardError)
		return
	}

	respondEphemeral(s, i, MsgLevelboardMade)
}
