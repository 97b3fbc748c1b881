package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/northfold/AuroraBot/internal/domain"
)

// ScoreboardCommand creates the pinned survival scoreboard.
func ScoreboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     CmdScoreboard,
		Description:              "Create the survival scoreboard in this channel",
		DefaultMemberPermissions: adminPermission(),
	}

	return cmd, handleScoreboard
}

func handleScoreboard(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
	if !isAdmin(i) {
		respondEphemeral(s, i, MsgNoPermission)
		return
	}

	ctx := context.Background()

	// One survival board per guild. Creation is refused while the existing
	// board message is still reachable; a dangling pointer is replaced.
	if ref, alive := b.Boards.Existing(ctx, i.GuildID, domain.BoardSurvival); alive {
		respondEphemeral(s, i, fmt.Sprintf(MsgBoardExists, ref.ChannelID))
		return
	}

	content, err := b.Boards.SurvivalBoardText(ctx, i.GuildID)
	if err != nil {
		slog.Error("Failed to render survival board", "guild_id", i.GuildID, "error", err)
		respondEphemeral(s, i, MsgBoardError)
		return
	}

	if err := b.Boards.Create(ctx, i.GuildID, i.ChannelID, domain.BoardSurvival, content); err != nil {
		slog.Error("Failed to create survival board", "guild_id", i.GuildID, "error", err)
		respondEphemeral(s, i, MsgBoardError)
		return
	}

	respondEphemeral(s, i, MsgBoardCreated)
}
