package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

// VoiceCooldownCommand shows a user's remaining voice XP penalty.
func VoiceCooldownCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     CmdVoiceCooldown,
		Description:              "Show a user's remaining voice XP penalty",
		DefaultMemberPermissions: adminPermission(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        OptUser,
				Description: "User to inspect",
				Required:    true,
			},
		},
	}

	return cmd, handleVoiceCooldown
}

func handleVoiceCooldown(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
	if !isAdmin(i) {
		respondEphemeral(s, i, MsgNoPermission)
		return
	}

	target := getInteractionUser(i)
	for _, opt := range getOptions(i) {
		if opt.Name == OptUser {
			target = opt.UserValue(s)
		}
	}

	minutes := b.XP.VoicePenaltyMinutes(context.Background(), i.GuildID, target.ID, time.Now())
	respondEphemeral(s, i, fmt.Sprintf(MsgVoicePenalty, target.Username, minutes))
}
