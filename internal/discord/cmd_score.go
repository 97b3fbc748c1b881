package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/northfold/AuroraBot/internal/domain"
	"github.com/northfold/AuroraBot/internal/survival"
)

// ScoreCommand submits a survival run.
func ScoreCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minZero := float64(0)

	cmd := &discordgo.ApplicationCommand{
		Name:        CmdScore,
		Description: "Submit your survival score",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptDay,
				Description: "Days survived",
				Required:    true,
				MinValue:    &minZero,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptHour,
				Description: "Hours survived (0-23)",
				Required:    true,
				MinValue:    &minZero,
				MaxValue:    23,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptMinute,
				Description: "Minutes survived (0-59)",
				Required:    true,
				MinValue:    &minZero,
				MaxValue:    59,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptDifficulty,
				Description: "Difficulty of the run",
				Required:    true,
				Choices:     difficultyChoices(),
			},
		},
	}

	return cmd, handleScore
}

func difficultyChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.Difficulties))
	for _, d := range domain.Difficulties {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  d,
			Value: d,
		})
	}
	return choices
}

func handleScore(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
	ctx := context.Background()
	user := getInteractionUser(i)

	sub := survival.Submission{
		UserID:   user.ID,
		Username: user.Username,
	}
	for _, opt := range getOptions(i) {
		switch opt.Name {
		case OptDay:
			sub.Day = int(opt.IntValue())
		case OptHour:
			sub.Hour = int(opt.IntValue())
		case OptMinute:
			sub.Minute = int(opt.IntValue())
		case OptDifficulty:
			sub.Difficulty = opt.StringValue()
		}
	}

	entry, err := b.Survival.SubmitScore(ctx, i.GuildID, sub)
	if err != nil {
		slog.Warn("Score submission rejected", "guild_id", i.GuildID, "user_id", user.ID, "error", err)
		respondEphemeral(s, i, MsgScoreInvalid)
		return
	}

	respondEphemeral(s, i, fmt.Sprintf(MsgScoreSubmitted, entry.Day, entry.Hour, entry.Minute, entry.Difficulty))

	// Best effort: keep the pinned board in step with the new entry.
	b.Boards.Refresh(ctx, i.GuildID, domain.BoardSurvival)
}
