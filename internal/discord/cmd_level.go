package discord

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/northfold/AuroraBot/internal/leaderboard"
	"github.com/northfold/AuroraBot/internal/levels"
	"github.com/northfold/AuroraBot/internal/xp"
)

// LevelCommand shows a user's level stats.
func LevelCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdLevel,
		Description: "Show level stats for yourself or another user",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        OptUser,
				Description: "User to look up (defaults to you)",
				Required:    false,
			},
		},
	}

	return cmd, handleLevel
}

func handleLevel(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
	ctx := context.Background()
	invoker := getInteractionUser(i)

	target := invoker
	for _, opt := range getOptions(i) {
		if opt.Name == OptUser {
			target = opt.UserValue(s)
		}
	}

	profile, ok := b.XP.Profile(ctx, i.GuildID, target.ID)
	if !ok || profile.MessageCount == 0 {
		if target.ID == invoker.ID {
			respondEphemeral(s, i, MsgLevelNoSelfData)
		} else {
			respondEphemeral(s, i, fmt.Sprintf(MsgLevelNoUserData, target.Username))
		}
		return
	}

	now := time.Now()
	profiles := b.XP.GuildProfiles(ctx, i.GuildID)
	rank, _ := leaderboard.RankByXP(profiles, target.ID)

	chatMod := b.XP.ChatModifier(ctx, i.GuildID, target.ID, now)
	voiceMod := xp.VoiceReduction(b.XP.VoicePenaltyMinutes(ctx, i.GuildID, target.ID, now))

	tagActive := b.Tags.HasServerTag(target.ID, i.GuildID)
	rateLines := []string{fmt.Sprintf("- Base [%gx]", xp.BaseMultiplier)}
	totalRate := xp.BaseMultiplier
	if tagActive {
		rateLines = append(rateLines, fmt.Sprintf("- Server Tag [%gx]", xp.ServerTagMultiplier-xp.BaseMultiplier))
		totalRate = xp.ServerTagMultiplier
	}
	rateValue := fmt.Sprintf("Current XP Rate: %gx\n%s", totalRate, strings.Join(rateLines, "\n"))

	progressXP, neededXP, pct := levelProgress(profile.XP, profile.Level)

	embed := &discordgo.MessageEmbed{
		Author: &discordgo.MessageEmbedAuthor{
			Name:    fmt.Sprintf("%s's Level Stats", target.Username),
			IconURL: target.AvatarURL(""),
		},
		Color: ColorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Level", Value: fmt.Sprintf("%d", profile.Level), Inline: true},
			{Name: "Total XP", Value: fmt.Sprintf("%.2f", profile.XP), Inline: true},
			{Name: "Messages Sent", Value: leaderboard.FormatCount(profile.MessageCount), Inline: true},
			{Name: "Rank", Value: fmt.Sprintf("#%d", rank), Inline: true},
			{Name: "Chat Modifier", Value: fmt.Sprintf("%.3fx", chatMod), Inline: true},
			{Name: "Voice Modifier", Value: fmt.Sprintf("%.3fx", voiceMod), Inline: true},
			{Name: "XP Rate", Value: rateValue, Inline: false},
			{
				Name: "Progress to Next Level",
				Value: fmt.Sprintf("`%s` %d%%\n**%s** / **%s** XP",
					progressBar(pct), pct,
					leaderboard.FormatXP(math.Round(progressXP)), leaderboard.FormatXP(neededXP)),
				Inline: false,
			},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: FooterAuroraBot},
		Timestamp: now.Format(time.RFC3339),
	}

	respondEmbed(s, i, embed)
}

// levelProgress returns the XP earned into the current level, the XP span of
// the level, and the completed percentage. The final level reports full
// progress.
func levelProgress(totalXP float64, level int) (progress, needed float64, pct int) {
	floor := levels.XPForLevel(level)
	ceil := levels.XPForLevel(level + 1)

	needed = ceil - floor
	if needed <= 0 {
		return 0, 0, 100
	}

	progress = totalXP - floor
	if progress < 0 {
		progress = 0
	}
	if progress > needed {
		progress = needed
	}

	pct = int(progress / needed * 100)
	return progress, needed, pct
}

// progressBar renders pct as a fixed-width block bar.
func progressBar(pct int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * ProgressBarWidth / 100
	return strings.Repeat(ProgressBarFilled, filled) + strings.Repeat(ProgressBarEmpty, ProgressBarWidth-filled)
}
