package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/northfold/AuroraBot/internal/domain"
	"github.com/northfold/AuroraBot/internal/leaderboard"
	"github.com/northfold/AuroraBot/internal/metrics"
	"github.com/northfold/AuroraBot/internal/repository"
	"github.com/northfold/AuroraBot/internal/survival"
	"github.com/northfold/AuroraBot/internal/xp"
)

// BoardManager owns the persistent board messages: it renders their text,
// remembers which Discord message each board lives in, and keeps the level
// boards fresh on a schedule.
type BoardManager struct {
	session  *discordgo.Session
	xp       xp.Service
	survival survival.Service
	repo     repository.Boards
}

// NewBoardManager creates a board manager.
func NewBoardManager(s *discordgo.Session, xpSvc xp.Service, survivalSvc survival.Service, repo repository.Boards) *BoardManager {
	return &BoardManager{
		session:  s,
		xp:       xpSvc,
		survival: survivalSvc,
		repo:     repo,
	}
}

// LevelBoardText renders the current level board for a guild.
func (m *BoardManager) LevelBoardText(ctx context.Context, guildID string) string {
	profiles := m.xp.GuildProfiles(ctx, guildID)
	return leaderboard.RenderLevelBoard(leaderboard.TopByLevel(profiles, leaderboard.BoardSize))
}

// SurvivalBoardText renders the current survival board for a guild.
func (m *BoardManager) SurvivalBoardText(ctx context.Context, guildID string) (string, error) {
	entries, err := m.survival.GuildScores(ctx, guildID)
	if err != nil {
		return "", err
	}
	return survival.RenderBoard(entries), nil
}

// Existing returns the stored board pointer and whether the message it
// points at can still be fetched.
func (m *BoardManager) Existing(ctx context.Context, guildID string, kind domain.BoardKind) (*domain.BoardRef, bool) {
	ref, err := m.repo.GetBoard(ctx, guildID, kind)
	if err != nil || ref == nil {
		return nil, false
	}

	if _, err := m.session.ChannelMessage(ref.ChannelID, ref.MessageID); err != nil {
		return ref, false
	}
	return ref, true
}

// Create posts a new board message in the given channel and stores its
// pointer, replacing any previous pointer for the same board kind.
func (m *BoardManager) Create(ctx context.Context, guildID, channelID string, kind domain.BoardKind, content string) error {
	msg, err := m.session.ChannelMessageSend(channelID, content)
	if err != nil {
		return fmt.Errorf("error sending board message: %w", err)
	}

	ref := domain.BoardRef{ChannelID: channelID, MessageID: msg.ID}
	if err := m.repo.SetBoard(ctx, guildID, kind, ref); err != nil {
		metrics.PersistenceFailures.WithLabelValues(metrics.OpSaveBoard).Inc()
		return fmt.Errorf("error storing board pointer: %w", err)
	}

	slog.Info(LogMsgBoardCreated, "guild_id", guildID, "board", string(kind), "channel_id", channelID)
	return nil
}

// Refresh re-renders a board into its stored message. A pointer whose
// message no longer exists is cleared so the next create starts clean.
func (m *BoardManager) Refresh(ctx context.Context, guildID string, kind domain.BoardKind) {
	ref, err := m.repo.GetBoard(ctx, guildID, kind)
	if err != nil || ref == nil {
		return
	}

	var content string
	switch kind {
	case domain.BoardSurvival:
		content, err = m.SurvivalBoardText(ctx, guildID)
		if err != nil {
			metrics.BoardRefreshes.WithLabelValues(string(kind), metrics.StatusError).Inc()
			slog.Warn(LogMsgBoardRefreshFailed, "guild_id", guildID, "board", string(kind), "error", err)
			return
		}
	default:
		content = m.LevelBoardText(ctx, guildID)
	}

	if _, err := m.session.ChannelMessageEdit(ref.ChannelID, ref.MessageID, content); err != nil {
		metrics.BoardRefreshes.WithLabelValues(string(kind), metrics.StatusError).Inc()
		slog.Warn(LogMsgBoardRefreshFailed, "guild_id", guildID, "board", string(kind), "error", err)

		if clearErr := m.repo.ClearBoard(ctx, guildID, kind); clearErr != nil {
			metrics.PersistenceFailures.WithLabelValues(metrics.OpSaveBoard).Inc()
		}
		return
	}

	metrics.BoardRefreshes.WithLabelValues(string(kind), metrics.StatusOK).Inc()
	slog.Debug(LogMsgBoardRefreshed, "guild_id", guildID, "board", string(kind))
}

// RefreshAll refreshes every stored level board and syncs level roles for
// those guilds. Run periodically by the scheduler.
func (m *BoardManager) RefreshAll(ctx context.Context) error {
	boards, err := m.repo.ListBoards(ctx, domain.BoardLevels)
	if err != nil {
		return fmt.Errorf("error listing level boards: %w", err)
	}

	for guildID := range boards {
		m.Refresh(ctx, guildID, domain.BoardLevels)
		m.SyncLevelRoles(ctx, guildID)
	}
	return nil
}

// SyncLevelRoles gives every ranked user a "Level N" role matching their
// current level, creating roles on demand and removing outdated ones.
// Failures are logged per user; one bad member never blocks the rest.
func (m *BoardManager) SyncLevelRoles(ctx context.Context, guildID string) {
	profiles := m.xp.GuildProfiles(ctx, guildID)
	if len(profiles) == 0 {
		return
	}

	roles, err := m.session.GuildRoles(guildID)
	if err != nil {
		slog.Warn(LogMsgRoleSyncFailed, "guild_id", guildID, "error", err)
		return
	}

	roleByName := make(map[string]*discordgo.Role, len(roles))
	for _, r := range roles {
		roleByName[r.Name] = r
	}

	for userID, profile := range profiles {
		wantName := fmt.Sprintf("Level %d", profile.Level)

		role, ok := roleByName[wantName]
		if !ok {
			role, err = m.session.GuildRoleCreate(guildID, &discordgo.RoleParams{Name: wantName})
			if err != nil {
				slog.Warn(LogMsgRoleSyncFailed, "guild_id", guildID, "role", wantName, "error", err)
				continue
			}
			roleByName[wantName] = role
			slog.Info(LogMsgRoleCreated, "guild_id", guildID, "role", wantName)
		}

		member, err := m.session.GuildMember(guildID, userID)
		if err != nil {
			continue
		}

		hasTarget := false
		for _, roleID := range member.Roles {
			held := findRole(roles, roleID)
			if held == nil {
				continue
			}
			if held.ID == role.ID {
				hasTarget = true
				continue
			}
			if strings.HasPrefix(held.Name, "Level ") {
				if err := m.session.GuildMemberRoleRemove(guildID, userID, held.ID); err != nil {
					slog.Warn(LogMsgRoleSyncFailed, "guild_id", guildID, "user_id", userID, "error", err)
				}
			}
		}

		if !hasTarget {
			if err := m.session.GuildMemberRoleAdd(guildID, userID, role.ID); err != nil {
				slog.Warn(LogMsgRoleSyncFailed, "guild_id", guildID, "user_id", userID, "error", err)
				continue
			}
			slog.Debug(LogMsgRoleAssigned, "guild_id", guildID, "user_id", userID, "role", wantName)
		}
	}
}

// RecoverSurvivalBoards scans guilds without a stored survival board pointer
// for a board message that survived a restart without its pointer, and
// re-adopts the first match. Run once at startup. The scan is bounded by the
// context deadline; on expiry it keeps whatever pointers already exist.
func (m *BoardManager) RecoverSurvivalBoards(ctx context.Context) {
	stored, err := m.repo.ListBoards(ctx, domain.BoardSurvival)
	if err != nil {
		slog.Warn(LogMsgBoardRefreshFailed, "board", string(domain.BoardSurvival), "error", err)
		return
	}

	botID := ""
	if m.session.State != nil && m.session.State.User != nil {
		botID = m.session.State.User.ID
	}

	for _, guild := range m.session.State.Guilds {
		if ctx.Err() != nil {
			slog.Warn(LogMsgBoardScanExpired, "error", ctx.Err())
			return
		}
		if _, ok := stored[guild.ID]; ok {
			continue
		}

		channels, err := m.session.GuildChannels(guild.ID, discordgo.WithContext(ctx))
		if err != nil {
			continue
		}

		for _, ch := range channels {
			if ctx.Err() != nil {
				slog.Warn(LogMsgBoardScanExpired, "error", ctx.Err())
				return
			}
			if ch.Type != discordgo.ChannelTypeGuildText {
				continue
			}

			msgs, err := m.session.ChannelMessages(ch.ID, BoardScanMessageLimit, "", "", "", discordgo.WithContext(ctx))
			if err != nil {
				continue
			}

			found := false
			for _, msg := range msgs {
				if msg.Author == nil || msg.Author.ID != botID {
					continue
				}
				if !looksLikeSurvivalBoard(msg.Content) {
					continue
				}

				ref := domain.BoardRef{ChannelID: ch.ID, MessageID: msg.ID}
				if err := m.repo.SetBoard(ctx, guild.ID, domain.BoardSurvival, ref); err != nil {
					metrics.PersistenceFailures.WithLabelValues(metrics.OpSaveBoard).Inc()
					continue
				}
				slog.Info(LogMsgBoardRecovered, "guild_id", guild.ID, "channel_id", ch.ID, "message_id", msg.ID)
				found = true
				break
			}
			if found {
				break
			}
		}
	}

	slog.Info(LogMsgBoardScanDone)
}

// looksLikeSurvivalBoard recognizes a rendered survival board message.
func looksLikeSurvivalBoard(content string) bool {
	return strings.Contains(content, "```") &&
		strings.Contains(content, "MISERY:") &&
		strings.Contains(content, "INTERLOPER:")
}

func findRole(roles []*discordgo.Role, id string) *discordgo.Role {
	for _, r := range roles {
		if r.ID == id {
			return r
		}
	}
	return nil
}
