package survival

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/northfold/AuroraBot/internal/domain"
	"github.com/northfold/AuroraBot/internal/logger"
	"github.com/northfold/AuroraBot/internal/metrics"
	"github.com/northfold/AuroraBot/internal/repository"
)

// Submission is one survival run reported by a user. Difficulty is
// case-insensitive on input and stored uppercase.
type Submission struct {
	UserID     string `validate:"required"`
	Username   string `validate:"required"`
	Day        int    `validate:"min=0,max=9999"`
	Hour       int    `validate:"min=0,max=23"`
	Minute     int    `validate:"min=0,max=59"`
	Difficulty string `validate:"required,difficulty"`
}

// Service manages survival score submissions and the grouped board view.
type Service interface {
	// SubmitScore validates and stores a run, replacing the user's
	// previous entry at the same difficulty.
	SubmitScore(ctx context.Context, guildID string, sub Submission) (domain.ScoreEntry, error)

	// GuildScores returns every stored entry for a guild.
	GuildScores(ctx context.Context, guildID string) ([]domain.ScoreEntry, error)
}

type service struct {
	repo     repository.Survival
	validate *validator.Validate
}

// NewService creates the survival score service.
func NewService(repo repository.Survival) Service {
	v := validator.New()
	_ = v.RegisterValidation(validationTagDifficulty, validateDifficulty)

	return &service{repo: repo, validate: v}
}

func (s *service) SubmitScore(ctx context.Context, guildID string, sub Submission) (domain.ScoreEntry, error) {
	log := logger.FromContext(ctx)

	sub.Difficulty = strings.ToUpper(strings.TrimSpace(sub.Difficulty))

	if err := s.validate.Struct(sub); err != nil {
		return domain.ScoreEntry{}, fmt.Errorf("%s: %w", ErrMsgInvalidSubmission, err)
	}

	entry := domain.ScoreEntry{
		UserID:     sub.UserID,
		Username:   sub.Username,
		Day:        sub.Day,
		Hour:       sub.Hour,
		Minute:     sub.Minute,
		Difficulty: sub.Difficulty,
	}

	if err := s.repo.UpsertScore(ctx, guildID, entry); err != nil {
		metrics.PersistenceFailures.WithLabelValues(metrics.OpSaveScore).Inc()
		return domain.ScoreEntry{}, fmt.Errorf("%s: %w", ErrMsgSaveScore, err)
	}

	metrics.ScoreSubmissions.WithLabelValues(entry.Difficulty).Inc()
	log.Info(LogMsgScoreSubmitted,
		"guild_id", guildID,
		"user_id", entry.UserID,
		"difficulty", entry.Difficulty,
		"total_minutes", entry.TotalMinutes())

	return entry, nil
}

func (s *service) GuildScores(ctx context.Context, guildID string) ([]domain.ScoreEntry, error) {
	entries, err := s.repo.ListScores(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListScores, err)
	}
	return entries, nil
}

func validateDifficulty(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, d := range domain.Difficulties {
		if value == d {
			return true
		}
	}
	return false
}
