package survival

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northfold/AuroraBot/internal/domain"
)

const testGuildID = "guild-1"

func validSubmission() Submission {
	return Submission{
		UserID:     "user-1",
		Username:   "trapper",
		Day:        12,
		Hour:       5,
		Minute:     30,
		Difficulty: "interloper",
	}
}

func TestSubmitScore(t *testing.T) {
	t.Run("stores a valid run with uppercased difficulty", func(t *testing.T) {
		repo := newFakeScoreRepo()
		svc := NewService(repo)

		entry, err := svc.SubmitScore(context.Background(), testGuildID, validSubmission())

		require.NoError(t, err)
		assert.Equal(t, domain.DifficultyInterloper, entry.Difficulty)
		assert.Equal(t, 12, entry.Day)

		stored, err := svc.GuildScores(context.Background(), testGuildID)
		require.NoError(t, err)
		require.Len(t, stored, 1)
	})

	t.Run("resubmission replaces the previous run at the same difficulty", func(t *testing.T) {
		repo := newFakeScoreRepo()
		svc := NewService(repo)

		first := validSubmission()
		_, err := svc.SubmitScore(context.Background(), testGuildID, first)
		require.NoError(t, err)

		second := first
		second.Day = 40
		_, err = svc.SubmitScore(context.Background(), testGuildID, second)
		require.NoError(t, err)

		stored, err := svc.GuildScores(context.Background(), testGuildID)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, 40, stored[0].Day)
	})

	t.Run("one entry per difficulty per user", func(t *testing.T) {
		repo := newFakeScoreRepo()
		svc := NewService(repo)

		sub := validSubmission()
		_, err := svc.SubmitScore(context.Background(), testGuildID, sub)
		require.NoError(t, err)

		sub.Difficulty = "STALKER"
		_, err = svc.SubmitScore(context.Background(), testGuildID, sub)
		require.NoError(t, err)

		stored, err := svc.GuildScores(context.Background(), testGuildID)
		require.NoError(t, err)
		assert.Len(t, stored, 2)
	})

	t.Run("rejects invalid submissions", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*Submission)
		}{
			{"unknown difficulty", func(s *Submission) { s.Difficulty = "NIGHTMARE" }},
			{"empty difficulty", func(s *Submission) { s.Difficulty = "" }},
			{"negative day", func(s *Submission) { s.Day = -1 }},
			{"hour out of range", func(s *Submission) { s.Hour = 24 }},
			{"minute out of range", func(s *Submission) { s.Minute = 60 }},
			{"missing user", func(s *Submission) { s.UserID = "" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := NewService(newFakeScoreRepo())

				sub := validSubmission()
				tt.mutate(&sub)

				_, err := svc.SubmitScore(context.Background(), testGuildID, sub)
				assert.ErrorContains(t, err, ErrMsgInvalidSubmission)
			})
		}
	})

	t.Run("zero-length run is valid", func(t *testing.T) {
		svc := NewService(newFakeScoreRepo())

		sub := validSubmission()
		sub.Day, sub.Hour, sub.Minute = 0, 0, 0

		entry, err := svc.SubmitScore(context.Background(), testGuildID, sub)
		require.NoError(t, err)
		assert.Equal(t, 0, entry.TotalMinutes())
	})

	t.Run("propagates storage failures", func(t *testing.T) {
		repo := newFakeScoreRepo()
		repo.upsertErr = errors.New("connection refused")
		svc := NewService(repo)

		_, err := svc.SubmitScore(context.Background(), testGuildID, validSubmission())
		assert.ErrorContains(t, err, ErrMsgSaveScore)
	})
}

func TestGuildScoresError(t *testing.T) {
	repo := newFakeScoreRepo()
	repo.listErr = errors.New("connection refused")
	svc := NewService(repo)

	_, err := svc.GuildScores(context.Background(), testGuildID)
	assert.ErrorContains(t, err, ErrMsgListScores)
}
