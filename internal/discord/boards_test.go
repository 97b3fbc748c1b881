package discord

import (
	"context"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northfold/AuroraBot/internal/domain"
)

type boardKey struct {
	GuildID string
	Kind    domain.BoardKind
}

type fakeBoardRepo struct {
	mu       sync.Mutex
	boards   map[boardKey]domain.BoardRef
	setCalls int
}

func newFakeBoardRepo() *fakeBoardRepo {
	return &fakeBoardRepo{boards: make(map[boardKey]domain.BoardRef)}
}

func (f *fakeBoardRepo) GetBoard(ctx context.Context, guildID string, kind domain.BoardKind) (*domain.BoardRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ref, ok := f.boards[boardKey{GuildID: guildID, Kind: kind}]
	if !ok {
		return nil, nil
	}
	return &ref, nil
}

func (f *fakeBoardRepo) SetBoard(ctx context.Context, guildID string, kind domain.BoardKind, ref domain.BoardRef) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls++
	f.boards[boardKey{GuildID: guildID, Kind: kind}] = ref
	return nil
}

func (f *fakeBoardRepo) ClearBoard(ctx context.Context, guildID string, kind domain.BoardKind) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.boards, boardKey{GuildID: guildID, Kind: kind})
	return nil
}

func (f *fakeBoardRepo) ListBoards(ctx context.Context, kind domain.BoardKind) (map[string]domain.BoardRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]domain.BoardRef)
	for key, ref := range f.boards {
		if key.Kind == kind {
			out[key.GuildID] = ref
		}
	}
	return out, nil
}

func TestRecoverSurvivalBoards_ExpiredDeadlineKeepsLocalState(t *testing.T) {
	repo := newFakeBoardRepo()

	session := &discordgo.Session{State: discordgo.NewState()}
	require.NoError(t, session.State.GuildAdd(&discordgo.Guild{ID: "g1"}))

	m := NewBoardManager(session, nil, nil, repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// An expired deadline stops the scan before any channel is fetched;
	// no pointers are adopted and none are dropped.
	m.RecoverSurvivalBoards(ctx)

	assert.Zero(t, repo.setCalls)
}

func TestLooksLikeSurvivalBoard(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "rendered board",
			content: "```\nMISERY:\n\nINTERLOPER:\n12D 5H 30M | trapper\n\nSTALKER:\n\nVOYAGEUR:\n\nPILGRIM:\n\nCUSTOM:\n\n```",
			want:    true,
		},
		{
			name:    "code block without difficulty headers",
			content: "```\nLEVEL SCOREBOARD:\n31 | 12,345 XP | astrid\n```",
			want:    false,
		},
		{
			name:    "difficulty names outside a code block",
			content: "talking about MISERY: and INTERLOPER: runs",
			want:    false,
		},
		{
			name:    "plain chatter",
			content: "anyone up for a run tonight?",
			want:    false,
		},
		{
			name:    "empty message",
			content: "",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikeSurvivalBoard(tt.content))
		})
	}
}
