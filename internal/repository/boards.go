package repository

import (
	"context"

	"github.com/northfold/AuroraBot/internal/domain"
)

// Boards defines the interface for board message pointer persistence.
type Boards interface {
	// GetBoard returns the stored pointer for a guild and board kind, or
	// (nil, nil) when no board has been created.
	GetBoard(ctx context.Context, guildID string, kind domain.BoardKind) (*domain.BoardRef, error)

	SetBoard(ctx context.Context, guildID string, kind domain.BoardKind, ref domain.BoardRef) error

	// ClearBoard drops a stale pointer, e.g. after the underlying message
	// was deleted.
	ClearBoard(ctx context.Context, guildID string, kind domain.BoardKind) error

	// ListBoards returns all stored pointers of one kind keyed by guild ID.
	ListBoards(ctx context.Context, kind domain.BoardKind) (map[string]domain.BoardRef, error)
}
