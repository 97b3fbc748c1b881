package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/northfold/AuroraBot/internal/domain"
	"github.com/northfold/AuroraBot/internal/repository"
)

// BoardRepository implements the board pointer repository for PostgreSQL
type BoardRepository struct {
	pool *pgxpool.Pool
}

// NewBoardRepository creates a new BoardRepository
func NewBoardRepository(pool *pgxpool.Pool) repository.Boards {
	return &BoardRepository{pool: pool}
}

// GetBoard returns the stored pointer, or (nil, nil) when none exists.
func (r *BoardRepository) GetBoard(ctx context.Context, guildID string, kind domain.BoardKind) (*domain.BoardRef, error) {
	var ref domain.BoardRef
	err := r.pool.QueryRow(ctx, queryGetBoard, guildID, string(kind)).Scan(&ref.ChannelID, &ref.MessageID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query board: %w", err)
	}
	return &ref, nil
}

// SetBoard stores or replaces the pointer for a guild and board kind.
func (r *BoardRepository) SetBoard(ctx context.Context, guildID string, kind domain.BoardKind, ref domain.BoardRef) error {
	_, err := r.pool.Exec(ctx, queryUpsertBoard, guildID, string(kind), ref.ChannelID, ref.MessageID)
	if err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}
	return nil
}

// ClearBoard drops a stale pointer.
func (r *BoardRepository) ClearBoard(ctx context.Context, guildID string, kind domain.BoardKind) error {
	_, err := r.pool.Exec(ctx, queryDeleteBoard, guildID, string(kind))
	if err != nil {
		return fmt.Errorf("failed to clear board: %w", err)
	}
	return nil
}

// ListBoards returns all stored pointers of one kind keyed by guild ID.
func (r *BoardRepository) ListBoards(ctx context.Context, kind domain.BoardKind) (map[string]domain.BoardRef, error) {
	rows, err := r.pool.Query(ctx, queryListBoards, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query boards: %w", err)
	}
	defer rows.Close()

	boards := make(map[string]domain.BoardRef)
	for rows.Next() {
		var guildID string
		var ref domain.BoardRef
		if err := rows.Scan(&guildID, &ref.ChannelID, &ref.MessageID); err != nil {
			return nil, fmt.Errorf("failed to scan board: %w", err)
		}
		boards[guildID] = ref
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read boards: %w", err)
	}

	return boards, nil
}
