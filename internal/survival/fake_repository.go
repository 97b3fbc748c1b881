package survival

import (
	"context"
	"sync"

	"github.com/northfold/AuroraBot/internal/domain"
)

// fakeScoreRepo is an in-memory repository.Survival for service tests.
type fakeScoreRepo struct {
	mu      sync.Mutex
	entries map[string][]domain.ScoreEntry

	upsertErr error
	listErr   error
}

func newFakeScoreRepo() *fakeScoreRepo {
	return &fakeScoreRepo{entries: make(map[string][]domain.ScoreEntry)}
}

func (f *fakeScoreRepo) UpsertScore(ctx context.Context, guildID string, entry domain.ScoreEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.upsertErr != nil {
		return f.upsertErr
	}

	bucket := f.entries[guildID]
	for i, existing := range bucket {
		if existing.UserID == entry.UserID && existing.Difficulty == entry.Difficulty {
			bucket[i] = entry
			return nil
		}
	}
	f.entries[guildID] = append(bucket, entry)
	return nil
}

func (f *fakeScoreRepo) ListScores(ctx context.Context, guildID string) ([]domain.ScoreEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.ScoreEntry(nil), f.entries[guildID]...), nil
}
