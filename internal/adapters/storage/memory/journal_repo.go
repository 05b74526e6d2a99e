package memory

import (
	"context"
	"sync"

	"pet-shelter-hub/internal/domain/favorites"
)

type journalRepo struct {
	mu sync.RWMutex
	// por usuario, en orden de llegada
	byUser map[string][]favorites.JournalEntry
}

func NewJournalRepo() favorites.Journal {
	return &journalRepo{
		byUser: make(map[string][]favorites.JournalEntry),
	}
}

func (r *journalRepo) Record(ctx context.Context, e favorites.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUser[e.UserID] = append(r.byUser[e.UserID], e)
	return nil
}

// ListByUser devuelve las últimas limit entradas, más reciente primero.
func (r *journalRepo) ListByUser(ctx context.Context, userID string, limit int) ([]favorites.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.byUser[userID]
	out := make([]favorites.JournalEntry, 0, min(limit, len(entries)))
	for i := len(entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, entries[i])
	}
	return out, nil
}
