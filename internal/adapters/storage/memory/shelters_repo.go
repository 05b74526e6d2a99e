package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-shelter-hub/internal/domain/shelters"

	"github.com/google/uuid"
)

type shelterRepo struct {
	mu   sync.RWMutex
	byID map[string]shelters.Shelter
}

func NewShelterRepo() shelters.Repository {
	return &shelterRepo{
		byID: make(map[string]shelters.Shelter),
	}
}

func (r *shelterRepo) Create(ctx context.Context, s shelters.Shelter) (shelters.Shelter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		s.ID = uuid.NewString()
	}
	if _, exists := r.byID[s.ID]; exists {
		return shelters.Shelter{}, errors.New("shelter already exists")
	}
	r.byID[s.ID] = s
	return s, nil
}

func (r *shelterRepo) Update(ctx context.Context, s shelters.Shelter) (shelters.Shelter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; !exists {
		return shelters.Shelter{}, ErrNotFound
	}
	r.byID[s.ID] = s
	return s, nil
}

func (r *shelterRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *shelterRepo) GetByID(ctx context.Context, id string) (shelters.Shelter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return shelters.Shelter{}, ErrNotFound
	}
	return s, nil
}

func (r *shelterRepo) List(ctx context.Context) ([]shelters.Shelter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]shelters.Shelter, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
