package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"pet-shelter-hub/internal/domain/favorites"
	"pet-shelter-hub/internal/domain/pets"
	"pet-shelter-hub/internal/domain/shelters"
)

// favoriteRepo guarda por usuario los IDs favoritos de cada tipo y resuelve
// las entidades contra los repos de refugios y mascotas al listar.
type favoriteRepo struct {
	shelters shelters.Repository
	pets     pets.Repository

	mu sync.RWMutex
	// user -> kind -> set de IDs
	byUser map[string]map[favorites.Kind]map[string]struct{}
}

func NewFavoriteRepo(sheltersRepo shelters.Repository, petsRepo pets.Repository) favorites.Repository {
	return &favoriteRepo{
		shelters: sheltersRepo,
		pets:     petsRepo,
		byUser:   make(map[string]map[favorites.Kind]map[string]struct{}),
	}
}

func (r *favoriteRepo) ids(userID string, kind favorites.Kind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.byUser[userID][kind]
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (r *favoriteRepo) ListShelters(ctx context.Context, userID string) ([]shelters.Shelter, error) {
	out := make([]shelters.Shelter, 0)
	for _, id := range r.ids(userID, favorites.KindShelters) {
		s, err := r.shelters.GetByID(ctx, id)
		if errors.Is(err, ErrNotFound) {
			// el refugio se borró después de marcarlo
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *favoriteRepo) ListPets(ctx context.Context, userID string) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	for _, id := range r.ids(userID, favorites.KindPets) {
		p, err := r.pets.GetByID(ctx, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *favoriteRepo) Toggle(ctx context.Context, userID string, kind favorites.Kind, entityID string) (bool, error) {
	var err error
	switch kind {
	case favorites.KindShelters:
		_, err = r.shelters.GetByID(ctx, entityID)
	case favorites.KindPets:
		_, err = r.pets.GetByID(ctx, entityID)
	default:
		return false, fmt.Errorf("unknown favorite kind %q", kind)
	}
	if err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	kinds, ok := r.byUser[userID]
	if !ok {
		kinds = make(map[favorites.Kind]map[string]struct{})
		r.byUser[userID] = kinds
	}
	set, ok := kinds[kind]
	if !ok {
		set = make(map[string]struct{})
		kinds[kind] = set
	}

	if _, fav := set[entityID]; fav {
		delete(set, entityID)
		return false, nil
	}
	set[entityID] = struct{}{}
	return true, nil
}
