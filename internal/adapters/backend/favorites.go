package backend

import (
	"context"
	"net/http"

	"pet-shelter-hub/internal/domain/favorites"
	"pet-shelter-hub/internal/domain/pets"
	"pet-shelter-hub/internal/domain/shelters"
)

type FavoriteRepo struct {
	c *Client
}

func NewFavoriteRepo(c *Client) *FavoriteRepo {
	return &FavoriteRepo{c: c}
}

func (r *FavoriteRepo) ListShelters(ctx context.Context, userID string) ([]shelters.Shelter, error) {
	var out []shelterDTO
	if err := r.c.do(ctx, http.MethodGet, pathf("/users/%s/favorites/shelters", userID), nil, &out); err != nil {
		return nil, err
	}
	return toShelters(out), nil
}

func (r *FavoriteRepo) ListPets(ctx context.Context, userID string) ([]pets.Pet, error) {
	var out []petDTO
	if err := r.c.do(ctx, http.MethodGet, pathf("/users/%s/favorites/pets", userID), nil, &out); err != nil {
		return nil, err
	}
	return toPets(out), nil
}

func (r *FavoriteRepo) Toggle(ctx context.Context, userID string, kind favorites.Kind, entityID string) (bool, error) {
	var out struct {
		IsFav bool `json:"is_fav"`
	}
	path := pathf("/users/%s/favorites/%s/%s/toggle", userID, string(kind), entityID)
	if err := r.c.do(ctx, http.MethodPost, path, nil, &out); err != nil {
		return false, err
	}
	return out.IsFav, nil
}

var _ favorites.Repository = (*FavoriteRepo)(nil)
