package backend

import (
	"context"
	"net/http"
	"net/url"

	"pet-shelter-hub/internal/domain/pets"
)

type petDTO struct {
	ID          string `json:"id"`
	ShelterID   string `json:"shelter_id"`
	Name        string `json:"name"`
	Species     string `json:"species"`
	Breed       string `json:"breed,omitempty"`
	Sex         string `json:"sex,omitempty"`
	AgeMonths   int    `json:"age_months"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Status      string `json:"status,omitempty"`
}

func (d petDTO) domain() pets.Pet {
	return pets.Pet{
		ID:          d.ID,
		ShelterID:   d.ShelterID,
		Name:        d.Name,
		Species:     pets.Species(d.Species),
		Breed:       d.Breed,
		Sex:         pets.Sex(d.Sex),
		AgeMonths:   d.AgeMonths,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		Status:      pets.Status(d.Status),
	}
}

func toPetDTO(p pets.Pet) petDTO {
	return petDTO{
		ID:          p.ID,
		ShelterID:   p.ShelterID,
		Name:        p.Name,
		Species:     string(p.Species),
		Breed:       p.Breed,
		Sex:         string(p.Sex),
		AgeMonths:   p.AgeMonths,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Status:      string(p.Status),
	}
}

func toPets(in []petDTO) []pets.Pet {
	out := make([]pets.Pet, 0, len(in))
	for _, d := range in {
		out = append(out, d.domain())
	}
	return out
}

type PetRepo struct {
	c *Client
}

func NewPetRepo(c *Client) *PetRepo {
	return &PetRepo{c: c}
}

func (r *PetRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	q := url.Values{}
	if filter.ShelterID != "" {
		q.Set("shelter_id", filter.ShelterID)
	}
	if filter.Species != "" {
		q.Set("species", string(filter.Species))
	}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	path := "/pets"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []petDTO
	if err := r.c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return toPets(out), nil
}

func (r *PetRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	var out petDTO
	if err := r.c.do(ctx, http.MethodGet, pathf("/pets/%s", id), nil, &out); err != nil {
		return pets.Pet{}, err
	}
	return out.domain(), nil
}

func (r *PetRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	var out petDTO
	if err := r.c.do(ctx, http.MethodPost, "/pets", toPetDTO(p), &out); err != nil {
		return pets.Pet{}, err
	}
	return out.domain(), nil
}

func (r *PetRepo) Update(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	var out petDTO
	if err := r.c.do(ctx, http.MethodPut, pathf("/pets/%s", p.ID), toPetDTO(p), &out); err != nil {
		return pets.Pet{}, err
	}
	return out.domain(), nil
}

func (r *PetRepo) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, pathf("/pets/%s", id), nil, nil)
}

var _ pets.Repository = (*PetRepo)(nil)
