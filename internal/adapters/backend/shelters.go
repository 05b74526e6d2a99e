package backend

import (
	"context"
	"net/http"

	"pet-shelter-hub/internal/domain/shelters"
)

type shelterDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city,omitempty"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

func (d shelterDTO) domain() shelters.Shelter {
	return shelters.Shelter{
		ID:          d.ID,
		Name:        d.Name,
		City:        d.City,
		Address:     d.Address,
		Phone:       d.Phone,
		Email:       d.Email,
		Description: d.Description,
		ImageURL:    d.ImageURL,
	}
}

func toShelterDTO(s shelters.Shelter) shelterDTO {
	return shelterDTO{
		ID:          s.ID,
		Name:        s.Name,
		City:        s.City,
		Address:     s.Address,
		Phone:       s.Phone,
		Email:       s.Email,
		Description: s.Description,
		ImageURL:    s.ImageURL,
	}
}

func toShelters(in []shelterDTO) []shelters.Shelter {
	out := make([]shelters.Shelter, 0, len(in))
	for _, d := range in {
		out = append(out, d.domain())
	}
	return out
}

type ShelterRepo struct {
	c *Client
}

func NewShelterRepo(c *Client) *ShelterRepo {
	return &ShelterRepo{c: c}
}

func (r *ShelterRepo) List(ctx context.Context) ([]shelters.Shelter, error) {
	var out []shelterDTO
	if err := r.c.do(ctx, http.MethodGet, "/shelters", nil, &out); err != nil {
		return nil, err
	}
	return toShelters(out), nil
}

func (r *ShelterRepo) GetByID(ctx context.Context, id string) (shelters.Shelter, error) {
	var out shelterDTO
	if err := r.c.do(ctx, http.MethodGet, pathf("/shelters/%s", id), nil, &out); err != nil {
		return shelters.Shelter{}, err
	}
	return out.domain(), nil
}

func (r *ShelterRepo) Create(ctx context.Context, s shelters.Shelter) (shelters.Shelter, error) {
	var out shelterDTO
	if err := r.c.do(ctx, http.MethodPost, "/shelters", toShelterDTO(s), &out); err != nil {
		return shelters.Shelter{}, err
	}
	return out.domain(), nil
}

func (r *ShelterRepo) Update(ctx context.Context, s shelters.Shelter) (shelters.Shelter, error) {
	var out shelterDTO
	if err := r.c.do(ctx, http.MethodPut, pathf("/shelters/%s", s.ID), toShelterDTO(s), &out); err != nil {
		return shelters.Shelter{}, err
	}
	return out.domain(), nil
}

func (r *ShelterRepo) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, pathf("/shelters/%s", id), nil, nil)
}

var _ shelters.Repository = (*ShelterRepo)(nil)
