package pets

import (
	"context"
	"fmt"
	"strings"

	"pet-shelter-hub/internal/platform/respond"
)

var (
	ErrInvalidInput = respond.ErrInvalidInput
	ErrNotFound     = respond.ErrNotFound
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	ShelterID   string
	Name        string
	Species     string
	Breed       string
	Sex         string
	AgeMonths   int
	Description string
	ImageURL    string
	Status      string
}

func (in Input) normalize() (Pet, error) {
	p := Pet{
		ShelterID:   strings.TrimSpace(in.ShelterID),
		Name:        strings.TrimSpace(in.Name),
		Breed:       strings.TrimSpace(in.Breed),
		AgeMonths:   in.AgeMonths,
		Description: strings.TrimSpace(in.Description),
		ImageURL:    strings.TrimSpace(in.ImageURL),
	}
	if p.ShelterID == "" {
		return Pet{}, fmt.Errorf("shelter_id required: %w", ErrInvalidInput)
	}
	if p.Name == "" {
		return Pet{}, fmt.Errorf("name required: %w", ErrInvalidInput)
	}
	if p.AgeMonths < 0 {
		return Pet{}, fmt.Errorf("age_months must be >= 0: %w", ErrInvalidInput)
	}

	var ok bool
	if p.Species, ok = parseSpecies(strings.ToLower(strings.TrimSpace(in.Species))); !ok {
		return Pet{}, fmt.Errorf("species must be dog, cat or other: %w", ErrInvalidInput)
	}
	if p.Sex, ok = parseSex(strings.ToLower(strings.TrimSpace(in.Sex))); !ok {
		return Pet{}, fmt.Errorf("sex must be male, female or unknown: %w", ErrInvalidInput)
	}
	if p.Status, ok = parseStatus(strings.ToLower(strings.TrimSpace(in.Status))); !ok {
		return Pet{}, fmt.Errorf("status must be available, pending or adopted: %w", ErrInvalidInput)
	}
	return p, nil
}

// NormalizeFilter valida los valores que llegan por query string.
func NormalizeFilter(shelterID, species, status string) (ListFilter, error) {
	f := ListFilter{ShelterID: strings.TrimSpace(shelterID)}

	if sp := strings.ToLower(strings.TrimSpace(species)); sp != "" {
		v, ok := parseSpecies(sp)
		if !ok {
			return ListFilter{}, fmt.Errorf("species filter invalid: %w", ErrInvalidInput)
		}
		f.Species = v
	}
	if st := strings.ToLower(strings.TrimSpace(status)); st != "" {
		v, ok := parseStatus(st)
		if !ok {
			return ListFilter{}, fmt.Errorf("status filter invalid: %w", ErrInvalidInput)
		}
		f.Status = v
	}
	return f, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Pet, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (Pet, error) {
	p, err := in.normalize()
	if err != nil {
		return Pet{}, err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	p, err := in.normalize()
	if err != nil {
		return Pet{}, err
	}
	p.ID = id
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
