package shelters

import (
	"context"
	"fmt"
	"net/mail"
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

// Input se usa tanto para crear como para reemplazar (PUT).
type Input struct {
	Name        string
	City        string
	Address     string
	Phone       string
	Email       string
	Description string
	ImageURL    string
}

func (in Input) normalize() (Shelter, error) {
	s := Shelter{
		Name:        strings.TrimSpace(in.Name),
		City:        strings.TrimSpace(in.City),
		Address:     strings.TrimSpace(in.Address),
		Phone:       strings.TrimSpace(in.Phone),
		Email:       strings.TrimSpace(in.Email),
		Description: strings.TrimSpace(in.Description),
		ImageURL:    strings.TrimSpace(in.ImageURL),
	}
	if s.Name == "" {
		return Shelter{}, fmt.Errorf("name required: %w", ErrInvalidInput)
	}
	if s.Email != "" {
		addr, err := mail.ParseAddress(s.Email)
		if err != nil {
			return Shelter{}, fmt.Errorf("email invalid: %w", ErrInvalidInput)
		}
		s.Email = addr.Address
	}
	return s, nil
}

func (s *Service) List(ctx context.Context) ([]Shelter, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Shelter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Shelter{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (Shelter, error) {
	sh, err := in.normalize()
	if err != nil {
		return Shelter{}, err
	}
	return s.repo.Create(ctx, sh)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Shelter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Shelter{}, ErrInvalidInput
	}
	sh, err := in.normalize()
	if err != nil {
		return Shelter{}, err
	}
	sh.ID = id
	return s.repo.Update(ctx, sh)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
