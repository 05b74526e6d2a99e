package users

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"pet-shelter-hub/internal/platform/respond"
	"pet-shelter-hub/internal/ports/auth"
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
	Name  string
	Email string
	Phone string
	Role  string
}

func (in Input) normalize() (User, error) {
	u := User{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.ToLower(strings.TrimSpace(in.Email)),
		Phone: strings.TrimSpace(in.Phone),
		Role:  auth.ParseRole(in.Role),
	}
	if u.Name == "" {
		return User{}, fmt.Errorf("name required: %w", ErrInvalidInput)
	}
	addr, err := mail.ParseAddress(u.Email)
	if err != nil {
		return User{}, fmt.Errorf("email invalid: %w", ErrInvalidInput)
	}
	u.Email = strings.ToLower(addr.Address)
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (User, error) {
	u, err := in.normalize()
	if err != nil {
		return User{}, err
	}
	return s.repo.Create(ctx, u)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrInvalidInput
	}
	u, err := in.normalize()
	if err != nil {
		return User{}, err
	}
	u.ID = id
	return s.repo.Update(ctx, u)
}

// Delete no permite que un admin se borre a sí mismo.
func (s *Service) Delete(ctx context.Context, actorID, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	if id == strings.TrimSpace(actorID) {
		return fmt.Errorf("cannot delete own account: %w", auth.ErrForbidden)
	}
	return s.repo.Delete(ctx, id)
}
