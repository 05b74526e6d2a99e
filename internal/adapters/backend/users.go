package backend

import (
	"context"
	"net/http"

	"pet-shelter-hub/internal/domain/users"
	"pet-shelter-hub/internal/ports/auth"
)

type userDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
}

func (d userDTO) domain() users.User {
	return users.User{
		ID:    d.ID,
		Name:  d.Name,
		Email: d.Email,
		Phone: d.Phone,
		Role:  auth.ParseRole(d.Role),
	}
}

func toUserDTO(u users.User) userDTO {
	return userDTO{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, Role: string(u.Role)}
}

type UserRepo struct {
	c *Client
}

func NewUserRepo(c *Client) *UserRepo {
	return &UserRepo{c: c}
}

func (r *UserRepo) List(ctx context.Context) ([]users.User, error) {
	var out []userDTO
	if err := r.c.do(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	list := make([]users.User, 0, len(out))
	for _, d := range out {
		list = append(list, d.domain())
	}
	return list, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	var out userDTO
	if err := r.c.do(ctx, http.MethodGet, pathf("/users/%s", id), nil, &out); err != nil {
		return users.User{}, err
	}
	return out.domain(), nil
}

func (r *UserRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	var out userDTO
	if err := r.c.do(ctx, http.MethodPost, "/users", toUserDTO(u), &out); err != nil {
		return users.User{}, err
	}
	return out.domain(), nil
}

func (r *UserRepo) Update(ctx context.Context, u users.User) (users.User, error) {
	var out userDTO
	if err := r.c.do(ctx, http.MethodPut, pathf("/users/%s", u.ID), toUserDTO(u), &out); err != nil {
		return users.User{}, err
	}
	return out.domain(), nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, pathf("/users/%s", id), nil, nil)
}

var _ users.Repository = (*UserRepo)(nil)
