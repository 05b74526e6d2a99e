package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-shelter-hub/internal/domain/users"
	"pet-shelter-hub/internal/platform/respond"

	"github.com/google/uuid"
)

type userRepo struct {
	mu   sync.RWMutex
	byID map[string]users.User
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID: make(map[string]users.User),
	}
}

// emailTaken asume el lock tomado.
func (r *userRepo) emailTaken(email, exceptID string) bool {
	for id, u := range r.byID {
		if id != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func (r *userRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		u.ID = uuid.NewString()
	}
	if _, exists := r.byID[u.ID]; exists {
		return users.User{}, errors.New("user already exists")
	}
	if r.emailTaken(u.Email, u.ID) {
		return users.User{}, errors.Join(respond.ErrInvalidInput, errors.New("email already registered"))
	}
	r.byID[u.ID] = u
	return u, nil
}

func (r *userRepo) Update(ctx context.Context, u users.User) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[u.ID]; !exists {
		return users.User{}, ErrNotFound
	}
	if r.emailTaken(u.Email, u.ID) {
		return users.User{}, errors.Join(respond.ErrInvalidInput, errors.New("email already registered"))
	}
	r.byID[u.ID] = u
	return u, nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, ErrNotFound
	}
	return u, nil
}

func (r *userRepo) List(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}
