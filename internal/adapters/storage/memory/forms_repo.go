package memory

import (
	"context"
	"sync"

	"pet-shelter-hub/internal/domain/forms"

	"github.com/google/uuid"
)

// FormRepo acumula los formularios recibidos; en dev no hay a quién reenviarlos.
type FormRepo struct {
	mu  sync.RWMutex
	all []forms.Submission
}

func NewFormRepo() *FormRepo {
	return &FormRepo{}
}

func (r *FormRepo) Submit(ctx context.Context, s forms.Submission) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = uuid.NewString()
	r.all = append(r.all, s)
	return s.ID, nil
}

// Submissions devuelve una copia de lo recibido.
func (r *FormRepo) Submissions() []forms.Submission {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]forms.Submission(nil), r.all...)
}
