package pets

import "context"

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Pet, error)
	GetByID(ctx context.Context, id string) (Pet, error)
	Create(ctx context.Context, p Pet) (Pet, error)
	Update(ctx context.Context, p Pet) (Pet, error)
	Delete(ctx context.Context, id string) error
}

// ListFilter: campos vacíos = sin filtro.
type ListFilter struct {
	ShelterID string
	Species   Species
	Status    Status
}

// Key identifica el filtro para cachear vistas por combinación.
func (f ListFilter) Key() string {
	return f.ShelterID + "|" + string(f.Species) + "|" + string(f.Status)
}

// Match aplica el filtro en memoria.
func (f ListFilter) Match(p Pet) bool {
	if f.ShelterID != "" && p.ShelterID != f.ShelterID {
		return false
	}
	if f.Species != "" && p.Species != f.Species {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	return true
}
