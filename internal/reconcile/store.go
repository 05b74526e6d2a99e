package reconcile

import (
	"errors"
	"sync"
)

var (
	ErrUnknownID = errors.New("reconcile: id not in primary list")
	ErrPending   = errors.New("reconcile: toggle already pending")
)

// Store mantiene la vista mergeada de una lista (refugios o mascotas) para un usuario.
// Es un reducer: LoadPrimary y LoadFavorites llegan en cualquier orden y cada uno
// recalcula la vista con Merge sobre los últimos inputs conocidos.
//
// Toggle aplica el cambio optimista; Confirm o Revert lo cierran cuando responde el backend.
// Si llega un Load mientras hay un toggle pendiente, la fila se recalcula desde los
// favoritos conocidos y el flag optimista se pierde hasta el Confirm.
type Store[E Identifiable] struct {
	mu sync.Mutex

	primary []E
	favs    FavoriteSet
	items   []Merged[E]

	// id -> valor deseado de IsFav mientras el backend no confirma
	pending map[string]bool
}

func NewStore[E Identifiable]() *Store[E] {
	return &Store[E]{
		favs:    FavoriteSet{},
		items:   []Merged[E]{},
		pending: map[string]bool{},
	}
}

// LoadPrimary reemplaza la lista principal y recalcula la vista.
func (s *Store[E]) LoadPrimary(primary []E) []Merged[E] {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.primary = append([]E(nil), primary...)
	s.items = MergeSet(s.primary, s.favs)
	return s.snapshot()
}

// LoadFavorites reemplaza el set de favoritos y recalcula la vista.
func (s *Store[E]) LoadFavorites(favorites []E) []Merged[E] {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.favs = NewFavoriteSet(favorites)
	s.items = MergeSet(s.primary, s.favs)
	return s.snapshot()
}

// Items devuelve una copia de la vista actual.
func (s *Store[E]) Items() []Merged[E] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Toggle invierte IsFav de id antes de que el backend confirme.
// Devuelve el nuevo valor optimista.
func (s *Store[E]) Toggle(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.pending[id]; busy {
		return false, ErrPending
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return false, ErrUnknownID
	}

	desired := !s.items[idx].IsFav
	s.items = ToggleFavorite(s.items, id)
	s.pending[id] = desired
	return desired, nil
}

// Confirm cierra el toggle pendiente de id con value, el valor que devolvió el backend.
// Puede diferir del deseado si otro dispositivo tocó el mismo favorito.
// Devuelve false si no había nada pendiente.
func (s *Store[E]) Confirm(id string, value bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pending[id]; !ok {
		return false
	}
	delete(s.pending, id)

	if value {
		s.favs[id] = struct{}{}
	} else {
		delete(s.favs, id)
	}
	s.rederive(id)
	return true
}

// Revert descarta el valor pendiente de id y vuelve al estado de los favoritos conocidos.
func (s *Store[E]) Revert(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pending[id]; !ok {
		return false
	}
	delete(s.pending, id)
	s.rederive(id)
	return true
}

// Pending informa si id tiene un toggle sin confirmar.
func (s *Store[E]) Pending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[id]
	return ok
}

func (s *Store[E]) rederive(id string) {
	out := make([]Merged[E], len(s.items))
	copy(out, s.items)
	for i := range out {
		if out[i].Entity.EntityID() == id {
			out[i].IsFav = s.favs.Has(id)
		}
	}
	s.items = out
}

func (s *Store[E]) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].Entity.EntityID() == id {
			return i
		}
	}
	return -1
}

func (s *Store[E]) snapshot() []Merged[E] {
	out := make([]Merged[E], len(s.items))
	copy(out, s.items)
	return out
}
