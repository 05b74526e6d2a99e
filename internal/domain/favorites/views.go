package favorites

import (
	"sync"

	"pet-shelter-hub/internal/reconcile"

	"github.com/golang/groupcache/lru"
)

const (
	maxViewUsers    = 4096
	maxViewsPerUser = 16
)

// views guarda un reconcile.Store por (usuario, filtro).
// Cada listado que ve el usuario es una vista; un toggle aplica a todas las que contienen la entidad.
// Usuarios y vistas por usuario se acotan con LRU: una vista desalojada se rearma en el próximo listado.
type views[E reconcile.Identifiable] struct {
	mu    sync.Mutex
	users *lru.Cache
}

// userViews indexa las vistas de un usuario; stores refleja lo que queda en order.
type userViews[E reconcile.Identifiable] struct {
	order  *lru.Cache
	stores map[string]*reconcile.Store[E]
}

func newViews[E reconcile.Identifiable]() *views[E] {
	return &views[E]{users: lru.New(maxViewUsers)}
}

func newUserViews[E reconcile.Identifiable]() *userViews[E] {
	u := &userViews[E]{
		order:  lru.New(maxViewsPerUser),
		stores: map[string]*reconcile.Store[E]{},
	}
	u.order.OnEvicted = func(key lru.Key, _ interface{}) {
		delete(u.stores, key.(string))
	}
	return u
}

func (v *views[E]) get(userID, key string) *reconcile.Store[E] {
	v.mu.Lock()
	defer v.mu.Unlock()

	var u *userViews[E]
	if got, ok := v.users.Get(userID); ok {
		u = got.(*userViews[E])
	} else {
		u = newUserViews[E]()
		v.users.Add(userID, u)
	}

	if got, ok := u.order.Get(key); ok {
		return got.(*reconcile.Store[E])
	}
	s := reconcile.NewStore[E]()
	u.stores[key] = s
	u.order.Add(key, s)
	return s
}

// all no toca el orden LRU: un toggle no cuenta como uso del listado.
func (v *views[E]) all(userID string) []*reconcile.Store[E] {
	v.mu.Lock()
	defer v.mu.Unlock()

	got, ok := v.users.Get(userID)
	if !ok {
		return nil
	}
	u := got.(*userViews[E])
	out := make([]*reconcile.Store[E], 0, len(u.stores))
	for _, s := range u.stores {
		out = append(out, s)
	}
	return out
}
