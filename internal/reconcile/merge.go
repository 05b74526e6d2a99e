package reconcile

// Identifiable es cualquier entidad con un ID estable (refugio, mascota).
// El reconciler no interpreta ningún otro campo.
type Identifiable interface {
	EntityID() string
}

// Merged es una entidad anotada con su estado de favorito.
type Merged[E Identifiable] struct {
	Entity E
	IsFav  bool
}

// FavoriteSet es el conjunto de IDs marcados como favoritos por el usuario.
type FavoriteSet map[string]struct{}

// NewFavoriteSet arma el set a partir de una lista de favoritos.
func NewFavoriteSet[E Identifiable](favorites []E) FavoriteSet {
	set := make(FavoriteSet, len(favorites))
	for _, f := range favorites {
		set[f.EntityID()] = struct{}{}
	}
	return set
}

func (s FavoriteSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Merge anota cada entidad de primary con IsFav según favorites.
// Mantiene el orden y el largo de primary. nil se trata como lista vacía.
func Merge[E Identifiable](primary, favorites []E) []Merged[E] {
	return MergeSet(primary, NewFavoriteSet(favorites))
}

// MergeSet es Merge con el set ya construido.
func MergeSet[E Identifiable](primary []E, favs FavoriteSet) []Merged[E] {
	out := make([]Merged[E], 0, len(primary))
	for _, e := range primary {
		out = append(out, Merged[E]{
			Entity: e,
			IsFav:  favs.Has(e.EntityID()),
		})
	}
	return out
}

// ToggleFavorite devuelve una lista nueva con IsFav invertido para id.
// Si id no está en la lista, el resultado es igual (por valor) a la entrada.
func ToggleFavorite[E Identifiable](list []Merged[E], id string) []Merged[E] {
	out := make([]Merged[E], len(list))
	copy(out, list)
	for i := range out {
		if out[i].Entity.EntityID() == id {
			out[i].IsFav = !out[i].IsFav
		}
	}
	return out
}

// Entities devuelve las entidades sin anotar, en el mismo orden.
func Entities[E Identifiable](list []Merged[E]) []E {
	out := make([]E, 0, len(list))
	for _, m := range list {
		out = append(out, m.Entity)
	}
	return out
}
