package favorites

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"pet-shelter-hub/internal/domain/pets"
	"pet-shelter-hub/internal/domain/shelters"
	"pet-shelter-hub/internal/platform/logger"
	"pet-shelter-hub/internal/platform/respond"
	"pet-shelter-hub/internal/ports/auth"
	"pet-shelter-hub/internal/reconcile"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInput = respond.ErrInvalidInput
	ErrNotFound     = respond.ErrNotFound

	// ErrPending: ya hay un toggle en vuelo para esa entidad.
	ErrPending = errors.New("favorite toggle already pending")
	// ErrToggleNotConfirmed: el backend rechazó el toggle y la vista se revirtió.
	ErrToggleNotConfirmed = errors.New("favorite toggle not confirmed")
)

const (
	defaultJournalLimit = 50
	maxJournalLimit     = 200

	allShelters = "all"
)

type Service struct {
	repo     Repository
	shelters *shelters.Service
	pets     *pets.Service
	journal  Journal
	log      logger.Logger
	now      func() time.Time

	shelterViews *views[shelters.Shelter]
	petViews     *views[pets.Pet]

	// toggles en vuelo por usuario|kind|id, haya o no vista cargada
	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewService(repo Repository, sheltersSvc *shelters.Service, petsSvc *pets.Service, journal Journal, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:         repo,
		shelters:     sheltersSvc,
		pets:         petsSvc,
		journal:      journal,
		log:          log.With(map[string]any{"component": "favorites"}),
		now:          time.Now,
		shelterViews: newViews[shelters.Shelter](),
		petViews:     newViews[pets.Pet](),
		inflight:     map[string]struct{}{},
	}
}

// Shelters devuelve todos los refugios anotados con los favoritos de viewer.
// Lista principal y favoritos se piden en paralelo; cada respuesta alimenta la vista al llegar.
func (s *Service) Shelters(ctx context.Context, viewer auth.Claims) ([]reconcile.Merged[shelters.Shelter], error) {
	store := s.shelterViews.get(viewer.UserID, allShelters)

	err := loadView(ctx, s.log, store,
		func(ctx context.Context) ([]shelters.Shelter, error) { return s.shelters.List(ctx) },
		func(ctx context.Context) ([]shelters.Shelter, error) { return s.repo.ListShelters(ctx, viewer.UserID) },
		map[string]any{"user_id": viewer.UserID, "kind": KindShelters},
	)
	if err != nil {
		return nil, err
	}
	return store.Items(), nil
}

// Pets es Shelters para mascotas; cada filtro es una vista distinta.
func (s *Service) Pets(ctx context.Context, viewer auth.Claims, filter pets.ListFilter) ([]reconcile.Merged[pets.Pet], error) {
	store := s.petViews.get(viewer.UserID, filter.Key())

	err := loadView(ctx, s.log, store,
		func(ctx context.Context) ([]pets.Pet, error) { return s.pets.List(ctx, filter) },
		func(ctx context.Context) ([]pets.Pet, error) { return s.repo.ListPets(ctx, viewer.UserID) },
		map[string]any{"user_id": viewer.UserID, "kind": KindPets, "filter": filter.Key()},
	)
	if err != nil {
		return nil, err
	}
	return store.Items(), nil
}

func loadView[E reconcile.Identifiable](
	ctx context.Context,
	log logger.Logger,
	store *reconcile.Store[E],
	primary func(context.Context) ([]E, error),
	favorites func(context.Context) ([]E, error),
	fields map[string]any,
) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := primary(gctx)
		if err != nil {
			return err
		}
		store.LoadPrimary(items)
		return nil
	})

	g.Go(func() error {
		favs, err := favorites(gctx)
		if err != nil {
			// sin favoritos frescos se sigue con los últimos conocidos.
			// Canceled viene de una falla de la lista principal, que ya se devuelve.
			if !errors.Is(err, context.Canceled) {
				log.Warn("favorites fetch failed, using last known set", withErr(fields, err))
			}
			return nil
		}
		store.LoadFavorites(favs)
		return nil
	})

	return g.Wait()
}

// FavoriteShelters lista solo los refugios favoritos (pantalla "Mis favoritos").
func (s *Service) FavoriteShelters(ctx context.Context, viewer auth.Claims) ([]shelters.Shelter, error) {
	return s.repo.ListShelters(ctx, viewer.UserID)
}

func (s *Service) FavoritePets(ctx context.Context, viewer auth.Claims) ([]pets.Pet, error) {
	return s.repo.ListPets(ctx, viewer.UserID)
}

// IsFavoriteShelter y IsFavoritePet resuelven is_fav para las pantallas de detalle.
func (s *Service) IsFavoriteShelter(ctx context.Context, viewer auth.Claims, id string) (bool, error) {
	return isFavorite(ctx, id, func(ctx context.Context) ([]shelters.Shelter, error) {
		return s.repo.ListShelters(ctx, viewer.UserID)
	})
}

func (s *Service) IsFavoritePet(ctx context.Context, viewer auth.Claims, id string) (bool, error) {
	return isFavorite(ctx, id, func(ctx context.Context) ([]pets.Pet, error) {
		return s.repo.ListPets(ctx, viewer.UserID)
	})
}

func isFavorite[E reconcile.Identifiable](ctx context.Context, id string, favorites func(context.Context) ([]E, error)) (bool, error) {
	favs, err := favorites(ctx)
	if err != nil {
		return false, err
	}
	return reconcile.NewFavoriteSet(favs).Has(id), nil
}

// Toggle aplica el cambio optimista en todas las vistas del usuario que contienen la entidad,
// llama al backend y confirma o revierte según la respuesta.
// Si el backend falla devuelve ErrToggleNotConfirmed junto con el resultado ya revertido.
func (s *Service) Toggle(ctx context.Context, viewer auth.Claims, kind Kind, entityID string) (ToggleResult, error) {
	entityID = strings.TrimSpace(entityID)
	if strings.TrimSpace(viewer.UserID) == "" || entityID == "" {
		return ToggleResult{}, ErrInvalidInput
	}

	switch kind {
	case KindShelters, KindPets:
	default:
		return ToggleResult{}, fmt.Errorf("kind %q: %w", kind, ErrInvalidInput)
	}

	release, ok := s.acquire(viewer.UserID, kind, entityID)
	if !ok {
		return ToggleResult{}, ErrPending
	}
	defer release()

	if kind == KindShelters {
		return toggle(ctx, s, s.shelterViews, viewer, kind, entityID,
			func(ctx context.Context, id string) error {
				_, err := s.shelters.GetByID(ctx, id)
				return err
			},
			func(ctx context.Context) ([]shelters.Shelter, error) { return s.repo.ListShelters(ctx, viewer.UserID) },
		)
	}
	return toggle(ctx, s, s.petViews, viewer, kind, entityID,
		func(ctx context.Context, id string) error {
			_, err := s.pets.GetByID(ctx, id)
			return err
		},
		func(ctx context.Context) ([]pets.Pet, error) { return s.repo.ListPets(ctx, viewer.UserID) },
	)
}

// acquire marca el toggle como en vuelo. false si ya había uno para la misma entidad.
func (s *Service) acquire(userID string, kind Kind, id string) (func(), bool) {
	key := userID + "|" + string(kind) + "|" + id

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[key]; busy {
		return nil, false
	}
	s.inflight[key] = struct{}{}

	return func() {
		s.mu.Lock()
		delete(s.inflight, key)
		s.mu.Unlock()
	}, true
}

func toggle[E reconcile.Identifiable](
	ctx context.Context,
	s *Service,
	v *views[E],
	viewer auth.Claims,
	kind Kind,
	id string,
	exists func(context.Context, string) error,
	favorites func(context.Context) ([]E, error),
) (ToggleResult, error) {
	var (
		touched []*reconcile.Store[E]
		desired bool
		known   bool
	)

	for _, st := range v.all(viewer.UserID) {
		val, err := st.Toggle(id)
		if errors.Is(err, reconcile.ErrUnknownID) {
			continue
		}
		if err != nil {
			for _, t := range touched {
				t.Revert(id)
			}
			return ToggleResult{}, ErrPending
		}
		touched = append(touched, st)
		desired, known = val, true
	}

	// Sin vista cargada no hay cambio optimista: se valida que exista y el valor
	// previo sale de los favoritos del backend.
	if !known {
		if err := exists(ctx, id); err != nil {
			return ToggleResult{}, err
		}
		prev, err := isFavorite(ctx, id, favorites)
		if err != nil {
			return ToggleResult{}, fmt.Errorf("favorites lookup: %w", err)
		}
		desired = !prev
	}

	fields := map[string]any{"user_id": viewer.UserID, "kind": kind, "entity_id": id}

	actual, err := s.repo.Toggle(ctx, viewer.UserID, kind, id)
	if err != nil {
		for _, t := range touched {
			t.Revert(id)
		}
		s.log.Warn("favorite toggle reverted", withErr(fields, err))
		s.record(ctx, JournalEntry{
			UserID:   viewer.UserID,
			Kind:     kind,
			EntityID: id,
			Desired:  desired,
			Outcome:  OutcomeReverted,
			Error:    err.Error(),
		})
		return ToggleResult{
			Kind:      kind,
			EntityID:  id,
			IsFav:     !desired,
			Confirmed: false,
		}, fmt.Errorf("%w: %w", ErrToggleNotConfirmed, err)
	}

	for _, t := range touched {
		t.Confirm(id, actual)
	}
	if actual != desired {
		// el backend quedó distinto a lo pedido (otro dispositivo); las vistas ya guardan su valor
		s.log.Warn("favorite toggle drift", map[string]any{
			"user_id": viewer.UserID, "kind": kind, "entity_id": id, "desired": desired, "actual": actual,
		})
	}

	s.record(ctx, JournalEntry{
		UserID:   viewer.UserID,
		Kind:     kind,
		EntityID: id,
		Desired:  desired,
		Outcome:  OutcomeConfirmed,
	})

	return ToggleResult{
		Kind:      kind,
		EntityID:  id,
		IsFav:     actual,
		Confirmed: true,
	}, nil
}

// Journal lista los últimos toggles del usuario, más reciente primero.
func (s *Service) Journal(ctx context.Context, viewer auth.Claims, limit int) ([]JournalEntry, error) {
	if strings.TrimSpace(viewer.UserID) == "" {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		limit = defaultJournalLimit
	}
	if limit > maxJournalLimit {
		limit = maxJournalLimit
	}
	if s.journal == nil {
		return []JournalEntry{}, nil
	}
	return s.journal.ListByUser(ctx, viewer.UserID, limit)
}

func (s *Service) record(ctx context.Context, e JournalEntry) {
	if s.journal == nil {
		return
	}
	e.ID = uuid.NewString()
	e.CreatedAt = s.now().UTC()

	// el journal es best-effort: no cambia el resultado del toggle
	if err := s.journal.Record(context.WithoutCancel(ctx), e); err != nil {
		s.log.Error("journal record failed", map[string]any{
			"entry_id": e.ID, "user_id": e.UserID, "error": err,
		})
	}
}

func withErr(fields map[string]any, err error) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["error"] = err
	return out
}
