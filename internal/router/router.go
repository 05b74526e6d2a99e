package router

import (
	"context"
	"database/sql"
	"net/http"

	_ "pet-shelter-hub/docs"
	"pet-shelter-hub/internal/adapters/backend"
	mem "pet-shelter-hub/internal/adapters/storage/memory"
	pg "pet-shelter-hub/internal/adapters/storage/postgres"
	"pet-shelter-hub/internal/domain/favorites"
	"pet-shelter-hub/internal/domain/forms"
	"pet-shelter-hub/internal/domain/pets"
	"pet-shelter-hub/internal/domain/shelters"
	"pet-shelter-hub/internal/domain/users"
	"pet-shelter-hub/internal/middleware"
	"pet-shelter-hub/internal/platform/logger"
	"pet-shelter-hub/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)
	Logger       logger.Logger

	// Opcional: si viene, refugios/mascotas/favoritos/formularios/usuarios van al backend REST.
	// Si no, in-memory con datos de ejemplo.
	Backend *backend.Client

	// Opcional: si viene, el journal de toggles va a Postgres. Si no, in-memory.
	DB *sql.DB
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		shelterRepo  shelters.Repository
		petRepo      pets.Repository
		favoriteRepo favorites.Repository
		formRepo     forms.Repository
		userRepo     users.Repository
		journal      favorites.Journal
	)

	if opts.Backend != nil {
		shelterRepo = backend.NewShelterRepo(opts.Backend)
		petRepo = backend.NewPetRepo(opts.Backend)
		favoriteRepo = backend.NewFavoriteRepo(opts.Backend)
		formRepo = backend.NewFormRepo(opts.Backend)
		userRepo = backend.NewUserRepo(opts.Backend)
	} else {
		shelterRepo = mem.NewShelterRepo()
		petRepo = mem.NewPetRepo()
		favoriteRepo = mem.NewFavoriteRepo(shelterRepo, petRepo)
		formRepo = mem.NewFormRepo()
		userRepo = mem.NewUserRepo()

		if err := mem.Seed(context.Background(), shelterRepo, petRepo); err != nil {
			log.Warn("memory seed failed", map[string]any{"error": err})
		}
	}

	if opts.DB != nil {
		journal = pg.NewJournalRepo(opts.DB)
	} else {
		journal = mem.NewJournalRepo()
	}

	// Services por módulo
	sheltersSvc := shelters.NewService(shelterRepo)
	petsSvc := pets.NewService(petRepo)
	favoritesSvc := favorites.NewService(favoriteRepo, sheltersSvc, petsSvc, journal, log)
	formsSvc := forms.NewService(formRepo)
	usersSvc := users.NewService(userRepo)

	// Rutas por módulo; favoritesSvc arma las listas con is_fav
	shelters.RegisterRoutes(r, sheltersSvc, favoritesSvc)
	pets.RegisterRoutes(r, petsSvc, favoritesSvc)
	favorites.RegisterRoutes(r, favoritesSvc)
	forms.RegisterRoutes(r, formsSvc)
	users.RegisterRoutes(r, usersSvc)

	return r
}
