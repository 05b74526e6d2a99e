package favorites

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pet-shelter-hub/internal/domain/pets"
	"pet-shelter-hub/internal/domain/shelters"
	"pet-shelter-hub/internal/middleware"
	"pet-shelter-hub/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/me/favorites", func(fr chi.Router) {
		fr.Get("/shelters", listFavoriteSheltersHandler(svc))
		fr.Get("/pets", listFavoritePetsHandler(svc))
		fr.Get("/journal", journalHandler(svc))

		fr.Post("/{kind}/{entityID}/toggle", toggleHandler(svc))
	})
}

type favoriteShelterResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	ImageURL string `json:"image_url"`
	IsFav    bool   `json:"is_fav"`
}

type favoritePetResponse struct {
	ID        string       `json:"id"`
	ShelterID string       `json:"shelter_id"`
	Name      string       `json:"name"`
	Species   pets.Species `json:"species"`
	Status    pets.Status  `json:"status"`
	ImageURL  string       `json:"image_url"`
	IsFav     bool         `json:"is_fav"`
}

// toggleResponse: con confirmed=false, is_fav ya está revertido y error trae el motivo.
type toggleResponse struct {
	Kind      Kind   `json:"kind"`
	EntityID  string `json:"entity_id"`
	IsFav     bool   `json:"is_fav"`
	Confirmed bool   `json:"confirmed"`
	Error     string `json:"error,omitempty"`
}

type journalEntryResponse struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	EntityID  string    `json:"entity_id"`
	Desired   bool      `json:"desired"`
	Outcome   Outcome   `json:"outcome"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// listFavoriteSheltersHandler godoc
// @Summary Mis refugios favoritos
// @Tags favorites
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token"
// @Success 200 {array} favoriteShelterResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/favorites/shelters [get]
func listFavoriteSheltersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.FavoriteShelters(r.Context(), claims)
		if err != nil {
			respond.Error(w, err)
			return
		}

		out := make([]favoriteShelterResponse, 0, len(items))
		for _, s := range items {
			out = append(out, toFavoriteShelter(s))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// listFavoritePetsHandler godoc
// @Summary Mis mascotas favoritas
// @Tags favorites
// @Produce json
// @Success 200 {array} favoritePetResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/favorites/pets [get]
func listFavoritePetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.FavoritePets(r.Context(), claims)
		if err != nil {
			respond.Error(w, err)
			return
		}

		out := make([]favoritePetResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toFavoritePet(p))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// toggleHandler godoc
// @Summary Marcar / desmarcar favorito
// @Description Cambio optimista sobre las vistas del usuario. Si el backend rechaza, se revierte y responde 502 con el estado revertido.
// @Tags favorites
// @Produce json
// @Param kind path string true "shelters|pets"
// @Param entityID path string true "ID del refugio o mascota"
// @Success 200 {object} toggleResponse
// @Failure 400 {string} string "kind inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "toggle pendiente"
// @Failure 502 {object} toggleResponse
// @Router /me/favorites/{kind}/{entityID}/toggle [post]
func toggleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		kind, ok := ParseKind(chi.URLParam(r, "kind"))
		if !ok {
			http.Error(w, "kind must be shelters or pets", http.StatusBadRequest)
			return
		}

		res, err := svc.Toggle(r.Context(), claims, kind, chi.URLParam(r, "entityID"))
		switch {
		case err == nil:
			respond.JSON(w, http.StatusOK, toToggleResponse(res, ""))
		case errors.Is(err, ErrToggleNotConfirmed):
			respond.JSON(w, http.StatusBadGateway, toToggleResponse(res, ErrToggleNotConfirmed.Error()))
		case errors.Is(err, ErrPending):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			respond.Error(w, err)
		}
	}
}

// journalHandler godoc
// @Summary Historial de toggles
// @Description Últimos toggles del usuario con su resultado (confirmed / reverted).
// @Tags favorites
// @Produce json
// @Param limit query int false "máximo de entradas (default 50, máx 200)"
// @Success 200 {array} journalEntryResponse
// @Router /me/favorites/journal [get]
func journalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = n
		}

		entries, err := svc.Journal(r.Context(), claims, limit)
		if err != nil {
			respond.Error(w, err)
			return
		}

		out := make([]journalEntryResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, journalEntryResponse{
				ID:        e.ID,
				Kind:      e.Kind,
				EntityID:  e.EntityID,
				Desired:   e.Desired,
				Outcome:   e.Outcome,
				Error:     e.Error,
				CreatedAt: e.CreatedAt,
			})
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func toToggleResponse(res ToggleResult, errMsg string) toggleResponse {
	return toggleResponse{
		Kind:      res.Kind,
		EntityID:  res.EntityID,
		IsFav:     res.IsFav,
		Confirmed: res.Confirmed,
		Error:     errMsg,
	}
}

func toFavoriteShelter(s shelters.Shelter) favoriteShelterResponse {
	return favoriteShelterResponse{
		ID:       s.ID,
		Name:     s.Name,
		City:     s.City,
		ImageURL: s.ImageURL,
		IsFav:    true,
	}
}

func toFavoritePet(p pets.Pet) favoritePetResponse {
	return favoritePetResponse{
		ID:        p.ID,
		ShelterID: p.ShelterID,
		Name:      p.Name,
		Species:   p.Species,
		Status:    p.Status,
		ImageURL:  p.ImageURL,
		IsFav:     true,
	}
}
