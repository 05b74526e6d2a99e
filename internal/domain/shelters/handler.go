package shelters

import (
	"context"
	"net/http"

	"pet-shelter-hub/internal/middleware"
	"pet-shelter-hub/internal/platform/respond"
	"pet-shelter-hub/internal/ports/auth"
	"pet-shelter-hub/internal/reconcile"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
)

// FavoriteView arma la lista anotada con favoritos del usuario.
// La implementa favorites.Service; se inyecta desde el router para evitar el ciclo de imports.
type FavoriteView interface {
	Shelters(ctx context.Context, viewer auth.Claims) ([]reconcile.Merged[Shelter], error)
	IsFavoriteShelter(ctx context.Context, viewer auth.Claims, id string) (bool, error)
}

func RegisterRoutes(r chi.Router, svc *Service, view FavoriteView) {
	r.Route("/shelters", func(sr chi.Router) {
		sr.Get("/", listSheltersHandler(svc, view))
		sr.Get("/{shelterID}", getShelterHandler(svc, view))
	})

	r.Route("/admin/shelters", func(ar chi.Router) {
		ar.Use(middleware.RequireAdmin)
		ar.Post("/", createShelterHandler(svc))
		ar.Put("/{shelterID}", updateShelterHandler(svc))
		ar.Delete("/{shelterID}", deleteShelterHandler(svc))
	})
}

type shelterRequest struct {
	Name        string `json:"name"`
	City        string `json:"city"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func (req shelterRequest) input() Input {
	return Input{
		Name:        req.Name,
		City:        req.City,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
}

// shelterResponse es un refugio tal como lo consume la app.
type shelterResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsFav       bool   `json:"is_fav"`
}

// listSheltersHandler godoc
// @Summary Listar refugios
// @Description Lista de refugios anotada con is_fav para el usuario autenticado. Anónimo: is_fav siempre false.
// @Tags shelters
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token"
// @Success 200 {array} shelterResponse
// @Failure 502 {string} string "upstream error"
// @Router /shelters [get]
func listSheltersHandler(svc *Service, view FavoriteView) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			merged []reconcile.Merged[Shelter]
			err    error
		)

		if claims, ok := middleware.GetClaims(r.Context()); ok && view != nil {
			merged, err = view.Shelters(r.Context(), claims)
		} else {
			var items []Shelter
			items, err = svc.List(r.Context())
			merged = reconcile.Merge(items, nil)
		}
		if err != nil {
			respond.Error(w, err)
			return
		}

		out := make([]shelterResponse, 0, len(merged))
		for _, m := range merged {
			out = append(out, toShelterResponse(m.Entity, m.IsFav))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getShelterHandler godoc
// @Summary Detalle de refugio
// @Tags shelters
// @Produce json
// @Param shelterID path string true "ID del refugio"
// @Success 200 {object} shelterResponse
// @Failure 404 {string} string "not found"
// @Router /shelters/{shelterID} [get]
func getShelterHandler(svc *Service, view FavoriteView) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := svc.GetByID(r.Context(), chi.URLParam(r, "shelterID"))
		if err != nil {
			respond.Error(w, err)
			return
		}

		isFav := false
		if claims, ok := middleware.GetClaims(r.Context()); ok && view != nil {
			if isFav, err = view.IsFavoriteShelter(r.Context(), claims, s.ID); err != nil {
				respond.Error(w, err)
				return
			}
		}
		respond.JSON(w, http.StatusOK, toShelterResponse(s, isFav))
	}
}

// createShelterHandler godoc
// @Summary Crear refugio (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body shelterRequest true "Datos del refugio"
// @Success 201 {object} shelterResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /admin/shelters [post]
func createShelterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req shelterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		s, err := svc.Create(r.Context(), req.input())
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toShelterResponse(s, false))
	}
}

// updateShelterHandler godoc
// @Summary Reemplazar refugio (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param shelterID path string true "ID del refugio"
// @Param payload body shelterRequest true "Datos del refugio"
// @Success 200 {object} shelterResponse
// @Router /admin/shelters/{shelterID} [put]
func updateShelterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req shelterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		s, err := svc.Update(r.Context(), chi.URLParam(r, "shelterID"), req.input())
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toShelterResponse(s, false))
	}
}

// deleteShelterHandler godoc
// @Summary Borrar refugio (admin)
// @Tags admin
// @Param shelterID path string true "ID del refugio"
// @Success 204
// @Router /admin/shelters/{shelterID} [delete]
func deleteShelterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "shelterID")); err != nil {
			respond.Error(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toShelterResponse(s Shelter, isFav bool) shelterResponse {
	return shelterResponse{
		ID:          s.ID,
		Name:        s.Name,
		City:        s.City,
		Address:     s.Address,
		Phone:       s.Phone,
		Email:       s.Email,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		IsFav:       isFav,
	}
}
