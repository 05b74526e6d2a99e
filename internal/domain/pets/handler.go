package pets

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

// FavoriteView la implementa favorites.Service (inyectada por el router).
type FavoriteView interface {
	Pets(ctx context.Context, viewer auth.Claims, filter ListFilter) ([]reconcile.Merged[Pet], error)
	IsFavoritePet(ctx context.Context, viewer auth.Claims, id string) (bool, error)
}

func RegisterRoutes(r chi.Router, svc *Service, view FavoriteView) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc, view))
		pr.Get("/{petID}", getPetHandler(svc, view))
	})

	// Mascotas de un refugio (pantalla de detalle de refugio)
	r.Get("/shelters/{shelterID}/pets", listShelterPetsHandler(svc, view))

	r.Route("/admin/pets", func(ar chi.Router) {
		ar.Use(middleware.RequireAdmin)
		ar.Post("/", createPetHandler(svc))
		ar.Put("/{petID}", updatePetHandler(svc))
		ar.Delete("/{petID}", deletePetHandler(svc))
	})
}

type petRequest struct {
	ShelterID   string `json:"shelter_id"`
	Name        string `json:"name"`
	Species     string `json:"species" enums:"dog,cat,other"`
	Breed       string `json:"breed"`
	Sex         string `json:"sex" enums:"male,female,unknown"`
	AgeMonths   int    `json:"age_months"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Status      string `json:"status" enums:"available,pending,adopted"`
}

func (req petRequest) input() Input {
	return Input{
		ShelterID:   req.ShelterID,
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		Sex:         req.Sex,
		AgeMonths:   req.AgeMonths,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Status:      req.Status,
	}
}

type petResponse struct {
	ID          string  `json:"id"`
	ShelterID   string  `json:"shelter_id"`
	Name        string  `json:"name"`
	Species     Species `json:"species"`
	Breed       string  `json:"breed"`
	Sex         Sex     `json:"sex"`
	AgeMonths   int     `json:"age_months"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Status      Status  `json:"status"`
	IsFav       bool    `json:"is_fav"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Lista de mascotas anotada con is_fav. Filtros opcionales por refugio, especie y estado.
// @Tags pets
// @Produce json
// @Param shelter_id query string false "ID del refugio"
// @Param species query string false "dog|cat|other"
// @Param status query string false "available|pending|adopted"
// @Success 200 {array} petResponse
// @Failure 400 {string} string "filtro inválido"
// @Failure 502 {string} string "upstream error"
// @Router /pets [get]
func listPetsHandler(svc *Service, view FavoriteView) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter, err := NormalizeFilter(q.Get("shelter_id"), q.Get("species"), q.Get("status"))
		if err != nil {
			respond.Error(w, err)
			return
		}
		writeMergedPets(w, r, svc, view, filter)
	}
}

// listShelterPetsHandler godoc
// @Summary Mascotas de un refugio
// @Tags pets
// @Produce json
// @Param shelterID path string true "ID del refugio"
// @Success 200 {array} petResponse
// @Router /shelters/{shelterID}/pets [get]
func listShelterPetsHandler(svc *Service, view FavoriteView) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter, err := NormalizeFilter(chi.URLParam(r, "shelterID"), q.Get("species"), q.Get("status"))
		if err != nil {
			respond.Error(w, err)
			return
		}
		writeMergedPets(w, r, svc, view, filter)
	}
}

func writeMergedPets(w http.ResponseWriter, r *http.Request, svc *Service, view FavoriteView, filter ListFilter) {
	var (
		merged []reconcile.Merged[Pet]
		err    error
	)
	if claims, ok := middleware.GetClaims(r.Context()); ok && view != nil {
		merged, err = view.Pets(r.Context(), claims, filter)
	} else {
		var items []Pet
		items, err = svc.List(r.Context(), filter)
		merged = reconcile.Merge(items, nil)
	}
	if err != nil {
		respond.Error(w, err)
		return
	}

	out := make([]petResponse, 0, len(merged))
	for _, m := range merged {
		out = append(out, toPetResponse(m.Entity, m.IsFav))
	}
	respond.JSON(w, http.StatusOK, out)
}

// getPetHandler godoc
// @Summary Detalle de mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {string} string "not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, view FavoriteView) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			respond.Error(w, err)
			return
		}

		isFav := false
		if claims, ok := middleware.GetClaims(r.Context()); ok && view != nil {
			if isFav, err = view.IsFavoritePet(r.Context(), claims, p.ID); err != nil {
				respond.Error(w, err)
				return
			}
		}
		respond.JSON(w, http.StatusOK, toPetResponse(p, isFav))
	}
}

// createPetHandler godoc
// @Summary Crear mascota (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body petRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid input"
// @Router /admin/pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), req.input())
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toPetResponse(p, false))
	}
}

// updatePetHandler godoc
// @Summary Reemplazar mascota (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body petRequest true "Datos de la mascota"
// @Success 200 {object} petResponse
// @Router /admin/pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), req.input())
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toPetResponse(p, false))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota (admin)
// @Tags admin
// @Param petID path string true "ID de la mascota"
// @Success 204
// @Router /admin/pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			respond.Error(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toPetResponse(p Pet, isFav bool) petResponse {
	return petResponse{
		ID:          p.ID,
		ShelterID:   p.ShelterID,
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		Sex:         p.Sex,
		AgeMonths:   p.AgeMonths,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Status:      p.Status,
		IsFav:       isFav,
	}
}
