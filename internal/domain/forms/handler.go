package forms

import (
	"net/http"
	"time"

	"pet-shelter-hub/internal/middleware"
	"pet-shelter-hub/internal/platform/respond"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/forms/{kind}", submitFormHandler(svc))
}

// submitFormRequest cubre los cuatro formularios; cada uno usa sus campos.
type submitFormRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`

	PetID     string `json:"pet_id"`
	ShelterID string `json:"shelter_id"`

	Location string `json:"location"`

	PetName string `json:"pet_name"`
	Species string `json:"species"`
	Reason  string `json:"reason"`

	// acepta número o string ("25.50")
	Amount   decimal.Decimal `json:"amount" swaggertype:"string"`
	Currency string          `json:"currency"`
}

type submitFormResponse struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// submitFormHandler godoc
// @Summary Enviar formulario
// @Description Formularios de adopción, rescate, entrega (surrender) y donación. Se validan y se reenvían al backend.
// @Tags forms
// @Accept json
// @Produce json
// @Param kind path string true "adoption|rescue|surrender|donation"
// @Param payload body submitFormRequest true "Datos del formulario"
// @Success 201 {object} submitFormResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 502 {string} string "upstream error"
// @Router /forms/{kind} [post]
func submitFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		kind, ok := ParseKind(chi.URLParam(r, "kind"))
		if !ok {
			http.Error(w, "kind must be adoption, rescue, surrender or donation", http.StatusBadRequest)
			return
		}

		var req submitFormRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sub, err := svc.Submit(r.Context(), claims.UserID, Submission{
			Kind: kind,
			Contact: Contact{
				Name:  req.Name,
				Email: req.Email,
				Phone: req.Phone,
			},
			Message:   req.Message,
			PetID:     req.PetID,
			ShelterID: req.ShelterID,
			Location:  req.Location,
			PetName:   req.PetName,
			Species:   req.Species,
			Reason:    req.Reason,
			Amount:    req.Amount,
			Currency:  req.Currency,
		})
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusCreated, submitFormResponse{
			ID:          sub.ID,
			Kind:        sub.Kind,
			SubmittedAt: sub.SubmittedAt,
		})
	}
}
