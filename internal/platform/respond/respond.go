package respond

import (
	"errors"
	"net/http"

	"pet-shelter-hub/internal/platform/httpclient"
	"pet-shelter-hub/internal/ports/auth"

	json "github.com/goccy/go-json"
)

// Sentinels comunes; cada dominio los re-exporta con su nombre.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// JSON escribe v con el status indicado.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Status traduce errores de servicio/adapters a códigos HTTP.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrForbidden):
		return http.StatusForbidden
	case httpclient.StatusCode(err) != 0:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error escribe un texto corto según Status(err). Los 5xx no exponen detalle.
func Error(w http.ResponseWriter, err error) {
	st := Status(err)
	switch st {
	case http.StatusBadGateway:
		http.Error(w, "upstream error", st)
	case http.StatusInternalServerError:
		http.Error(w, "internal error", st)
	default:
		http.Error(w, err.Error(), st)
	}
}
