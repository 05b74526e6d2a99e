package favorites

import (
	"context"

	"pet-shelter-hub/internal/domain/pets"
	"pet-shelter-hub/internal/domain/shelters"
)

// Repository es el lado remoto de favoritos (backend REST o memory).
type Repository interface {
	ListShelters(ctx context.Context, userID string) ([]shelters.Shelter, error)
	ListPets(ctx context.Context, userID string) ([]pets.Pet, error)

	// Toggle invierte el favorito en el backend y devuelve el estado resultante.
	Toggle(ctx context.Context, userID string, kind Kind, entityID string) (bool, error)
}

type Journal interface {
	Record(ctx context.Context, e JournalEntry) error
	ListByUser(ctx context.Context, userID string, limit int) ([]JournalEntry, error)
}
