package favorites

import (
	"strings"
	"time"
)

// Kind es el tipo de entidad favoriteable.
type Kind string

const (
	KindShelters Kind = "shelters"
	KindPets     Kind = "pets"
)

func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindShelters:
		return KindShelters, true
	case KindPets:
		return KindPets, true
	}
	return "", false
}

type Outcome string

const (
	OutcomeConfirmed Outcome = "confirmed"
	OutcomeReverted  Outcome = "reverted"
)

// JournalEntry registra el resultado de cada toggle (confirmado o revertido).
type JournalEntry struct {
	ID       string
	UserID   string
	Kind     Kind
	EntityID string

	// valor que pidió el usuario
	Desired bool
	Outcome Outcome
	Error   string

	CreatedAt time.Time
}

// ToggleResult es lo que ve el usuario después del toggle.
// Si Confirmed es false, IsFav ya quedó revertido al valor previo.
type ToggleResult struct {
	Kind      Kind
	EntityID  string
	IsFav     bool
	Confirmed bool
}
