package forms

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindAdoption  Kind = "adoption"
	KindRescue    Kind = "rescue"
	KindSurrender Kind = "surrender"
	KindDonation  Kind = "donation"
)

func ParseKind(s string) (Kind, bool) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindAdoption, KindRescue, KindSurrender, KindDonation:
		return k, true
	}
	return "", false
}

type Contact struct {
	Name  string
	Email string
	Phone string
}

// Submission es un formulario enviado desde la app. Los campos que aplican dependen de Kind.
type Submission struct {
	ID     string
	Kind   Kind
	UserID string

	Contact Contact
	Message string

	// adoption / surrender / donation
	PetID     string
	ShelterID string

	// rescue: dónde está el animal
	Location string

	// surrender: datos del animal que se entrega
	PetName string
	Species string
	Reason  string

	// donation
	Amount   decimal.Decimal
	Currency string

	SubmittedAt time.Time
}
