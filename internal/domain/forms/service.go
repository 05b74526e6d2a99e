package forms

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"pet-shelter-hub/internal/platform/respond"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = respond.ErrInvalidInput
)

const DefaultCurrency = "USD"

var currencyRe = regexp.MustCompile(`^[A-Z]{3}$`)

// tope por donación; montos mayores se gestionan fuera de la app
var maxDonation = decimal.NewFromInt(100000)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Submit valida según Kind y reenvía al backend.
func (s *Service) Submit(ctx context.Context, userID string, in Submission) (Submission, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Submission{}, ErrInvalidInput
	}

	sub, err := normalize(in)
	if err != nil {
		return Submission{}, err
	}
	sub.UserID = userID
	sub.SubmittedAt = s.now().UTC()

	id, err := s.repo.Submit(ctx, sub)
	if err != nil {
		return Submission{}, err
	}
	sub.ID = id
	return sub, nil
}

func normalize(in Submission) (Submission, error) {
	out := in
	out.Contact = Contact{
		Name:  strings.TrimSpace(in.Contact.Name),
		Email: strings.TrimSpace(in.Contact.Email),
		Phone: strings.TrimSpace(in.Contact.Phone),
	}
	out.Message = strings.TrimSpace(in.Message)
	out.PetID = strings.TrimSpace(in.PetID)
	out.ShelterID = strings.TrimSpace(in.ShelterID)
	out.Location = strings.TrimSpace(in.Location)
	out.PetName = strings.TrimSpace(in.PetName)
	out.Species = strings.ToLower(strings.TrimSpace(in.Species))
	out.Reason = strings.TrimSpace(in.Reason)
	out.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))

	if out.Contact.Name == "" {
		return Submission{}, invalid("contact name required")
	}
	addr, err := mail.ParseAddress(out.Contact.Email)
	if err != nil {
		return Submission{}, invalid("contact email invalid")
	}
	out.Contact.Email = addr.Address

	switch out.Kind {
	case KindAdoption:
		if out.PetID == "" {
			return Submission{}, invalid("pet_id required for adoption")
		}
	case KindRescue:
		if out.Location == "" {
			return Submission{}, invalid("location required for rescue")
		}
		if out.Message == "" {
			return Submission{}, invalid("message required for rescue")
		}
	case KindSurrender:
		if out.PetName == "" || out.Species == "" {
			return Submission{}, invalid("pet_name and species required for surrender")
		}
		if out.Reason == "" {
			return Submission{}, invalid("reason required for surrender")
		}
	case KindDonation:
		if !out.Amount.IsPositive() {
			return Submission{}, invalid("amount must be > 0")
		}
		if !out.Amount.Equal(out.Amount.Round(2)) {
			return Submission{}, invalid("amount supports at most 2 decimals")
		}
		if out.Amount.GreaterThan(maxDonation) {
			return Submission{}, invalid("amount exceeds limit")
		}
		if out.Currency == "" {
			out.Currency = DefaultCurrency
		}
		if !currencyRe.MatchString(out.Currency) {
			return Submission{}, invalid("currency must be an ISO 4217 code")
		}
	default:
		return Submission{}, invalid("unknown form kind")
	}

	return out, nil
}

func invalid(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInvalidInput)
}
