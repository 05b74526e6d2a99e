package backend

import (
	"context"
	"net/http"
	"strings"
	"time"

	"pet-shelter-hub/internal/domain/forms"

	"github.com/shopspring/decimal"
)

type contactDTO struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type submissionDTO struct {
	UserID    string     `json:"user_id"`
	Contact   contactDTO `json:"contact"`
	Message   string     `json:"message,omitempty"`
	PetID     string     `json:"pet_id,omitempty"`
	ShelterID string     `json:"shelter_id,omitempty"`
	Location  string     `json:"location,omitempty"`
	PetName   string     `json:"pet_name,omitempty"`
	Species   string     `json:"species,omitempty"`
	Reason    string     `json:"reason,omitempty"`

	// decimal serializa como string ("25.50")
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Currency string           `json:"currency,omitempty"`

	SubmittedAt time.Time `json:"submitted_at"`
}

type FormRepo struct {
	c *Client
}

func NewFormRepo(c *Client) *FormRepo {
	return &FormRepo{c: c}
}

func (r *FormRepo) Submit(ctx context.Context, s forms.Submission) (string, error) {
	in := submissionDTO{
		UserID:      s.UserID,
		Contact:     contactDTO(s.Contact),
		Message:     s.Message,
		PetID:       s.PetID,
		ShelterID:   s.ShelterID,
		Location:    s.Location,
		PetName:     s.PetName,
		Species:     s.Species,
		Reason:      s.Reason,
		Currency:    s.Currency,
		SubmittedAt: s.SubmittedAt,
	}
	if s.Kind == forms.KindDonation {
		amount := s.Amount
		in.Amount = &amount
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := r.c.do(ctx, http.MethodPost, pathf("/forms/%s", string(s.Kind)), in, &out); err != nil {
		return "", err
	}
	return strings.TrimSpace(out.ID), nil
}

var _ forms.Repository = (*FormRepo)(nil)
