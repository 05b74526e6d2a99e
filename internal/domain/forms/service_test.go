package forms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	got []Submission
	err error
}

func (r *testRepo) Submit(ctx context.Context, s Submission) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.got = append(r.got, s)
	return "form-1", nil
}

func contact() Contact {
	return Contact{Name: " Ana ", Email: "ana@example.org"}
}

func TestService_Submit_Adoption(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	sub, err := svc.Submit(context.Background(), "u-1", Submission{
		Kind:    KindAdoption,
		Contact: contact(),
		PetID:   " pet-9 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "form-1", sub.ID)
	assert.Equal(t, "u-1", sub.UserID)
	assert.Equal(t, now, sub.SubmittedAt)

	require.Len(t, repo.got, 1)
	assert.Equal(t, "pet-9", repo.got[0].PetID)
	assert.Equal(t, "Ana", repo.got[0].Contact.Name)
}

func TestService_Submit_StoresBareEmailAddress(t *testing.T) {
	repo := &testRepo{}
	_, err := NewService(repo).Submit(context.Background(), "u-1", Submission{
		Kind:    KindAdoption,
		Contact: Contact{Name: "Ana", Email: " Ana Perez <ana@example.org> "},
		PetID:   "pet-9",
	})
	require.NoError(t, err)

	require.Len(t, repo.got, 1)
	assert.Equal(t, "ana@example.org", repo.got[0].Contact.Email)
}

func TestService_Submit_Validation(t *testing.T) {
	cases := []struct {
		name string
		in   Submission
	}{
		{"missing contact name", Submission{Kind: KindAdoption, Contact: Contact{Email: "a@b.co"}, PetID: "p"}},
		{"bad email", Submission{Kind: KindAdoption, Contact: Contact{Name: "A", Email: "nope"}, PetID: "p"}},
		{"adoption without pet", Submission{Kind: KindAdoption, Contact: contact()}},
		{"rescue without location", Submission{Kind: KindRescue, Contact: contact(), Message: "injured dog"}},
		{"rescue without message", Submission{Kind: KindRescue, Contact: contact(), Location: "park"}},
		{"surrender without reason", Submission{Kind: KindSurrender, Contact: contact(), PetName: "Rex", Species: "dog"}},
		{"donation zero", Submission{Kind: KindDonation, Contact: contact(), Amount: decimal.Zero}},
		{"donation negative", Submission{Kind: KindDonation, Contact: contact(), Amount: decimal.NewFromInt(-5)}},
		{"donation 3 decimals", Submission{Kind: KindDonation, Contact: contact(), Amount: decimal.RequireFromString("10.005")}},
		{"donation over limit", Submission{Kind: KindDonation, Contact: contact(), Amount: decimal.NewFromInt(100001)}},
		{"donation bad currency", Submission{Kind: KindDonation, Contact: contact(), Amount: decimal.NewFromInt(5), Currency: "dollars"}},
		{"unknown kind", Submission{Kind: "party", Contact: contact()}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &testRepo{}
			_, err := NewService(repo).Submit(context.Background(), "u-1", tc.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.got)
		})
	}
}

func TestService_Submit_DonationDefaultsCurrency(t *testing.T) {
	repo := &testRepo{}
	sub, err := NewService(repo).Submit(context.Background(), "u-1", Submission{
		Kind:    KindDonation,
		Contact: contact(),
		Amount:  decimal.RequireFromString("25.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultCurrency, sub.Currency)
	assert.True(t, sub.Amount.Equal(decimal.RequireFromString("25.5")))
}

func TestService_Submit_RequiresUserAndPropagatesRepoError(t *testing.T) {
	_, err := NewService(&testRepo{}).Submit(context.Background(), " ", Submission{Kind: KindAdoption, Contact: contact(), PetID: "p"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	boom := errors.New("backend down")
	_, err = NewService(&testRepo{err: boom}).Submit(context.Background(), "u-1", Submission{Kind: KindAdoption, Contact: contact(), PetID: "p"})
	assert.ErrorIs(t, err, boom)
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind(" Donation ")
	assert.True(t, ok)
	assert.Equal(t, KindDonation, k)

	_, ok = ParseKind("party")
	assert.False(t, ok)
}
