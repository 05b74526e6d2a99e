package memory

import (
	"context"
	"testing"
	"time"

	"pet-shelter-hub/internal/domain/favorites"
	"pet-shelter-hub/internal/domain/forms"
	"pet-shelter-hub/internal/domain/pets"
	"pet-shelter-hub/internal/domain/users"
	"pet-shelter-hub/internal/platform/respond"
	"pet-shelter-hub/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) (context.Context, *shelterRepo, *petRepo) {
	t.Helper()
	ctx := context.Background()
	sr := NewShelterRepo().(*shelterRepo)
	pr := NewPetRepo().(*petRepo)
	require.NoError(t, Seed(ctx, sr, pr))
	return ctx, sr, pr
}

func TestPetRepo_ListFiltersAndSorts(t *testing.T) {
	ctx, _, pr := seeded(t)

	all, err := pr.List(ctx, pets.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Luna", "Michi", "Rocky"}, []string{all[0].Name, all[1].Name, all[2].Name})

	dogs, err := pr.List(ctx, pets.ListFilter{ShelterID: "sh-1", Species: pets.SpeciesDog})
	require.NoError(t, err)
	require.Len(t, dogs, 1)
	assert.Equal(t, "pet-1", dogs[0].ID)
}

func TestPetRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	pr := NewPetRepo()

	p, err := pr.Create(ctx, pets.Pet{Name: "Nala", ShelterID: "sh-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	_, err = pr.Create(ctx, p)
	assert.Error(t, err)

	p.Name = "Nala II"
	_, err = pr.Update(ctx, p)
	require.NoError(t, err)

	got, err := pr.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nala II", got.Name)

	require.NoError(t, pr.Delete(ctx, p.ID))
	_, err = pr.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, respond.ErrNotFound)
	assert.ErrorIs(t, pr.Delete(ctx, p.ID), respond.ErrNotFound)

	_, err = pr.Update(ctx, pets.Pet{ID: "missing"})
	assert.ErrorIs(t, err, respond.ErrNotFound)
}

func TestFavoriteRepo_ToggleAndList(t *testing.T) {
	ctx, sr, pr := seeded(t)
	repo := NewFavoriteRepo(sr, pr)

	on, err := repo.Toggle(ctx, "u-1", favorites.KindPets, "pet-2")
	require.NoError(t, err)
	assert.True(t, on)

	_, err = repo.Toggle(ctx, "u-1", favorites.KindShelters, "sh-2")
	require.NoError(t, err)

	favPets, err := repo.ListPets(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, favPets, 1)
	assert.Equal(t, "Michi", favPets[0].Name)

	favShelters, err := repo.ListShelters(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, favShelters, 1)

	// otro usuario no ve los favoritos de u-1
	other, err := repo.ListPets(ctx, "u-2")
	require.NoError(t, err)
	assert.Empty(t, other)

	off, err := repo.Toggle(ctx, "u-1", favorites.KindPets, "pet-2")
	require.NoError(t, err)
	assert.False(t, off)

	favPets, err = repo.ListPets(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, favPets)
}

func TestFavoriteRepo_UnknownEntityAndDeleted(t *testing.T) {
	ctx, sr, pr := seeded(t)
	repo := NewFavoriteRepo(sr, pr)

	_, err := repo.Toggle(ctx, "u-1", favorites.KindPets, "nope")
	assert.ErrorIs(t, err, respond.ErrNotFound)

	_, err = repo.Toggle(ctx, "u-1", favorites.Kind("birds"), "x")
	assert.Error(t, err)

	_, err = repo.Toggle(ctx, "u-1", favorites.KindShelters, "sh-1")
	require.NoError(t, err)
	require.NoError(t, sr.Delete(ctx, "sh-1"))

	favShelters, err := repo.ListShelters(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, favShelters)
}

func TestJournalRepo_NewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	j := NewJournalRepo()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, j.Record(ctx, favorites.JournalEntry{
			ID: id, UserID: "u-1", CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, j.Record(ctx, favorites.JournalEntry{ID: "z", UserID: "u-2"}))

	got, err := j.ListByUser(ctx, "u-1", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)

	none, err := j.ListByUser(ctx, "u-3", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUserRepo_RejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepo()

	a, err := r.Create(ctx, users.User{Name: "Ana", Email: "ana@example.org", Role: auth.RoleUser})
	require.NoError(t, err)

	_, err = r.Create(ctx, users.User{Name: "Otra", Email: "ANA@example.org"})
	assert.ErrorIs(t, err, respond.ErrInvalidInput)

	a.Name = "Ana María"
	_, err = r.Update(ctx, a)
	require.NoError(t, err)

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana María", list[0].Name)
}

func TestFormRepo_AssignsIDs(t *testing.T) {
	r := NewFormRepo()
	id, err := r.Submit(context.Background(), formsSubmission())
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Len(t, r.Submissions(), 1)
	assert.Equal(t, id, r.Submissions()[0].ID)
}

func formsSubmission() forms.Submission {
	return forms.Submission{Kind: forms.KindRescue, UserID: "u-1", Location: "Parque", Message: "perro herido"}
}
