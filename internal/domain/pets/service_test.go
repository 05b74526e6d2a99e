package pets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Pet
	seq  int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) List(ctx context.Context, f ListFilter) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) Create(ctx context.Context, p Pet) (Pet, error) {
	r.seq++
	p.ID = "pet-" + string(rune('0'+r.seq))
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) (Pet, error) {
	if _, ok := r.byID[p.ID]; !ok {
		return Pet{}, ErrNotFound
	}
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestService_Create_NormalizesAndDefaults(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Create(context.Background(), Input{
		ShelterID: " sh-1 ",
		Name:      " Luna ",
		Species:   "DOG",
		AgeMonths: 12,
	})
	require.NoError(t, err)

	assert.Equal(t, "pet-1", p.ID)
	assert.Equal(t, "sh-1", p.ShelterID)
	assert.Equal(t, "Luna", p.Name)
	assert.Equal(t, SpeciesDog, p.Species)
	assert.Equal(t, SexUnknown, p.Sex)
	assert.Equal(t, StatusAvailable, p.Status)
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newTestRepo())
	valid := Input{ShelterID: "sh-1", Name: "Luna", Species: "cat"}

	cases := map[string]func(in *Input){
		"missing shelter": func(in *Input) { in.ShelterID = " " },
		"missing name":    func(in *Input) { in.Name = "" },
		"bad species":     func(in *Input) { in.Species = "dragon" },
		"bad sex":         func(in *Input) { in.Sex = "x" },
		"bad status":      func(in *Input) { in.Status = "sold" },
		"negative age":    func(in *Input) { in.AgeMonths = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := valid
			mutate(&in)
			_, err := svc.Create(context.Background(), in)
			assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
		})
	}
}

func TestService_UpdateAndDelete(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.Create(ctx, Input{ShelterID: "sh-1", Name: "Luna", Species: "dog"})
	require.NoError(t, err)

	up, err := svc.Update(ctx, p.ID, Input{ShelterID: "sh-1", Name: "Luna", Species: "dog", Status: "adopted"})
	require.NoError(t, err)
	assert.Equal(t, StatusAdopted, up.Status)

	_, err = svc.Update(ctx, "missing", Input{ShelterID: "sh-1", Name: "X", Species: "dog"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, " ", Input{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, svc.Delete(ctx, p.ID))
	_, err = svc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNormalizeFilter(t *testing.T) {
	f, err := NormalizeFilter(" sh-1 ", "Cat", "")
	require.NoError(t, err)
	assert.Equal(t, ListFilter{ShelterID: "sh-1", Species: SpeciesCat}, f)
	assert.Equal(t, "sh-1|cat|", f.Key())

	_, err = NormalizeFilter("", "dragon", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NormalizeFilter("", "", "sold")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListFilter_Match(t *testing.T) {
	p := Pet{ShelterID: "sh-1", Species: SpeciesDog, Status: StatusPending}

	assert.True(t, ListFilter{}.Match(p))
	assert.True(t, ListFilter{ShelterID: "sh-1", Status: StatusPending}.Match(p))
	assert.False(t, ListFilter{Species: SpeciesCat}.Match(p))
	assert.False(t, ListFilter{ShelterID: "sh-2"}.Match(p))
}
