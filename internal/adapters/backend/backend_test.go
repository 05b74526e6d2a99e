package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pet-shelter-hub/internal/domain/favorites"
	"pet-shelter-hub/internal/domain/forms"
	"pet-shelter-hub/internal/domain/pets"
	"pet-shelter-hub/internal/domain/shelters"
	"pet-shelter-hub/internal/domain/users"
	"pet-shelter-hub/internal/platform/httpclient"
	"pet-shelter-hub/internal/platform/respond"
	"pet-shelter-hub/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend arma un backend con chi y devuelve un Client apuntando a él.
func fakeBackend(t *testing.T, routes func(r chi.Router)) *Client {
	t.Helper()
	r := chi.NewRouter()
	routes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "k-1", Timeout: time.Second})
	require.NoError(t, err)
	return c
}

func withUser(token string) context.Context {
	return auth.WithClaims(context.Background(), auth.Claims{UserID: "u-1", Token: token})
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)

	_, err = NewClient(Config{BaseURL: "ftp://x"})
	assert.Error(t, err)
}

func TestShelterRepo_ForwardsTokenAndAPIKey(t *testing.T) {
	c := fakeBackend(t, func(r chi.Router) {
		r.Get("/shelters", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			assert.Equal(t, "k-1", r.Header.Get("X-Api-Key"))
			_, _ = w.Write([]byte(`[{"id":"sh-1","name":"Huellitas","city":"Quito"},{"id":"sh-2","name":"Patitas"}]`))
		})
	})

	list, err := NewShelterRepo(c).List(withUser("tok-1"))
	require.NoError(t, err)
	assert.Equal(t, []shelters.Shelter{
		{ID: "sh-1", Name: "Huellitas", City: "Quito"},
		{ID: "sh-2", Name: "Patitas"},
	}, list)
}

func TestShelterRepo_AnonymousHasNoAuthorization(t *testing.T) {
	c := fakeBackend(t, func(r chi.Router) {
		r.Get("/shelters/{id}", func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"id":"` + chi.URLParam(r, "id") + `","name":"Huellitas"}`))
		})
	})

	s, err := NewShelterRepo(c).GetByID(context.Background(), "sh-1")
	require.NoError(t, err)
	assert.Equal(t, "sh-1", s.ID)
}

func TestPetRepo_ListSendsFilter(t *testing.T) {
	c := fakeBackend(t, func(r chi.Router) {
		r.Get("/pets", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "sh-1", r.URL.Query().Get("shelter_id"))
			assert.Equal(t, "cat", r.URL.Query().Get("species"))
			assert.Empty(t, r.URL.Query().Get("status"))
			_, _ = w.Write([]byte(`[{"id":"pet-2","shelter_id":"sh-1","name":"Michi","species":"cat","age_months":7,"status":"available"}]`))
		})
	})

	list, err := NewPetRepo(c).List(withUser("t"), pets.ListFilter{ShelterID: "sh-1", Species: pets.SpeciesCat})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, pets.SpeciesCat, list[0].Species)
	assert.Equal(t, 7, list[0].AgeMonths)
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, respond.ErrNotFound},
		{http.StatusUnprocessableEntity, respond.ErrInvalidInput},
		{http.StatusBadRequest, respond.ErrInvalidInput},
		{http.StatusUnauthorized, auth.ErrUnauthorized},
		{http.StatusForbidden, auth.ErrForbidden},
	}
	for _, tc := range cases {
		c := fakeBackend(t, func(r chi.Router) {
			r.Get("/pets/{id}", func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tc.status)
			})
		})
		_, err := NewPetRepo(c).GetByID(withUser("t"), "x")
		assert.ErrorIs(t, err, tc.want, "status %d", tc.status)
	}

	c := fakeBackend(t, func(r chi.Router) {
		r.Get("/pets/{id}", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusServiceUnavailable)
		})
	})
	_, err := NewPetRepo(c).GetByID(withUser("t"), "x")
	assert.Equal(t, http.StatusServiceUnavailable, httpclient.StatusCode(err))
	assert.Equal(t, http.StatusBadGateway, respond.Status(err))
}

func TestFavoriteRepo_ListAndToggle(t *testing.T) {
	c := fakeBackend(t, func(r chi.Router) {
		r.Get("/users/{uid}/favorites/pets", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "u-1", chi.URLParam(r, "uid"))
			_, _ = w.Write([]byte(`[{"id":"pet-1","name":"Luna","species":"dog"}]`))
		})
		r.Get("/users/{uid}/favorites/shelters", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})
		r.Post("/users/{uid}/favorites/{kind}/{id}/toggle", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "pets", chi.URLParam(r, "kind"))
			assert.Equal(t, "pet-1", chi.URLParam(r, "id"))
			_, _ = w.Write([]byte(`{"is_fav":false}`))
		})
	})
	repo := NewFavoriteRepo(c)
	ctx := withUser("t")

	favPets, err := repo.ListPets(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, favPets, 1)
	assert.Equal(t, "pet-1", favPets[0].ID)

	favShelters, err := repo.ListShelters(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, favShelters)

	isFav, err := repo.Toggle(ctx, "u-1", favorites.KindPets, "pet-1")
	require.NoError(t, err)
	assert.False(t, isFav)
}

func TestFavoriteRepo_ToggleFailure(t *testing.T) {
	c := fakeBackend(t, func(r chi.Router) {
		r.Post("/users/{uid}/favorites/{kind}/{id}/toggle", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
	})

	_, err := NewFavoriteRepo(c).Toggle(withUser("t"), "u-1", favorites.KindShelters, "sh-1")
	require.Error(t, err)
	var he *httpclient.HTTPError
	assert.True(t, errors.As(err, &he))
}

func TestFormRepo_SubmitDonation(t *testing.T) {
	c := fakeBackend(t, func(r chi.Router) {
		r.Post("/forms/{kind}", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "donation", chi.URLParam(r, "kind"))
			b, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(b), `"amount":"25.5"`)
			assert.Contains(t, string(b), `"currency":"USD"`)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":" f-9 "}`))
		})
	})

	id, err := NewFormRepo(c).Submit(withUser("t"), forms.Submission{
		Kind:     forms.KindDonation,
		UserID:   "u-1",
		Contact:  forms.Contact{Name: "Ana"},
		Amount:   decimal.RequireFromString("25.50"),
		Currency: "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, "f-9", id)
}

func TestUserRepo_CRUD(t *testing.T) {
	c := fakeBackend(t, func(r chi.Router) {
		r.Get("/users", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"id":"u-1","name":"Ana","email":"ana@example.org","role":"ADMIN"}]`))
		})
		r.Post("/users", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":"u-2","name":"Beto","email":"beto@example.org","role":"user"}`))
		})
		r.Delete("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})
	repo := NewUserRepo(c)
	ctx := withUser("t")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, auth.RoleAdmin, list[0].Role)

	u, err := repo.Create(ctx, users.User{Name: "Beto", Email: "beto@example.org"})
	require.NoError(t, err)
	assert.Equal(t, "u-2", u.ID)

	assert.NoError(t, repo.Delete(ctx, "u-2"))
}
