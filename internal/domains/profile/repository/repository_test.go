package repository_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"salondash/infras/otel/mocks"
	"salondash/infras/ownerapi"
	"salondash/internal/domains/profile/repository"
	"salondash/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticAccessor struct{}

func (staticAccessor) Token(context.Context) (string, error) { return "owner-token", nil }

func (staticAccessor) OnUnauthorized(context.Context) {}

func newRepo(t *testing.T, handler http.HandlerFunc) repository.Profile {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return repository.New(ownerapi.NewClient(srv.URL, srv.Client(), staticAccessor{}, nil, mocks.NewOtel()), mocks.NewOtel())
}

func TestProfileRepository_Get(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/owner/profile", r.URL.Path)

		_, _ = io.WriteString(w, `{"ok":true,"profile":{"id":1,"name":"Lena","email":"lena@salon.test","salon_name":"Lena's"}}`)
	})

	profile, err := repo.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Lena", profile.Name)
	assert.Equal(t, "Lena's", profile.SalonName)
}

func TestProfileRepository_GetMissing(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"ok":true}`)
	})

	_, err := repo.Get(context.Background())

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestProfileRepository_UpdateAndPassword(t *testing.T) {
	var calls []string

	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		calls = append(calls, r.URL.Path)

		if r.URL.Path == "/api/owner/profile" {
			_, _ = io.WriteString(w, `{"ok":true,"profile":{"id":1,"name":"Lena K"}}`)
			return
		}

		_, _ = io.WriteString(w, `{"ok":true}`)
	})

	updated, err := repo.Update(context.Background(), map[string]any{"name": "Lena K"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Lena K", updated.Name)

	require.NoError(t, repo.ChangePassword(context.Background(), map[string]any{"new_password": "longenough"}))

	assert.Equal(t, []string{"/api/owner/profile", "/api/owner/profile/password"}, calls)
}
