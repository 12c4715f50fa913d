package repository_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"salondash/infras/otel/mocks"
	"salondash/infras/ownerapi"
	"salondash/internal/domains/availability/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticAccessor struct{}

func (staticAccessor) Token(context.Context) (string, error) { return "owner-token", nil }

func (staticAccessor) OnUnauthorized(context.Context) {}

func TestAvailabilityRepository_Slots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/owner/availability/slots", r.URL.Path)
		assert.Equal(t, "8", r.URL.Query().Get("home_service_id"))

		_, _ = io.WriteString(w, `{"ok":true,"slots":["09:00",{"time":"09:30","available":false}]}`)
	}))
	t.Cleanup(srv.Close)

	repo := repository.New(ownerapi.NewClient(srv.URL, srv.Client(), staticAccessor{}, nil, mocks.NewOtel()), mocks.NewOtel())

	slots, err := repo.Slots(context.Background(), url.Values{"date": {"2026-03-10"}, "home_service_id": {"8"}})

	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.True(t, slots[0].Available)
	assert.False(t, slots[1].Available)
}

func TestAvailabilityRepository_NoSlots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	t.Cleanup(srv.Close)

	repo := repository.New(ownerapi.NewClient(srv.URL, srv.Client(), staticAccessor{}, nil, mocks.NewOtel()), mocks.NewOtel())

	slots, err := repo.Slots(context.Background(), url.Values{})

	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}
