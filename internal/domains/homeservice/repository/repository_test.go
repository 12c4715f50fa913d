package repository_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"salondash/infras/otel/mocks"
	"salondash/infras/ownerapi"
	"salondash/internal/domains/homeservice/repository"
	"salondash/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticAccessor struct{}

func (staticAccessor) Token(context.Context) (string, error) { return "owner-token", nil }

func (staticAccessor) OnUnauthorized(context.Context) {}

func newRepo(t *testing.T, body string) repository.HomeService {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/owner/home-service-bookings", r.URL.Path)

		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	client := ownerapi.NewClient(srv.URL, srv.Client(), staticAccessor{}, nil, mocks.NewOtel())

	return repository.New(client, mocks.NewOtel())
}

func TestHomeServiceRepository_ListPayloadKeys(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"specific key", `{"ok":true,"home_service_bookings":[{"id":1},{"id":2}]}`},
		{"bookings fallback", `{"ok":true,"bookings":[{"id":1},{"id":2}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := newRepo(t, tt.body).List(context.Background(), dto.QueryParams{Page: 1, Limit: 10}, nil)

			require.NoError(t, err)
			assert.Len(t, page.Items, 2)
		})
	}
}
