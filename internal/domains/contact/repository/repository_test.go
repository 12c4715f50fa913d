package repository_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"salondash/infras/otel/mocks"
	"salondash/infras/ownerapi"
	"salondash/internal/domains/contact/repository"
	"salondash/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticAccessor struct{}

func (staticAccessor) Token(context.Context) (string, error) { return "owner-token", nil }

func (staticAccessor) OnUnauthorized(context.Context) {}

func TestContactRepository_ListAndUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/api/owner/contacts", r.URL.Path)
			assert.Equal(t, "new", r.URL.Query().Get("status"))
			assert.Equal(t, "ana", r.URL.Query().Get("search"))

			_, _ = io.WriteString(w, `{"ok":true,"contacts":[{"id":5,"name":"Ana","message":"Hi","status":"new","created_at":"2026-03-01T10:00:00Z","updated_at":null}],"pagination":{"page":1,"limit":10,"total":1,"pages":1}}`)
		case http.MethodPatch:
			assert.Equal(t, "/api/owner/contacts/5", r.URL.Path)

			raw, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"status":"responded"}`, string(raw))

			_, _ = io.WriteString(w, `{"ok":true,"contact":{"id":5,"status":"responded"}}`)
		}
	}))
	t.Cleanup(srv.Close)

	repo := repository.New(ownerapi.NewClient(srv.URL, srv.Client(), staticAccessor{}, nil, mocks.NewOtel()), mocks.NewOtel())

	page, err := repo.List(context.Background(), dto.QueryParams{Page: 1, Limit: 10}, dto.Filters{"status": "new", "search": "ana"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "5", page.Items[0].ID.String())
	assert.False(t, page.Items[0].CreatedAt.IsZero())
	assert.True(t, page.Items[0].UpdatedAt.IsZero())

	updated, err := repo.Update(context.Background(), "5", map[string]any{"status": "responded"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "responded", updated.Status)
}
