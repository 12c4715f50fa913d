package repository_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"salondash/infras/otel/mocks"
	"salondash/infras/ownerapi"
	"salondash/internal/domains/workinghours/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticAccessor struct{}

func (staticAccessor) Token(context.Context) (string, error) { return "owner-token", nil }

func (staticAccessor) OnUnauthorized(context.Context) {}

func TestWorkingHoursRepository(t *testing.T) {
	var calls []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)

		switch r.Method {
		case http.MethodGet:
			_, _ = io.WriteString(w, `{"ok":true,"working_hours":[{"day_of_week":3,"open_time":"09:00","close_time":"17:00"},{"day_of_week":1,"is_closed":true}]}`)
		case http.MethodPut:
			raw, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"working_hours":[{"day_of_week":1,"is_closed":true,"open_time":"","close_time":"","break_start":"","break_end":""}]}`, string(raw))

			_, _ = io.WriteString(w, `{"ok":true}`)
		case http.MethodPost:
			_, _ = io.WriteString(w, `{"ok":true,"working_hours":{"0":{"is_closed":true}}}`)
		}
	}))
	t.Cleanup(srv.Close)

	repo := repository.New(ownerapi.NewClient(srv.URL, srv.Client(), staticAccessor{}, nil, mocks.NewOtel()), mocks.NewOtel())

	week, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, week, 2)
	assert.Equal(t, 1, week[0].DayOfWeek)
	assert.Equal(t, 3, week[1].DayOfWeek)

	saved, err := repo.Put(context.Background(), map[string]any{"working_hours": week[:1]})
	require.NoError(t, err)
	assert.Nil(t, saved)

	reset, err := repo.Reset(context.Background())
	require.NoError(t, err)
	require.Len(t, reset, 1)
	assert.True(t, reset[0].IsClosed)

	assert.Equal(t, []string{
		"GET /api/owner/working-hours",
		"PUT /api/owner/working-hours",
		"POST /api/owner/working-hours/reset",
	}, calls)
}
