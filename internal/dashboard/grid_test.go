package dashboard_test

import (
	"salondash/internal/dashboard"
	"salondash/shared/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionsFor(t *testing.T) {
	tests := []struct {
		status   string
		archived bool
		expected dashboard.Actions
	}{
		{"pending", false, dashboard.Actions{Edit: true, Delete: true}},
		{"confirmed", false, dashboard.Actions{Edit: true, Delete: true}},
		{"completed", false, dashboard.Actions{Edit: true, Delete: true, Archive: true}},
		{"completed", true, dashboard.Actions{Delete: true, Unarchive: true}},
		{"cancelled", false, dashboard.Actions{Edit: true, Delete: true}},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.expected, dashboard.ActionsFor(tt.status, tt.archived))
		})
	}
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "green", dashboard.StatusColor("completed"))
	assert.Equal(t, "gray", dashboard.StatusColor("no_show"))
	assert.Equal(t, "slate", dashboard.StatusColor("weird"))
}

func TestNewGrid(t *testing.T) {
	skeleton := dashboard.NewGrid[string](true, nil, 0, "No bookings")
	assert.True(t, skeleton.Skeleton)
	assert.Equal(t, dashboard.DefaultSkeletonRows, skeleton.SkeletonRows)
	assert.False(t, skeleton.Empty)
	assert.NotNil(t, skeleton.Rows)

	empty := dashboard.NewGrid[string](false, nil, 4, "No bookings")
	assert.True(t, empty.Empty)
	assert.Equal(t, "No bookings", empty.EmptyMessage)
	assert.False(t, empty.Skeleton)

	refreshing := dashboard.NewGrid(true, []string{"a"}, 4, "No bookings")
	assert.False(t, refreshing.Skeleton)
	assert.False(t, refreshing.Empty)
	assert.Len(t, refreshing.Rows, 1)
}

func TestStatsFromPayload(t *testing.T) {
	nested, err := dashboard.StatsFromPayload(repository.Payload{
		"ok":    []byte(`true`),
		"stats": []byte(`{"total":12,"pending":3}`),
	})
	require.NoError(t, err)
	assert.Equal(t, float64(12), nested["total"])

	flat, err := dashboard.StatsFromPayload(repository.Payload{
		"ok":    []byte(`true`),
		"total": []byte(`5`),
	})
	require.NoError(t, err)
	assert.Equal(t, dashboard.Stats{"total": float64(5)}, flat)
}

func TestNewView(t *testing.T) {
	state := dashboard.State[row]{
		Items:        []row{{ID: "1", Status: "completed"}},
		Loading:      true,
		PageToday:    1,
		PageUpcoming: 0,
	}

	view := dashboard.NewView(state, func(r row) string { return r.ID }, 6, "empty")

	assert.Equal(t, []string{"1"}, view.Grid.Rows)
	assert.False(t, view.Grid.Skeleton)
	assert.True(t, view.Loading)
	assert.Equal(t, 1, view.PageToday)
}
