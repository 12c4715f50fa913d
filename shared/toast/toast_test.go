package toast_test

import (
	"salondash/shared/toast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_DrainOrder(t *testing.T) {
	q := toast.NewQueue(5)
	q.Success("Booking created")
	q.Error("Could not archive booking")
	q.Info("Auto refresh paused")

	got := q.Drain()
	require.Len(t, got, 3)
	assert.Equal(t, toast.KindSuccess, got[0].Kind)
	assert.Equal(t, "Could not archive booking", got[1].Message)
	assert.Equal(t, toast.KindInfo, got[2].Kind)
	assert.False(t, got[0].CreatedAt.IsZero())

	assert.Empty(t, q.Drain())
	assert.Zero(t, q.Len())
}

func TestQueue_DropsOldestWhenFull(t *testing.T) {
	q := toast.NewQueue(2)
	q.Info("one")
	q.Info("two")
	q.Info("three")

	got := q.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, "two", got[0].Message)
	assert.Equal(t, "three", got[1].Message)
}

func TestQueue_DrainEmptyIsNotNil(t *testing.T) {
	assert.NotNil(t, toast.NewQueue(0).Drain())
}
