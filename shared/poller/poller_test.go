package poller_test

import (
	"salondash/shared/poller"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoller_StartStop(t *testing.T) {
	p := poller.New()
	assert.False(t, p.Running())

	var ticks atomic.Int32
	p.Start(time.Second, func() { ticks.Add(1) })
	assert.True(t, p.Running())

	assert.Eventually(t, func() bool { return ticks.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	p.Stop()
	assert.False(t, p.Running())

	stopped := ticks.Load()
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load())
}

func TestPoller_RestartReplacesSchedule(t *testing.T) {
	p := poller.New()
	defer p.Stop()

	var first, second atomic.Int32
	p.Start(time.Second, func() { first.Add(1) })
	p.Start(time.Second, func() { second.Add(1) })

	assert.Eventually(t, func() bool { return second.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
	assert.Zero(t, first.Load())
}

func TestPoller_StopIdle(t *testing.T) {
	p := poller.New()

	assert.NotPanics(t, p.Stop)
}
