package poller

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Poller runs one job on a fixed interval until stopped.
type Poller interface {
	Start(interval time.Duration, job func())
	Stop()
	Running() bool
}

// Factory creates a Poller. Stores take a Factory so tests can drive ticks by hand.
type Factory func() Poller

type cronPoller struct {
	mu   sync.Mutex
	cron *cron.Cron
}

// New returns a Poller backed by a robfig/cron "@every" schedule. A tick that is still
// running when the next one fires is skipped.
func New() Poller {
	return &cronPoller{}
}

type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	log.Trace().Fields(keysAndValues).Msg(msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}

// Start replaces any running schedule. Intervals under one second are rounded up by cron.
func (p *cronPoller) Start(interval time.Duration, job func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cron != nil {
		p.cron.Stop()
	}

	logger := cronLogger{}
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	c.Schedule(cron.Every(interval), cron.FuncJob(job))
	c.Start()

	p.cron = c

	log.Debug().Dur("interval", interval).Msg("poller started")
}

// Stop halts the schedule. A tick already running is allowed to finish.
func (p *cronPoller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cron == nil {
		return
	}

	p.cron.Stop()
	p.cron = nil

	log.Debug().Msg("poller stopped")
}

func (p *cronPoller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.cron != nil
}
