// Package workspace keeps the per-session state of the dashboard: the toast queue and the
// booking stores. Everything else is stateless and shared by all sessions.
package workspace

import (
	"context"
	"salondash/config"
	"salondash/internal/dashboard"
	bookingModel "salondash/internal/domains/booking/model"
	bookingService "salondash/internal/domains/booking/service"
	homeModel "salondash/internal/domains/homeservice/model"
	homeService "salondash/internal/domains/homeservice/service"
	"salondash/shared/constant"
	"salondash/shared/failure"
	"salondash/shared/poller"
	"salondash/shared/timezone"
	"salondash/shared/toast"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultIdle          = 30 * time.Minute
	minSweepInterval     = time.Minute
	defaultToastCapacity = 20
)

// Workspace is the state of one signed-in session.
type Workspace struct {
	SessionID string
	Toasts    *toast.Queue

	// ctx carries the session id and is the parent of every store fetch.
	ctx    context.Context
	cancel context.CancelFunc

	mu           sync.Mutex
	bookings     *dashboard.Store[bookingModel.Booking]
	homeServices *dashboard.Store[homeModel.Booking]
	lastSeen     time.Time
	closed       bool

	newBookings     func(context.Context, *toast.Queue) *dashboard.Store[bookingModel.Booking]
	newHomeServices func(context.Context, *toast.Queue) *dashboard.Store[homeModel.Booking]
}

// Bookings returns the in-salon booking store, creating and starting it on first use.
func (w *Workspace) Bookings(ctx context.Context) *dashboard.Store[bookingModel.Booking] {
	return lazyStore(ctx, w, &w.bookings, w.newBookings)
}

// HomeServices returns the home-service booking store, creating and starting it on first use.
func (w *Workspace) HomeServices(ctx context.Context) *dashboard.Store[homeModel.Booking] {
	return lazyStore(ctx, w, &w.homeServices, w.newHomeServices)
}

// Context is the session-scoped context background work should run under.
func (w *Workspace) Context() context.Context {
	return w.ctx
}

func lazyStore[T dashboard.Row[T]](ctx context.Context, w *Workspace, slot **dashboard.Store[T], create func(context.Context, *toast.Queue) *dashboard.Store[T]) *dashboard.Store[T] {
	w.mu.Lock()
	if *slot != nil {
		store := *slot
		w.mu.Unlock()

		return store
	}

	store := create(w.ctx, w.Toasts)
	*slot = store
	closed := w.closed
	w.mu.Unlock()

	if closed {
		store.Close()

		return store
	}

	// A failed first load is kept in the store's error state.
	if err := store.Start(ctx); err != nil {
		log.Warn().Err(err).Str("session_id", w.SessionID).Msg("dashboard store started with an error")
	}

	return store
}

func (w *Workspace) touch(now time.Time) {
	w.mu.Lock()
	w.lastSeen = now
	w.mu.Unlock()
}

func (w *Workspace) idleSince(now time.Time) time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	return now.Sub(w.lastSeen)
}

func (w *Workspace) close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()

		return
	}

	w.closed = true
	bookings, homeServices := w.bookings, w.homeServices
	w.mu.Unlock()

	if bookings != nil {
		bookings.Close()
	}

	if homeServices != nil {
		homeServices.Close()
	}

	w.cancel()
}

// Registry maps session ids to their workspaces.
type Registry struct {
	mu         sync.Mutex
	workspaces map[string]*Workspace
	expired    map[string]time.Time

	bookings      bookingService.Booking
	homeServices  homeService.HomeService
	toastCapacity int
	idle          time.Duration
	sweeper       poller.Poller
	now           func() time.Time
}

func NewRegistry(cfg *config.Config, bookings bookingService.Booking, homeServices homeService.HomeService, pollers poller.Factory) *Registry {
	capacity := cfg.Dashboard.ToastCapacity
	if capacity <= 0 {
		capacity = defaultToastCapacity
	}

	idle := time.Duration(cfg.Dashboard.WorkspaceIdleMinutes) * time.Minute
	if idle <= 0 {
		idle = DefaultIdle
	}

	if pollers == nil {
		pollers = poller.New
	}

	return &Registry{
		workspaces:    map[string]*Workspace{},
		expired:       map[string]time.Time{},
		bookings:      bookings,
		homeServices:  homeServices,
		toastCapacity: capacity,
		idle:          idle,
		sweeper:       pollers(),
		now:           timezone.Now,
	}
}

// Get returns the workspace of a session, creating it on first use. An expired session gets a
// closed workspace that is not registered, so requests still in flight cannot revive it.
func (r *Registry) Get(sessionID string) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	if ws, ok := r.workspaces[sessionID]; ok {
		ws.touch(now)

		return ws
	}

	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), constant.ContextKeySessionID, sessionID))

	ws := &Workspace{
		SessionID:       sessionID,
		Toasts:          toast.NewQueue(r.toastCapacity),
		ctx:             ctx,
		cancel:          cancel,
		lastSeen:        now,
		newBookings:     r.newBookings,
		newHomeServices: r.newHomeServices,
	}

	if _, expired := r.expired[sessionID]; expired {
		ws.closed = true
		cancel()

		return ws
	}

	r.workspaces[sessionID] = ws

	log.Debug().Str("session_id", sessionID).Msg("workspace opened")

	return ws
}

func (r *Registry) newBookings(ctx context.Context, toasts *toast.Queue) *dashboard.Store[bookingModel.Booking] {
	return r.bookings.NewDashboard(ctx, toasts)
}

func (r *Registry) newHomeServices(ctx context.Context, toasts *toast.Queue) *dashboard.Store[homeModel.Booking] {
	return r.homeServices.NewDashboard(ctx, toasts)
}

// Notify queues the outcome of a mutation on the session's toasts: message on success, the
// error text otherwise. Expired sessions get no toast.
func (r *Registry) Notify(ctx context.Context, err error, message string) {
	sessionID := SessionID(ctx)
	if sessionID == "" || failure.IsUnauthorized(err) {
		return
	}

	toasts := r.Get(sessionID).Toasts

	if err != nil {
		toasts.Error(failure.GetMessage(err))

		return
	}

	toasts.Success(message)
}

// Lookup returns the workspace of a session without creating one.
func (r *Registry) Lookup(sessionID string) (*Workspace, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, ok := r.workspaces[sessionID]

	return ws, ok
}

// Close stops the stores of a session and forgets it. Closing an unknown session is a no-op.
func (r *Registry) Close(sessionID string) {
	r.mu.Lock()
	ws, ok := r.workspaces[sessionID]
	delete(r.workspaces, sessionID)
	r.mu.Unlock()

	if !ok {
		return
	}

	ws.close()

	log.Debug().Str("session_id", sessionID).Msg("workspace closed")
}

// Expire closes a session's workspace and reports whether this call was the first to do so.
// The session stays expired until the sweeper forgets it.
func (r *Registry) Expire(sessionID string) bool {
	r.mu.Lock()
	if _, done := r.expired[sessionID]; done {
		r.mu.Unlock()

		return false
	}

	r.expired[sessionID] = r.now()
	r.mu.Unlock()

	r.Close(sessionID)

	return true
}

// Sweep closes workspaces idle for longer than the configured period.
func (r *Registry) Sweep() int {
	now := r.now()

	r.mu.Lock()

	var stale []string

	for id, ws := range r.workspaces {
		if ws.idleSince(now) > r.idle {
			stale = append(stale, id)
		}
	}

	for id, at := range r.expired {
		if now.Sub(at) > r.idle {
			delete(r.expired, id)
		}
	}

	r.mu.Unlock()

	for _, id := range stale {
		r.Close(id)
	}

	if len(stale) > 0 {
		log.Info().Int("count", len(stale)).Msg("closed idle workspaces")
	}

	return len(stale)
}

// StartSweeper runs Sweep in the background at half the idle period.
func (r *Registry) StartSweeper() {
	interval := max(r.idle/2, minSweepInterval)

	r.sweeper.Start(interval, func() { r.Sweep() })
}

// Shutdown stops the sweeper and closes every workspace.
func (r *Registry) Shutdown() {
	r.sweeper.Stop()

	r.mu.Lock()
	ids := make([]string, 0, len(r.workspaces))

	for id := range r.workspaces {
		ids = append(ids, id)
	}

	r.mu.Unlock()

	for _, id := range ids {
		r.Close(id)
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.workspaces)
}
