// Package dashboard holds the stateful list stores behind the booking pages: one collection
// with its stats, filters and pagination, kept fresh by a debounced filter fetch and a silent
// poller.
package dashboard

import (
	"context"
	"fmt"
	"salondash/shared/constant"
	"salondash/shared/debounce"
	"salondash/shared/dto"
	"salondash/shared/failure"
	"salondash/shared/poller"
	"salondash/shared/repository"
	"salondash/shared/timezone"
	"salondash/shared/toast"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	FilterIncludeArchived = "include_archived"

	DefaultRefreshInterval = 15 * time.Second
	DefaultDebounce        = 500 * time.Millisecond
	UpcomingWindowDays     = 7
)

// Stats is the aggregate object the backend reports for a collection.
type Stats map[string]any

// Row is what a store needs to know about one item of its collection.
type Row[T any] interface {
	Key() string
	IsArchived() bool
	Day() string
	State() string
	WithArchived(archived bool) T
}

// Source is the REST collection a store reads from and writes to.
type Source[T any] interface {
	List(ctx context.Context, params dto.QueryParams, filters dto.Filters) (repository.Page[T], error)
	Create(ctx context.Context, body any) (*T, error)
	Update(ctx context.Context, id string, body any) (*T, error)
	Delete(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) (*T, error)
	Unarchive(ctx context.Context, id string) (*T, error)
	Stats(ctx context.Context) (Stats, error)
}

// PrepareUpdate may rewrite an update patch using the cached row, if the store has one.
type PrepareUpdate[T any] func(current T, cached bool, patch map[string]any) map[string]any

// Options configures a store. Context is the parent of the store's background fetches and
// carries the session they run for.
type Options[T any] struct {
	Context         context.Context
	Name            string
	Label           string
	Limit           int
	AutoRefresh     bool
	RefreshInterval time.Duration
	Debounce        time.Duration
	Poller          poller.Poller
	Toasts          *toast.Queue
	PrepareUpdate   PrepareUpdate[T]
	Now             func() time.Time
}

// State is a consistent copy of a store.
type State[T any] struct {
	Items           []T            `json:"items"`
	Stats           Stats          `json:"stats"`
	Loading         bool           `json:"loading"`
	Saving          bool           `json:"saving"`
	Error           string         `json:"error,omitempty"`
	Filters         dto.Filters    `json:"filters"`
	Pagination      dto.Pagination `json:"pagination"`
	AutoRefresh     bool           `json:"auto_refresh"`
	RefreshInterval int            `json:"refresh_interval_seconds"`
	PageToday       int            `json:"page_today"`
	PageUpcoming    int            `json:"page_upcoming"`
}

type Store[T Row[T]] struct {
	mu        sync.Mutex
	name      string
	label     string
	source    Source[T]
	toasts    *toast.Queue
	poller    poller.Poller
	debouncer *debounce.Debouncer
	prepare   PrepareUpdate[T]
	now       func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	items       []T
	stats       Stats
	loading     bool
	saving      bool
	errMsg      string
	filters     dto.Filters
	pagination  dto.Pagination
	autoRefresh bool
	interval    time.Duration

	// seq numbers every fetch; applied is the newest one whose result is in items.
	// loadingSeq numbers non-silent fetches only and owns the loading flag.
	seq        uint64
	loadingSeq uint64
	applied    uint64
	mutations  uint64
	closed     bool
}

func NewStore[T Row[T]](source Source[T], opts Options[T]) *Store[T] {
	if opts.Limit <= 0 {
		opts.Limit = constant.DefaultValueLimit
	}

	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = DefaultRefreshInterval
	}

	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	if opts.Poller == nil {
		opts.Poller = poller.New()
	}

	if opts.Toasts == nil {
		opts.Toasts = toast.NewQueue(0)
	}

	if opts.Label == "" {
		opts.Label = "Item"
	}

	if opts.Now == nil {
		opts.Now = timezone.Now
	}

	if opts.Context == nil {
		opts.Context = context.Background()
	}

	ctx, cancel := context.WithCancel(opts.Context)

	s := &Store[T]{
		name:        opts.Name,
		label:       opts.Label,
		source:      source,
		toasts:      opts.Toasts,
		poller:      opts.Poller,
		prepare:     opts.PrepareUpdate,
		now:         opts.Now,
		ctx:         ctx,
		cancel:      cancel,
		items:       []T{},
		stats:       Stats{},
		filters:     dto.Filters{},
		pagination:  dto.Pagination{Page: constant.DefaultValuePage, Limit: opts.Limit},
		autoRefresh: opts.AutoRefresh,
		interval:    opts.RefreshInterval,
	}
	s.debouncer = debounce.New(opts.Debounce, s.refetchFirstPage)

	return s
}

// Start loads the first page and the stats, then starts the poller when auto refresh is on.
func (s *Store[T]) Start(ctx context.Context) error {
	err := s.Fetch(ctx, constant.DefaultValuePage, nil, false)
	s.refreshStats(ctx)

	s.mu.Lock()
	enabled, interval := s.autoRefresh, s.interval
	s.mu.Unlock()

	if enabled {
		s.poller.Start(interval, s.poll)
	}

	return err
}

// Close stops the poller and any pending filter fetch. In-flight fetches are cancelled.
func (s *Store[T]) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.poller.Stop()
	s.debouncer.Stop()
}

// Fetch loads one page. A nil filters keeps the current ones. Silent fetches leave the loading
// flag alone and never push toasts.
func (s *Store[T]) Fetch(ctx context.Context, page int, filters dto.Filters, silent bool) error {
	s.mu.Lock()
	if filters != nil {
		s.filters = filters.Clone()
	}

	if page < 1 {
		page = constant.DefaultValuePage
	}

	s.seq++
	seq, mutations := s.seq, s.mutations
	params := dto.QueryParams{Page: page, Limit: s.pagination.Limit}
	query := s.filters.Clone()

	var loadingSeq uint64
	if !silent {
		s.loadingSeq++
		loadingSeq = s.loadingSeq
		s.loading = true
	}
	s.mu.Unlock()

	res, err := s.source.List(ctx, params, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !silent && loadingSeq == s.loadingSeq {
		s.loading = false
	}

	if seq < s.applied || (silent && mutations != s.mutations) {
		log.Debug().Str("store", s.name).Uint64("seq", seq).Uint64("applied", s.applied).Msg("dropping stale fetch")

		return nil
	}

	if err != nil {
		s.errMsg = failure.GetMessage(err)
		if !silent && !failure.IsUnauthorized(err) {
			s.toasts.Error(s.errMsg)
		}

		log.Warn().Err(err).Str("store", s.name).Bool("silent", silent).Msg("failed to fetch collection")

		return fmt.Errorf("fetch %s: %w", s.name, err)
	}

	s.items = res.Items
	s.pagination = res.Pagination
	if s.pagination.Limit == 0 {
		s.pagination.Limit = params.Limit
	}

	s.applied = seq
	s.errMsg = ""

	return nil
}

// UpdateFilters merges patch into the filters and schedules one fetch of the first page once
// the filters have been quiet for the debounce delay.
func (s *Store[T]) UpdateFilters(patch dto.Filters) dto.Filters {
	s.mu.Lock()
	s.filters = s.filters.Merge(patch)
	s.pagination.Page = constant.DefaultValuePage
	merged := s.filters.Clone()
	s.mu.Unlock()

	s.debouncer.Trigger()

	return merged
}

func (s *Store[T]) refetchFirstPage() {
	if s.isClosed() {
		return
	}

	if err := s.Fetch(s.ctx, constant.DefaultValuePage, nil, false); err != nil {
		log.Debug().Err(err).Str("store", s.name).Msg("filter fetch failed")
	}
}

func (s *Store[T]) poll() {
	if s.isClosed() {
		return
	}

	s.mu.Lock()
	page := s.pagination.Page
	s.mu.Unlock()

	if err := s.Fetch(s.ctx, page, nil, true); err != nil {
		log.Debug().Err(err).Str("store", s.name).Msg("silent poll failed")
	}
}

// SetAutoRefresh starts, restarts or stops the silent poller. A non-positive interval keeps the
// current one.
func (s *Store[T]) SetAutoRefresh(enabled bool, interval time.Duration) {
	s.mu.Lock()
	s.autoRefresh = enabled
	if interval > 0 {
		s.interval = interval
	}
	interval = s.interval
	closed := s.closed
	s.mu.Unlock()

	if !enabled || closed {
		s.poller.Stop()

		return
	}

	s.poller.Start(interval, s.poll)
}

func (s *Store[T]) Create(ctx context.Context, body map[string]any) (*T, error) {
	created, err := s.mutate(ctx, "create", func() (*T, error) {
		return s.source.Create(ctx, body)
	}, func(row T) {
		s.items = append([]T{row}, s.items...)
	})
	if err != nil {
		return nil, err
	}

	s.toasts.Success(s.label + " created")

	return created, nil
}

func (s *Store[T]) Update(ctx context.Context, id string, patch map[string]any) (*T, error) {
	if s.prepare != nil {
		current, cached := s.cached(id)
		patch = s.prepare(current, cached, patch)
	}

	updated, err := s.mutate(ctx, "update", func() (*T, error) {
		return s.source.Update(ctx, id, patch)
	}, func(row T) {
		s.replace(id, row)
	})
	if err != nil {
		return nil, err
	}

	s.toasts.Success(s.label + " updated")

	return updated, nil
}

func (s *Store[T]) Delete(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, "delete", func() (*T, error) {
		return nil, s.source.Delete(ctx, id)
	}, nil)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.remove(id)
	s.mu.Unlock()

	s.toasts.Success(s.label + " deleted")

	return nil
}

// Archive hides the row unless archived rows are being shown, in which case it stays flagged.
func (s *Store[T]) Archive(ctx context.Context, id string) (*T, error) {
	archived, err := s.mutate(ctx, "archive", func() (*T, error) {
		return s.source.Archive(ctx, id)
	}, nil)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.filters.Bool(FilterIncludeArchived) {
		if row, ok := s.resolve(id, archived, true); ok {
			s.replace(id, row)
		}
	} else {
		s.remove(id)
	}
	s.mu.Unlock()

	s.toasts.Success(s.label + " archived")

	return archived, nil
}

func (s *Store[T]) Unarchive(ctx context.Context, id string) (*T, error) {
	restored, err := s.mutate(ctx, "unarchive", func() (*T, error) {
		return s.source.Unarchive(ctx, id)
	}, nil)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if row, ok := s.resolve(id, restored, false); ok {
		s.replace(id, row)
	}
	s.mu.Unlock()

	s.toasts.Success(s.label + " restored")

	return restored, nil
}

// mutate runs call with the saving flag set. On success splice runs under the lock with the
// returned row, then stats are refetched.
func (s *Store[T]) mutate(ctx context.Context, op string, call func() (*T, error), splice func(T)) (*T, error) {
	s.mu.Lock()
	s.saving = true
	s.mu.Unlock()

	row, err := call()

	s.mu.Lock()
	s.saving = false

	if err != nil {
		s.errMsg = failure.GetMessage(err)
		s.mu.Unlock()

		if !failure.IsUnauthorized(err) {
			s.toasts.Error(s.errMsg)
		}

		log.Error().Err(err).Str("store", s.name).Str("op", op).Msg("mutation failed")

		return nil, fmt.Errorf("%s %s: %w", op, s.name, err)
	}

	s.mutations++
	s.errMsg = ""

	if splice != nil && row != nil {
		splice(*row)
	}
	s.mu.Unlock()

	s.refreshStats(ctx)

	return row, nil
}

func (s *Store[T]) refreshStats(ctx context.Context) {
	stats, err := s.source.Stats(ctx)
	if err != nil {
		log.Warn().Err(err).Str("store", s.name).Msg("failed to refresh stats")

		return
	}

	if stats == nil {
		stats = Stats{}
	}

	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
}

// RefreshStats refetches the aggregate stats.
func (s *Store[T]) RefreshStats(ctx context.Context) Stats {
	s.refreshStats(ctx)

	return s.Snapshot().Stats
}

func (s *Store[T]) cached(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		var zero T

		return zero, false
	}

	return s.items[idx], true
}

// resolve picks the row to keep after an archive toggle: the echoed one, else the cached row
// with the flag flipped.
func (s *Store[T]) resolve(id string, echoed *T, archived bool) (T, bool) {
	if echoed != nil {
		return *echoed, true
	}

	idx := s.index(id)
	if idx < 0 {
		var zero T

		return zero, false
	}

	return s.items[idx].WithArchived(archived), true
}

func (s *Store[T]) index(id string) int {
	return slices.IndexFunc(s.items, func(row T) bool { return row.Key() == id })
}

func (s *Store[T]) replace(id string, row T) {
	if idx := s.index(id); idx >= 0 {
		s.items = slices.Clone(s.items)
		s.items[idx] = row
	}
}

func (s *Store[T]) remove(id string) {
	s.items = slices.DeleteFunc(slices.Clone(s.items), func(row T) bool { return row.Key() == id })
}

func (s *Store[T]) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

// Snapshot returns a copy of the current state with the page-scoped counts filled in.
func (s *Store[T]) Snapshot() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := State[T]{
		Items:           slices.Clone(s.items),
		Stats:           s.stats,
		Loading:         s.loading,
		Saving:          s.saving,
		Error:           s.errMsg,
		Filters:         s.filters.Clone(),
		Pagination:      s.pagination,
		AutoRefresh:     s.autoRefresh,
		RefreshInterval: int(s.interval / time.Second),
	}
	state.PageToday, state.PageUpcoming = PageCounts(state.Items, s.now())

	return state
}

// Get returns the cached row for id.
func (s *Store[T]) Get(id string) (T, bool) {
	return s.cached(id)
}

// PageCounts counts the rows of one page that fall today and those pending or confirmed within
// the next UpcomingWindowDays. They describe the page only, not the whole collection.
func PageCounts[T Row[T]](items []T, now time.Time) (today, upcoming int) {
	start := timezone.StartOfDay(now)
	horizon := start.AddDate(0, 0, UpcomingWindowDays)

	for _, row := range items {
		day, err := timezone.Parse(constant.DateOnlyFormat, row.Day())
		if err != nil {
			continue
		}

		if day.Equal(start) {
			today++
		}

		if day.Before(start) || day.After(horizon) {
			continue
		}

		if state := row.State(); state == StatusPending || state == StatusConfirmed {
			upcoming++
		}
	}

	return today, upcoming
}
