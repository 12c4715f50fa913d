package dashboard

import (
	"salondash/shared/dto"
	"time"
)

// View is the JSON a dashboard page renders: the grid plus the store flags around it.
type View[R any] struct {
	Grid            Grid[R]        `json:"grid"`
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

func NewView[T Row[T], R any](state State[T], convert func(T) R, skeletonRows int, emptyMessage string) View[R] {
	rows := make([]R, 0, len(state.Items))
	for _, item := range state.Items {
		rows = append(rows, convert(item))
	}

	return View[R]{
		Grid:            NewGrid(state.Loading, rows, skeletonRows, emptyMessage),
		Stats:           state.Stats,
		Loading:         state.Loading,
		Saving:          state.Saving,
		Error:           state.Error,
		Filters:         state.Filters,
		Pagination:      state.Pagination,
		AutoRefresh:     state.AutoRefresh,
		RefreshInterval: state.RefreshInterval,
		PageToday:       state.PageToday,
		PageUpcoming:    state.PageUpcoming,
	}
}

type AutoRefreshRequest struct {
	Enabled         *bool `json:"enabled"          validate:"required"`
	IntervalSeconds int   `json:"interval_seconds" validate:"omitempty,gte=5,lte=3600"`
}

func (a AutoRefreshRequest) Interval() time.Duration {
	return time.Duration(a.IntervalSeconds) * time.Second
}

// FiltersRequest patches the filters of a store. Keys with an empty value clear that filter.
type FiltersRequest struct {
	Filters dto.Filters `json:"filters" validate:"required"`
}
