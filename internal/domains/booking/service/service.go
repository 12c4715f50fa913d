package service

import (
	"context"
	"net/url"
	"salondash/config"
	"salondash/infras/otel"
	"salondash/internal/dashboard"
	"salondash/internal/domains/booking/model"
	"salondash/internal/domains/booking/model/dto"
	"salondash/internal/domains/booking/repository"
	"salondash/shared/constant"
	gDto "salondash/shared/dto"
	"salondash/shared/format"
	"salondash/shared/poller"
	"salondash/shared/toast"
	"time"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Get(ctx context.Context, id string) (dto.BookingDetailsResponse, error)
	Stats(ctx context.Context) (dashboard.Stats, error)
	CalendarAvailability(ctx context.Context, filters gDto.Filters) (map[string]any, error)
	NewDashboard(ctx context.Context, toasts *toast.Queue) *dashboard.Store[model.Booking]
}

type serviceImpl struct {
	repo      repository.Booking
	cfg       *config.Config
	formatter *format.Formatter
	pollers   poller.Factory
	otel      otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, formatter *format.Formatter, pollers poller.Factory, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		formatter: formatter,
		pollers:   pollers,
		otel:      otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingDetailsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		return res, err
	}

	res.FromModel(booking, s.formatter)

	return res, nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dashboard.Stats, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.repo.Stats(ctx)
}

func (s *serviceImpl) CalendarAvailability(ctx context.Context, filters gDto.Filters) (res map[string]any, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CalendarAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := url.Values{}
	filters.Encode(query)

	return s.repo.CalendarAvailability(ctx, query)
}

// NewDashboard builds the booking store of one session. ctx scopes its background fetches.
func (s *serviceImpl) NewDashboard(ctx context.Context, toasts *toast.Queue) *dashboard.Store[model.Booking] {
	return dashboard.NewStore[model.Booking](s.repo, DashboardOptions[model.Booking](ctx, s.cfg, "bookings", "Booking", s.pollers, toasts))
}

// DashboardOptions reads the store settings shared by the booking dashboards from cfg.
func DashboardOptions[T any](ctx context.Context, cfg *config.Config, name, label string, pollers poller.Factory, toasts *toast.Queue) dashboard.Options[T] {
	opts := dashboard.Options[T]{
		Context:         ctx,
		Name:            name,
		Label:           label,
		Limit:           cfg.Dashboard.PageLimit,
		AutoRefresh:     cfg.Dashboard.AutoRefresh,
		RefreshInterval: time.Duration(cfg.Dashboard.RefreshIntervalSeconds) * time.Second,
		Debounce:        time.Duration(cfg.Dashboard.FilterDebounceMillis) * time.Millisecond,
		Toasts:          toasts,
	}

	if pollers != nil {
		opts.Poller = pollers()
	}

	return opts
}
