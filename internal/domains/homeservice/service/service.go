package service

import (
	"context"
	"maps"
	"salondash/config"
	"salondash/infras/otel"
	"salondash/internal/dashboard"
	bookingService "salondash/internal/domains/booking/service"
	"salondash/internal/domains/homeservice/model"
	"salondash/internal/domains/homeservice/model/dto"
	"salondash/internal/domains/homeservice/repository"
	"salondash/shared/constant"
	"salondash/shared/format"
	gModel "salondash/shared/model"
	"salondash/shared/poller"
	"salondash/shared/toast"

	"github.com/rs/zerolog/log"
)

type HomeService interface {
	Get(ctx context.Context, id string) (dto.HomeServiceBookingDetailsResponse, error)
	Stats(ctx context.Context) (dashboard.Stats, error)
	NewDashboard(ctx context.Context, toasts *toast.Queue) *dashboard.Store[model.Booking]
}

type serviceImpl struct {
	repo      repository.HomeService
	cfg       *config.Config
	formatter *format.Formatter
	pollers   poller.Factory
	otel      otel.Otel
}

func New(repo repository.HomeService, cfg *config.Config, formatter *format.Formatter, pollers poller.Factory, otel otel.Otel) HomeService {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		formatter: formatter,
		pollers:   pollers,
		otel:      otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HomeServiceBookingDetailsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".homeservice.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get home service booking")

		return res, err
	}

	res.FromModel(booking, s.formatter)

	return res, nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dashboard.Stats, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".homeservice.Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.repo.Stats(ctx)
}

func (s *serviceImpl) NewDashboard(ctx context.Context, toasts *toast.Queue) *dashboard.Store[model.Booking] {
	opts := bookingService.DashboardOptions[model.Booking](ctx, s.cfg, "home_service_bookings", "Home service booking", s.pollers, toasts)
	opts.PrepareUpdate = RecomputeTotal

	return dashboard.NewStore[model.Booking](s.repo, opts)
}

// RecomputeTotal adds total_price to a patch that changes service_price or travel_fee. The
// component the patch leaves out is taken from the cached row. Other fields are not touched.
func RecomputeTotal(current model.Booking, cached bool, patch map[string]any) map[string]any {
	rawPrice, hasPrice := patch[model.FieldServicePrice]
	rawFee, hasFee := patch[model.FieldTravelFee]

	if !hasPrice && !hasFee {
		return patch
	}

	var price, fee gModel.Money
	if cached {
		price, fee = current.ServicePrice, current.TravelFee
	}

	if hasPrice {
		if m, ok := gModel.MoneyFromAny(rawPrice); ok {
			price = m
		}
	}

	if hasFee {
		if m, ok := gModel.MoneyFromAny(rawFee); ok {
			fee = m
		}
	}

	out := maps.Clone(patch)
	out[model.FieldTotalPrice] = string(gModel.Sum(price, fee))

	return out
}
