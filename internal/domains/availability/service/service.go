package service

import (
	"context"
	"salondash/infras/otel"
	"salondash/internal/domains/availability/model/dto"
	"salondash/internal/domains/availability/repository"
	"salondash/shared/constant"
	"salondash/shared/format"
	"salondash/shared/validator"

	"github.com/rs/zerolog/log"
)

type Availability interface {
	Slots(ctx context.Context, req dto.SlotsRequest) (dto.SlotsResponse, error)
}

type serviceImpl struct {
	repo      repository.Availability
	formatter *format.Formatter
	otel      otel.Otel
}

func New(repo repository.Availability, formatter *format.Formatter, otel otel.Otel) Availability {
	return &serviceImpl{
		repo:      repo,
		formatter: formatter,
		otel:      otel,
	}
}

func (s *serviceImpl) Slots(ctx context.Context, req dto.SlotsRequest) (res dto.SlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.Slots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	slots, err := s.repo.Slots(ctx, req.Query())
	if err != nil {
		log.Error().Err(err).Str("date", req.Date).Msg("failed to get availability")

		return res, err
	}

	res.FromModels(req, slots, s.formatter)

	return res, nil
}
