package service

import (
	"context"
	"salondash/infras/otel"
	"salondash/internal/domains/workinghours/model"
	"salondash/internal/domains/workinghours/model/dto"
	"salondash/internal/domains/workinghours/repository"
	"salondash/shared/constant"
	"salondash/shared/failure"
	"salondash/shared/format"

	"github.com/rs/zerolog/log"
)

const messageInvalidHours = "Please fix the highlighted working hours"

type WorkingHours interface {
	Get(ctx context.Context) (dto.WorkingHoursResponse, error)
	Update(ctx context.Context, req dto.UpdateWorkingHoursRequest) (dto.WorkingHoursResponse, error)
	Reset(ctx context.Context) (dto.WorkingHoursResponse, error)
}

type serviceImpl struct {
	repo      repository.WorkingHours
	formatter *format.Formatter
	otel      otel.Otel
}

func New(repo repository.WorkingHours, formatter *format.Formatter, otel otel.Otel) WorkingHours {
	return &serviceImpl{
		repo:      repo,
		formatter: formatter,
		otel:      otel,
	}
}

func (s *serviceImpl) respond(week model.Week) (res dto.WorkingHoursResponse) {
	res.FromModel(week, s.formatter)

	return res
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.WorkingHoursResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".workinghours.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	week, err := s.repo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get working hours")

		return res, err
	}

	return s.respond(week), nil
}

// Update validates the whole week before it is sent.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateWorkingHoursRequest) (res dto.WorkingHoursResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".workinghours.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	week := req.Week()
	if errs := week.Validate(); len(errs) > 0 {
		return res, failure.Validation(messageInvalidHours, errs) //nolint:wrapcheck
	}

	saved, err := s.repo.Put(ctx, dto.ToBody(week))
	if err != nil {
		log.Error().Err(err).Msg("failed to update working hours")

		return res, err
	}

	if saved == nil {
		saved = week
	}

	return s.respond(saved), nil
}

func (s *serviceImpl) Reset(ctx context.Context) (res dto.WorkingHoursResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".workinghours.Reset")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	week, err := s.repo.Reset(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to reset working hours")

		return res, err
	}

	if week == nil {
		return s.Get(ctx)
	}

	return s.respond(week), nil
}
