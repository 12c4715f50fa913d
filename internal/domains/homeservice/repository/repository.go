package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"net/http"
	"salondash/infras/otel"
	"salondash/infras/ownerapi"
	"salondash/internal/dashboard"
	"salondash/internal/domains/homeservice/model"
	"salondash/shared/constant"
	gDto "salondash/shared/dto"
	"salondash/shared/failure"
	"salondash/shared/logger"
	gRepo "salondash/shared/repository"
)

type HomeService interface {
	List(ctx context.Context, params gDto.QueryParams, filters gDto.Filters) (gRepo.Page[model.Booking], error)
	Get(ctx context.Context, id string) (model.Booking, error)
	Create(ctx context.Context, body any) (*model.Booking, error)
	Update(ctx context.Context, id string, body any) (*model.Booking, error)
	Delete(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) (*model.Booking, error)
	Unarchive(ctx context.Context, id string) (*model.Booking, error)
	Stats(ctx context.Context) (dashboard.Stats, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	otel otel.Otel
}

func New(client ownerapi.Client, otel otel.Otel) HomeService {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](
			model.EntityName,
			model.Path,
			[]string{model.PayloadKeyList, model.PayloadKeyListFallback},
			model.PayloadKey,
			client,
			otel,
		),
		otel: otel,
	}
}

func (r *repositoryImpl) Archive(ctx context.Context, id string) (*model.Booking, error) {
	return r.Action(ctx, id, model.ActionArchive)
}

func (r *repositoryImpl) Unarchive(ctx context.Context, id string) (*model.Booking, error) {
	return r.Action(ctx, id, model.ActionUnarchive)
}

func (r *repositoryImpl) Stats(ctx context.Context) (res dashboard.Stats, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".homeservice.Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payload, err := r.Call(ctx, ownerapi.Request{Method: http.MethodGet, Path: r.Path(model.SegmentStats, model.SegmentOverview)})
	if err != nil {
		return nil, err
	}

	res, err = dashboard.StatsFromPayload(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, failure.BadGateway("unexpected home service stats shape") //nolint:wrapcheck
	}

	return res, nil
}
