package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"net/http"
	"salondash/infras/otel"
	"salondash/infras/ownerapi"
	"salondash/internal/domains/workinghours/model"
	"salondash/shared/failure"
	"salondash/shared/logger"
	gRepo "salondash/shared/repository"
)

type WorkingHours interface {
	Get(ctx context.Context) (model.Week, error)
	Put(ctx context.Context, body any) (model.Week, error)
	Reset(ctx context.Context) (model.Week, error)
}

type repositoryImpl struct {
	repo gRepo.Repository[model.Day]
}

func New(client ownerapi.Client, otel otel.Otel) WorkingHours {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.Day](model.EntityName, model.Path, nil, model.PayloadKey, client, otel),
	}
}

func (r *repositoryImpl) Get(ctx context.Context) (model.Week, error) {
	return r.send(ctx, ownerapi.Request{Method: http.MethodGet, Path: r.repo.Path()})
}

func (r *repositoryImpl) Put(ctx context.Context, body any) (model.Week, error) {
	return r.send(ctx, ownerapi.Request{Method: http.MethodPut, Path: r.repo.Path(), Body: body})
}

func (r *repositoryImpl) Reset(ctx context.Context) (model.Week, error) {
	return r.send(ctx, ownerapi.Request{Method: http.MethodPost, Path: r.repo.Path(model.SegmentReset)})
}

// send issues req and decodes the week it returns. A response without one yields nil so the
// caller can read the schedule again.
func (r *repositoryImpl) send(ctx context.Context, req ownerapi.Request) (model.Week, error) {
	payload, err := r.repo.Call(ctx, req)
	if err != nil {
		return nil, err
	}

	var week model.Week

	found, err := payload.Decode(&week, model.PayloadKey)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, failure.BadGateway("unexpected working hours shape") //nolint:wrapcheck
	}

	if !found {
		return nil, nil
	}

	week.Sort()

	return week, nil
}
