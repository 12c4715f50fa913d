package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"net/http"
	"salondash/infras/otel"
	"salondash/infras/ownerapi"
	"salondash/internal/domains/profile/model"
	"salondash/shared/failure"
	"salondash/shared/logger"
	gRepo "salondash/shared/repository"
)

type Profile interface {
	Get(ctx context.Context) (model.Profile, error)
	Update(ctx context.Context, body any) (*model.Profile, error)
	ChangePassword(ctx context.Context, body any) error
}

type repositoryImpl struct {
	repo gRepo.Repository[model.Profile]
}

func New(client ownerapi.Client, otel otel.Otel) Profile {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.Profile](model.EntityName, model.Path, nil, model.PayloadKey, client, otel),
	}
}

func (r *repositoryImpl) Get(ctx context.Context) (res model.Profile, err error) {
	payload, err := r.repo.Call(ctx, ownerapi.Request{Method: http.MethodGet, Path: r.repo.Path()})
	if err != nil {
		return res, err
	}

	found, err := payload.Decode(&res, model.PayloadKey)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, failure.BadGateway("unexpected profile shape") //nolint:wrapcheck
	}

	if !found {
		return res, failure.NotFound("profile not found") //nolint:wrapcheck
	}

	return res, nil
}

func (r *repositoryImpl) Update(ctx context.Context, body any) (*model.Profile, error) {
	return r.repo.Send(ctx, http.MethodPatch, r.repo.Path(), body)
}

func (r *repositoryImpl) ChangePassword(ctx context.Context, body any) error {
	_, err := r.repo.Call(ctx, ownerapi.Request{Method: http.MethodPatch, Path: r.repo.Path(model.SegmentPassword), Body: body})

	return err
}
