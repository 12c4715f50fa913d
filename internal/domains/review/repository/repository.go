package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"salondash/infras/otel"
	"salondash/infras/ownerapi"
	"salondash/internal/domains/review/model"
	gDto "salondash/shared/dto"
	gRepo "salondash/shared/repository"
)

type Review interface {
	List(ctx context.Context, params gDto.QueryParams, filters gDto.Filters) (gRepo.Page[model.Review], error)
	Update(ctx context.Context, id string, body any) (*model.Review, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
}

func New(client ownerapi.Client, otel otel.Otel) Review {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.EntityName, model.Path, []string{model.PayloadKeyList}, model.PayloadKey, client, otel),
	}
}
