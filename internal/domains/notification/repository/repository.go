package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"salondash/infras/otel"
	"salondash/infras/ownerapi"
	"salondash/internal/domains/notification/model"
	gDto "salondash/shared/dto"
	gRepo "salondash/shared/repository"
)

type Notification interface {
	List(ctx context.Context, params gDto.QueryParams, filters gDto.Filters) (gRepo.Page[model.Notification], error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Notification]
}

func New(client ownerapi.Client, otel otel.Otel) Notification {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Notification](model.EntityName, model.Path, []string{model.PayloadKeyList}, model.PayloadKey, client, otel),
	}
}
