package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"salondash/infras/otel"
	"salondash/infras/ownerapi"
	"salondash/internal/domains/contact/model"
	gDto "salondash/shared/dto"
	gRepo "salondash/shared/repository"
)

type Contact interface {
	List(ctx context.Context, params gDto.QueryParams, filters gDto.Filters) (gRepo.Page[model.Contact], error)
	Update(ctx context.Context, id string, body any) (*model.Contact, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Contact]
}

func New(client ownerapi.Client, otel otel.Otel) Contact {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Contact](model.EntityName, model.Path, []string{model.PayloadKeyList}, model.PayloadKey, client, otel),
	}
}
