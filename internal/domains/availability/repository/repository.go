package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"net/url"
	"salondash/infras/otel"
	"salondash/infras/ownerapi"
	"salondash/internal/domains/availability/model"
	gRepo "salondash/shared/repository"
)

type Availability interface {
	Slots(ctx context.Context, query url.Values) ([]model.Slot, error)
}

type repositoryImpl struct {
	repo gRepo.Repository[model.Slot]
}

func New(client ownerapi.Client, otel otel.Otel) Availability {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.Slot](model.EntityName, model.Path, []string{model.PayloadKeySlots}, "", client, otel),
	}
}

func (r *repositoryImpl) Slots(ctx context.Context, query url.Values) ([]model.Slot, error) {
	slots := []model.Slot{}
	if err := r.repo.Fetch(ctx, query, &slots, model.PayloadKeySlots, model.SegmentSlots); err != nil {
		return nil, err
	}

	return slots, nil
}
