package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"salondash/infras/otel"
	"salondash/infras/ownerapi"
	"salondash/internal/domains/pricing/model"
	gDto "salondash/shared/dto"
	gRepo "salondash/shared/repository"
)

type Section interface {
	List(ctx context.Context, params gDto.QueryParams, filters gDto.Filters) (gRepo.Page[model.Section], error)
	Create(ctx context.Context, body any) (*model.Section, error)
	Update(ctx context.Context, id string, body any) (*model.Section, error)
	Delete(ctx context.Context, id string) error
}

type Service interface {
	List(ctx context.Context, params gDto.QueryParams, filters gDto.Filters) (gRepo.Page[model.Service], error)
	Get(ctx context.Context, id string) (model.Service, error)
	Create(ctx context.Context, body any) (*model.Service, error)
	Update(ctx context.Context, id string, body any) (*model.Service, error)
	Delete(ctx context.Context, id string) error
}

// Slot reaches the time slots nested under one service.
type Slot interface {
	List(ctx context.Context, serviceID string) ([]model.Slot, error)
	Create(ctx context.Context, serviceID string, body any) (*model.Slot, error)
	Update(ctx context.Context, serviceID, slotID string, body any) (*model.Slot, error)
	Delete(ctx context.Context, serviceID, slotID string) error
}

type sectionImpl struct {
	gRepo.Repository[model.Section]
}

func NewSection(client ownerapi.Client, otel otel.Otel) Section {
	return &sectionImpl{
		Repository: gRepo.NewRepository[model.Section](model.SectionEntityName, model.SectionPath, []string{model.PayloadKeySections}, model.PayloadKeySection, client, otel),
	}
}

type serviceImpl struct {
	gRepo.Repository[model.Service]
}

func NewService(client ownerapi.Client, otel otel.Otel) Service {
	return &serviceImpl{
		Repository: gRepo.NewRepository[model.Service](model.ServiceEntityName, model.ServicePath, []string{model.PayloadKeyServices}, model.PayloadKeyService, client, otel),
	}
}

type slotImpl struct {
	client ownerapi.Client
	otel   otel.Otel
}

func NewSlot(client ownerapi.Client, otel otel.Otel) Slot {
	return &slotImpl{
		client: client,
		otel:   otel,
	}
}

func (r *slotImpl) of(serviceID string) gRepo.Repository[model.Slot] {
	services := gRepo.NewRepository[model.Service](model.ServiceEntityName, model.ServicePath, nil, "", r.client, r.otel)

	return gRepo.NewRepository[model.Slot](model.SlotEntityName, services.Path(serviceID, model.SlotSegment), []string{model.PayloadKeySlots}, model.PayloadKeySlot, r.client, r.otel)
}

func (r *slotImpl) List(ctx context.Context, serviceID string) ([]model.Slot, error) {
	repo := r.of(serviceID)

	page, err := repo.List(ctx, gDto.QueryParams{}, nil)
	if err != nil {
		return nil, err
	}

	return page.Items, nil
}

func (r *slotImpl) Create(ctx context.Context, serviceID string, body any) (*model.Slot, error) {
	repo := r.of(serviceID)

	return repo.Create(ctx, body)
}

func (r *slotImpl) Update(ctx context.Context, serviceID, slotID string, body any) (*model.Slot, error) {
	repo := r.of(serviceID)

	return repo.Update(ctx, slotID, body)
}

func (r *slotImpl) Delete(ctx context.Context, serviceID, slotID string) error {
	repo := r.of(serviceID)

	return repo.Delete(ctx, slotID)
}
