package service

import (
	"context"
	"fmt"
	"salondash/infras/otel"
	"salondash/internal/domains/pricing/model"
	"salondash/internal/domains/pricing/model/dto"
	"salondash/internal/domains/pricing/repository"
	"salondash/shared/constant"
	gDto "salondash/shared/dto"
	"salondash/shared/format"

	"github.com/rs/zerolog/log"
)

// catalogLimit is the page size used when the whole catalog is loaded at once.
const catalogLimit = 100

type Pricing interface {
	GetSections(ctx context.Context, params gDto.QueryParams, filters gDto.Filters) (dto.GetSectionsResponse, error)
	CreateSection(ctx context.Context, req dto.CreateSectionRequest) (dto.SectionResponse, error)
	UpdateSection(ctx context.Context, id string, req dto.UpdateSectionRequest) (dto.SectionResponse, error)
	DeleteSection(ctx context.Context, id string) error

	GetServices(ctx context.Context, params gDto.QueryParams, filters gDto.Filters) (dto.GetServicesResponse, error)
	GetService(ctx context.Context, id string) (dto.ServiceResponse, error)
	CreateService(ctx context.Context, req dto.CreateServiceRequest) (dto.ServiceResponse, error)
	UpdateService(ctx context.Context, id string, req dto.UpdateServiceRequest) (dto.ServiceResponse, error)
	DeleteService(ctx context.Context, id string) error

	GetSlots(ctx context.Context, serviceID string) ([]dto.SlotResponse, error)
	CreateSlot(ctx context.Context, serviceID string, req dto.CreateSlotRequest) (dto.SlotResponse, error)
	UpdateSlot(ctx context.Context, serviceID, slotID string, req dto.UpdateSlotRequest) (dto.SlotResponse, error)
	DeleteSlot(ctx context.Context, serviceID, slotID string) error

	Catalog(ctx context.Context) (dto.CatalogResponse, error)
}

type serviceImpl struct {
	sections  repository.Section
	services  repository.Service
	slots     repository.Slot
	formatter *format.Formatter
	otel      otel.Otel
}

func New(sections repository.Section, services repository.Service, slots repository.Slot, formatter *format.Formatter, otel otel.Otel) Pricing {
	return &serviceImpl{
		sections:  sections,
		services:  services,
		slots:     slots,
		formatter: formatter,
		otel:      otel,
	}
}

func (s *serviceImpl) GetSections(ctx context.Context, params gDto.QueryParams, filters gDto.Filters) (res dto.GetSectionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.GetSections")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	page, err := s.sections.List(ctx, params, filters)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sections")

		return res, err
	}

	res.Sections = make([]dto.SectionResponse, 0, len(page.Items))
	for _, m := range page.Items {
		var section dto.SectionResponse
		section.FromModel(m)
		res.Sections = append(res.Sections, section)
	}

	res.Pagination = page.Pagination

	return res, nil
}

func (s *serviceImpl) CreateSection(ctx context.Context, req dto.CreateSectionRequest) (res dto.SectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.CreateSection")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	created, err := s.sections.Create(ctx, req.ToBody())
	if err != nil {
		log.Error().Err(err).Msg("failed to create section")

		return res, err
	}

	if created != nil {
		res.FromModel(*created)
	}

	return res, nil
}

func (s *serviceImpl) UpdateSection(ctx context.Context, id string, req dto.UpdateSectionRequest) (res dto.SectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.UpdateSection")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	updated, err := s.sections.Update(ctx, id, req.ToBody())
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update section")

		return res, err
	}

	if updated != nil {
		res.FromModel(*updated)
	}

	return res, nil
}

func (s *serviceImpl) DeleteSection(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.DeleteSection")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.sections.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete section")

		return err
	}

	return nil
}

func (s *serviceImpl) serviceResponse(m model.Service) dto.ServiceResponse {
	var res dto.ServiceResponse
	res.FromModel(m, s.formatter)

	return res
}

func (s *serviceImpl) GetServices(ctx context.Context, params gDto.QueryParams, filters gDto.Filters) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.GetServices")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	page, err := s.services.List(ctx, params, filters)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, err
	}

	res.Services = make([]dto.ServiceResponse, 0, len(page.Items))
	for _, m := range page.Items {
		res.Services = append(res.Services, s.serviceResponse(m))
	}

	res.Pagination = page.Pagination

	return res, nil
}

func (s *serviceImpl) GetService(ctx context.Context, id string) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.GetService")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	m, err := s.services.Get(ctx, id)
	if err != nil {
		return res, err
	}

	return s.serviceResponse(m), nil
}

func (s *serviceImpl) CreateService(ctx context.Context, req dto.CreateServiceRequest) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.CreateService")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	created, err := s.services.Create(ctx, req.ToBody())
	if err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return res, err
	}

	if created != nil {
		res = s.serviceResponse(*created)
	}

	return res, nil
}

func (s *serviceImpl) UpdateService(ctx context.Context, id string, req dto.UpdateServiceRequest) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.UpdateService")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	updated, err := s.services.Update(ctx, id, req.ToBody())
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update service")

		return res, err
	}

	if updated != nil {
		res = s.serviceResponse(*updated)
	}

	return res, nil
}

func (s *serviceImpl) DeleteService(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.DeleteService")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.services.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete service")

		return err
	}

	return nil
}

func (s *serviceImpl) slotResponse(m model.Slot) dto.SlotResponse {
	var res dto.SlotResponse
	res.FromModel(m, s.formatter)

	return res
}

func (s *serviceImpl) GetSlots(ctx context.Context, serviceID string) (res []dto.SlotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.GetSlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	slots, err := s.slots.List(ctx, serviceID)
	if err != nil {
		log.Error().Err(err).Str("service_id", serviceID).Msg("failed to get slots")

		return nil, err
	}

	res = make([]dto.SlotResponse, 0, len(slots))
	for _, m := range slots {
		res = append(res, s.slotResponse(m))
	}

	return res, nil
}

func (s *serviceImpl) CreateSlot(ctx context.Context, serviceID string, req dto.CreateSlotRequest) (res dto.SlotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.CreateSlot")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	created, err := s.slots.Create(ctx, serviceID, req.ToBody())
	if err != nil {
		log.Error().Err(err).Str("service_id", serviceID).Msg("failed to create slot")

		return res, err
	}

	if created != nil {
		res = s.slotResponse(*created)
	}

	return res, nil
}

func (s *serviceImpl) UpdateSlot(ctx context.Context, serviceID, slotID string, req dto.UpdateSlotRequest) (res dto.SlotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.UpdateSlot")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	updated, err := s.slots.Update(ctx, serviceID, slotID, req.ToBody())
	if err != nil {
		log.Error().Err(err).Str("service_id", serviceID).Str("slot_id", slotID).Msg("failed to update slot")

		return res, err
	}

	if updated != nil {
		res = s.slotResponse(*updated)
	}

	return res, nil
}

func (s *serviceImpl) DeleteSlot(ctx context.Context, serviceID, slotID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.DeleteSlot")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.slots.Delete(ctx, serviceID, slotID); err != nil {
		log.Error().Err(err).Str("service_id", serviceID).Str("slot_id", slotID).Msg("failed to delete slot")

		return err
	}

	return nil
}

// Catalog groups every service under its section, in section order. Services whose section is
// unknown are listed apart.
func (s *serviceImpl) Catalog(ctx context.Context) (res dto.CatalogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.Catalog")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sections, err := s.sections.List(ctx, gDto.QueryParams{Page: 1, Limit: catalogLimit}, nil)
	if err != nil {
		return res, fmt.Errorf("failed to load sections: %w", err)
	}

	services, err := s.services.List(ctx, gDto.QueryParams{Page: 1, Limit: catalogLimit}, nil)
	if err != nil {
		return res, fmt.Errorf("failed to load services: %w", err)
	}

	index := make(map[string]int, len(sections.Items))
	res.Sections = make([]dto.CatalogSection, 0, len(sections.Items))

	for i, m := range sections.Items {
		var section dto.CatalogSection
		section.FromModel(m)
		section.Services = []dto.ServiceResponse{}

		index[m.ID.String()] = i
		res.Sections = append(res.Sections, section)
	}

	res.Unassigned = []dto.ServiceResponse{}

	for _, m := range services.Items {
		if i, ok := index[m.SectionID.String()]; ok {
			res.Sections[i].Services = append(res.Sections[i].Services, s.serviceResponse(m))
			continue
		}

		res.Unassigned = append(res.Unassigned, s.serviceResponse(m))
	}

	return res, nil
}
