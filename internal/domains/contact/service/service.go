package service

import (
	"context"
	"salondash/infras/otel"
	"salondash/internal/domains/contact/model"
	"salondash/internal/domains/contact/model/dto"
	"salondash/internal/domains/contact/repository"
	"salondash/shared/constant"
	gDto "salondash/shared/dto"

	"github.com/rs/zerolog/log"
)

// ListFilters are the query keys the contact list forwards.
var ListFilters = []string{constant.RequestParamStatus, constant.RequestParamSearch}

type Contact interface {
	GetContacts(ctx context.Context, params gDto.QueryParams, filters gDto.Filters) (dto.GetContactsResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateContactRequest) (dto.ContactResponse, error)
}

type serviceImpl struct {
	repo repository.Contact
	otel otel.Otel
}

func New(repo repository.Contact, otel otel.Otel) Contact {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetContacts(ctx context.Context, params gDto.QueryParams, filters gDto.Filters) (res dto.GetContactsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.GetContacts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	kept := gDto.Filters{}
	for _, key := range ListFilters {
		if v, ok := filters[key]; ok {
			kept[key] = v
		}
	}

	page, err := s.repo.List(ctx, params, kept)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contacts")

		return res, err
	}

	res.FromModels(page.Items, page.Pagination)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateContactRequest) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	updated, err := s.repo.Update(ctx, id, req.ToBody())
	if err != nil {
		log.Error().Err(err).Str("id", id).Str("status", req.Status).Msg("failed to update contact status")

		return res, err
	}

	if updated != nil {
		res.FromModel(*updated)
	} else {
		res.ID = id
		res.Status = req.Status
		res.Bucket = model.Bucket(req.Status)
	}

	return res, nil
}
