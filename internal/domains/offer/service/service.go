package service

import (
	"context"
	"salondash/infras/otel"
	"salondash/internal/dashboard"
	"salondash/internal/domains/offer/model"
	"salondash/internal/domains/offer/model/dto"
	"salondash/internal/domains/offer/repository"
	pricingRepo "salondash/internal/domains/pricing/repository"
	"salondash/shared/constant"
	gDto "salondash/shared/dto"
	"salondash/shared/failure"
	"salondash/shared/format"
	"salondash/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	// servicePickerLimit is the page size of the service picker on the offer form.
	servicePickerLimit = 100

	messageFormInvalid = "Please fix the highlighted offer fields"
)

type Offer interface {
	GetOffers(ctx context.Context, params gDto.QueryParams, filters gDto.Filters) (dto.GetOffersResponse, error)
	Get(ctx context.Context, id string) (dto.OfferResponse, error)
	Create(ctx context.Context, req dto.OfferRequest) (dto.OfferResponse, error)
	Update(ctx context.Context, id string, req dto.OfferRequest) (dto.OfferResponse, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (dashboard.Stats, error)
	Categories(ctx context.Context) ([]string, error)
	Services(ctx context.Context) ([]dto.LinkedService, error)
	PreviewForm(ctx context.Context, req dto.FormRequest) dto.FormResponse
	EditForm(ctx context.Context, id string, requireService bool) (dto.FormResponse, error)
}

type serviceImpl struct {
	repo      repository.Offer
	services  pricingRepo.Service
	formatter *format.Formatter
	otel      otel.Otel
}

func New(repo repository.Offer, services pricingRepo.Service, formatter *format.Formatter, otel otel.Otel) Offer {
	return &serviceImpl{
		repo:      repo,
		services:  services,
		formatter: formatter,
		otel:      otel,
	}
}

func (s *serviceImpl) response(m model.Offer) dto.OfferResponse {
	var res dto.OfferResponse
	res.FromModel(m, s.formatter, timezone.Now())

	return res
}

func (s *serviceImpl) GetOffers(ctx context.Context, params gDto.QueryParams, filters gDto.Filters) (res dto.GetOffersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".offer.GetOffers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	page, err := s.repo.List(ctx, params, filters)
	if err != nil {
		log.Error().Err(err).Msg("failed to get offers")

		return res, err
	}

	res.Offers = make([]dto.OfferResponse, 0, len(page.Items))
	for _, m := range page.Items {
		res.Offers = append(res.Offers, s.response(m))
	}

	res.Pagination = page.Pagination
	if len(res.Offers) == 0 {
		res.Empty = true
		res.EmptyMessage = dto.EmptyMessage
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.OfferResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".offer.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	offer, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get offer")

		return res, err
	}

	return s.response(offer), nil
}

// submit validates the form and returns the backend body, or a validation failure carrying
// the field messages.
func submit(req dto.OfferRequest) (map[string]any, error) {
	form := req.Form()
	if errs := form.ValidateForm(); len(errs) > 0 {
		return nil, failure.Validation(messageFormInvalid, errs) //nolint:wrapcheck
	}

	return dto.ToBody(form), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.OfferRequest) (res dto.OfferResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".offer.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	body, err := submit(req)
	if err != nil {
		return res, err
	}

	created, err := s.repo.Create(ctx, body)
	if err != nil {
		log.Error().Err(err).Msg("failed to create offer")

		return res, err
	}

	if created != nil {
		res = s.response(*created)
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.OfferRequest) (res dto.OfferResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".offer.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	body, err := submit(req)
	if err != nil {
		return res, err
	}

	updated, err := s.repo.Update(ctx, id, body)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update offer")

		return res, err
	}

	if updated != nil {
		res = s.response(*updated)
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".offer.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete offer")

		return err
	}

	return nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dashboard.Stats, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".offer.Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.repo.Stats(ctx)
}

func (s *serviceImpl) Categories(ctx context.Context) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".offer.Categories")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.repo.Categories(ctx)
}

func (s *serviceImpl) Services(ctx context.Context) (res []dto.LinkedService, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".offer.Services")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	page, err := s.services.List(ctx, gDto.QueryParams{Page: 1, Limit: servicePickerLimit}, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to get offer services")

		return nil, err
	}

	res = make([]dto.LinkedService, 0, len(page.Items))
	for _, svc := range page.Items {
		res = append(res, dto.LinkedService{
			ID:    svc.ID.String(),
			Name:  svc.Name,
			Price: string(svc.Price),
		})
	}

	return res, nil
}

// PreviewForm applies one optional field edit and returns the resulting form state.
func (s *serviceImpl) PreviewForm(_ context.Context, req dto.FormRequest) (res dto.FormResponse) {
	form := req.Form()

	if req.Field != "" {
		form.SetField(req.Field, req.Value)
	}

	if req.Validate {
		form.ValidateForm()
	}

	res.FromForm(form)

	return res
}

// EditForm loads an offer into a fresh form for editing.
func (s *serviceImpl) EditForm(ctx context.Context, id string, requireService bool) (res dto.FormResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".offer.EditForm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	offer, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromForm(model.FormFromOffer(offer, requireService))

	return res, nil
}
