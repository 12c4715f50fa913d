package service

import (
	"context"
	"salondash/infras/otel"
	"salondash/internal/domains/review/model/dto"
	"salondash/internal/domains/review/repository"
	"salondash/shared/constant"
	gDto "salondash/shared/dto"
	"salondash/shared/failure"

	"github.com/rs/zerolog/log"
)

type Review interface {
	GetReviews(ctx context.Context, params gDto.QueryParams) (dto.GetReviewsResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateReviewRequest) (dto.ReviewResponse, error)
}

type serviceImpl struct {
	repo repository.Review
	otel otel.Otel
}

func New(repo repository.Review, otel otel.Otel) Review {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetReviews(ctx context.Context, params gDto.QueryParams) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.GetReviews")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	page, err := s.repo.List(ctx, params, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, err
	}

	res.FromModels(page.Items, page.Pagination)

	return res, nil
}

// Update changes visibility and the featured flag of one review. Unset fields are not sent.
func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	body := req.ToBody()
	if len(body) == 0 {
		return res, failure.BadRequestFromString("nothing to update") //nolint:wrapcheck
	}

	updated, err := s.repo.Update(ctx, id, body)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update review")

		return res, err
	}

	if updated != nil {
		res.FromModel(*updated)
	}

	return res, nil
}
