package service_test

import (
	"context"
	"net/http"
	"salondash/infras/otel/mocks"
	reviewMocks "salondash/internal/domains/review/mocks"
	"salondash/internal/domains/review/model"
	"salondash/internal/domains/review/model/dto"
	"salondash/internal/domains/review/service"
	gDto "salondash/shared/dto"
	"salondash/shared/failure"
	gModel "salondash/shared/model"
	"salondash/shared/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReviewService_GetReviews(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := reviewMocks.NewMockReview(ctrl)
	svc := service.New(repo, mocks.NewOtel())

	params := gDto.QueryParams{Page: 1, Limit: 10}
	repo.EXPECT().List(gomock.Any(), params, gDto.Filters(nil)).Return(repository.Page[model.Review]{
		Items:      []model.Review{{ID: "1", Rating: 4, Metadata: gModel.Attributes{"featured": "1"}}},
		Pagination: gDto.Pagination{Page: 1, Limit: 10, Total: 1, Pages: 1},
	}, nil)

	res, err := svc.GetReviews(context.Background(), params)

	require.NoError(t, err)
	require.Len(t, res.Reviews, 1)
	assert.True(t, res.Reviews[0].Featured)
	assert.Equal(t, 1, res.PageSummary.Featured)
}

func TestReviewService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := reviewMocks.NewMockReview(ctrl)
	svc := service.New(repo, mocks.NewOtel())

	featured := true
	req := dto.UpdateReviewRequest{Featured: &featured, Metadata: gModel.Attributes{"highlighted": false}}

	repo.EXPECT().Update(gomock.Any(), "7", map[string]any{
		"metadata": gModel.Attributes{"featured": true, "highlighted": true},
	}).Return(&model.Review{ID: "7", Metadata: gModel.Attributes{"featured": true, "highlighted": true}}, nil)

	res, err := svc.Update(context.Background(), "7", req)

	require.NoError(t, err)
	assert.True(t, res.Featured)
}

func TestReviewService_UpdateNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.New(reviewMocks.NewMockReview(ctrl), mocks.NewOtel())

	_, err := svc.Update(context.Background(), "7", dto.UpdateReviewRequest{})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestReviewService_UpdateFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := reviewMocks.NewMockReview(ctrl)
	svc := service.New(repo, mocks.NewOtel())

	visible := true
	repo.EXPECT().Update(gomock.Any(), "7", gomock.Any()).Return(nil, failure.Unauthorized("session expired"))

	_, err := svc.Update(context.Background(), "7", dto.UpdateReviewRequest{IsVisible: &visible})

	assert.True(t, failure.IsUnauthorized(err))
}
