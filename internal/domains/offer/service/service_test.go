package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"salondash/infras/otel/mocks"
	"salondash/internal/dashboard"
	offerMocks "salondash/internal/domains/offer/mocks"
	"salondash/internal/domains/offer/model"
	"salondash/internal/domains/offer/model/dto"
	"salondash/internal/domains/offer/service"
	pricingMocks "salondash/internal/domains/pricing/mocks"
	pricingModel "salondash/internal/domains/pricing/model"
	gDto "salondash/shared/dto"
	"salondash/shared/failure"
	"salondash/shared/format"
	"salondash/shared/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo     *offerMocks.MockOffer
	services *pricingMocks.MockService
	svc      service.Offer
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		repo:     offerMocks.NewMockOffer(ctrl),
		services: pricingMocks.NewMockService(ctrl),
	}
	f.svc = service.New(f.repo, f.services, format.New("en-US", "USD"), mocks.NewOtel())

	return f
}

func validRequest() dto.OfferRequest {
	return dto.OfferRequest{
		Title:              "Spring glow",
		DiscountPercentage: "20",
		OriginalPrice:      "100",
		StartDate:          "2999-03-01",
		EndDate:            "2999-03-31",
	}
}

func TestOfferService_GetOffers(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().List(gomock.Any(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.Filters{"status": "active"}).Return(repository.Page[model.Offer]{
		Items: []model.Offer{
			{ID: "1", Title: "Later", StartDate: "2999-01-01", EndDate: "2999-02-01", IsActive: true},
			{ID: "2", Title: "Over", StartDate: "2000-01-01", EndDate: "2000-02-01", IsActive: true},
			{ID: "3", Title: "Off", IsActive: false},
		},
		Pagination: gDto.Pagination{Page: 1, Limit: 10, Total: 3, Pages: 1},
	}, nil)

	res, err := f.svc.GetOffers(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.Filters{"status": "active"})

	require.NoError(t, err)
	require.Len(t, res.Offers, 3)
	assert.Equal(t, model.StatusScheduled, res.Offers[0].Status)
	assert.Equal(t, model.StatusExpired, res.Offers[1].Status)
	assert.Equal(t, model.StatusInactive, res.Offers[2].Status)
	assert.False(t, res.Empty)
}

func TestOfferService_GetOffersEmpty(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.Page[model.Offer]{Items: []model.Offer{}}, nil)

	res, err := f.svc.GetOffers(context.Background(), gDto.QueryParams{}, nil)

	require.NoError(t, err)
	assert.True(t, res.Empty)
	assert.Equal(t, dto.EmptyMessage, res.EmptyMessage)
}

func TestOfferService_Create(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Create(gomock.Any(), map[string]any{
		"title":               "Spring glow",
		"start_date":          "2999-03-01",
		"end_date":            "2999-03-31",
		"discount_percentage": json.Number("20"),
		"original_price":      json.Number("100"),
		"final_price":         json.Number("80.00"),
	}).Return(&model.Offer{ID: "9", Title: "Spring glow", FinalPrice: "80.00", StartDate: "2999-03-01", IsActive: true}, nil)

	res, err := f.svc.Create(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "9", res.ID)
	assert.Equal(t, model.StatusScheduled, res.Status)
}

func TestOfferService_CreateRejectsInvalidForm(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.DiscountAmount = "5"
	req.EndDate = "2999-02-01"

	_, err := f.svc.Create(context.Background(), req)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	fields := failure.GetFields(err)
	assert.Equal(t, model.MessageDiscountExclusive, fields[model.FieldDiscountAmount])
	assert.Equal(t, model.MessageEndBeforeStart, fields[model.FieldEndDate])
}

func TestOfferService_UpdateRequiresService(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.RequireService = true

	_, err := f.svc.Update(context.Background(), "9", req)

	require.Error(t, err)
	assert.Equal(t, model.MessageServiceRequired, failure.GetFields(err)[model.FieldServiceID])
}

func TestOfferService_UpdateUpstreamFailure(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Update(gomock.Any(), "9", gomock.Any()).Return(nil, failure.BadGateway("offer overlaps"))

	_, err := f.svc.Update(context.Background(), "9", validRequest())

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
}

func TestOfferService_Services(t *testing.T) {
	f := newFixture(t)

	f.services.EXPECT().List(gomock.Any(), gDto.QueryParams{Page: 1, Limit: 100}, gDto.Filters(nil)).Return(repository.Page[pricingModel.Service]{
		Items: []pricingModel.Service{{ID: "4", Name: "Cut", Price: "45.00"}},
	}, nil)

	res, err := f.svc.Services(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []dto.LinkedService{{ID: "4", Name: "Cut", Price: "45.00"}}, res)
}

func TestOfferService_PreviewForm(t *testing.T) {
	f := newFixture(t)

	res := f.svc.PreviewForm(context.Background(), dto.FormRequest{
		Values: map[string]string{model.FieldOriginalPrice: "60"},
		Field:  model.FieldDiscountPercentage,
		Value:  "50",
	})

	assert.Equal(t, "30.00", res.Values[model.FieldFinalPrice])
	assert.True(t, res.Valid)

	res = f.svc.PreviewForm(context.Background(), dto.FormRequest{Values: res.Values, Validate: true})

	assert.False(t, res.Valid)
	assert.Equal(t, model.MessageTitleRequired, res.Errors[model.FieldTitle])
}

func TestOfferService_EditForm(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), "9").Return(model.Offer{ID: "9", Title: "Spring glow", FinalPrice: "70"}, nil)

	res, err := f.svc.EditForm(context.Background(), "9", false)

	require.NoError(t, err)
	assert.Equal(t, "Spring glow", res.Values[model.FieldTitle])
	assert.True(t, res.Touched[model.FieldFinalPrice])
}

func TestOfferService_StatsAndCategories(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Stats(gomock.Any()).Return(dashboard.Stats{"active": 2.0}, nil)
	f.repo.EXPECT().Categories(gomock.Any()).Return([]string{"Hair"}, nil)

	stats, err := f.svc.Stats(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 2, stats["active"], 0)

	categories, err := f.svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Hair"}, categories)
}
