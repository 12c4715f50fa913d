package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"salondash/infras/otel/mocks"
	pricingMocks "salondash/internal/domains/pricing/mocks"
	"salondash/internal/domains/pricing/model"
	"salondash/internal/domains/pricing/model/dto"
	"salondash/internal/domains/pricing/service"
	gDto "salondash/shared/dto"
	"salondash/shared/format"
	"salondash/shared/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	sections *pricingMocks.MockSection
	services *pricingMocks.MockService
	slots    *pricingMocks.MockSlot
	svc      service.Pricing
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		sections: pricingMocks.NewMockSection(ctrl),
		services: pricingMocks.NewMockService(ctrl),
		slots:    pricingMocks.NewMockSlot(ctrl),
	}
	f.svc = service.New(f.sections, f.services, f.slots, format.New("en-US", "USD"), mocks.NewOtel())

	return f
}

func decode[T any](t *testing.T, raw string) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal([]byte(raw), &out))

	return out
}

func TestPricingService_Catalog(t *testing.T) {
	f := newFixture(t)

	f.sections.EXPECT().List(gomock.Any(), gDto.QueryParams{Page: 1, Limit: 100}, gomock.Any()).Return(repository.Page[model.Section]{
		Items: []model.Section{
			decode[model.Section](t, `{"id":1,"name":"Hair"}`),
			decode[model.Section](t, `{"id":2,"name":"Nails"}`),
		},
	}, nil)
	f.services.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.Page[model.Service]{
		Items: []model.Service{
			decode[model.Service](t, `{"id":10,"section_id":1,"name":"Cut","price":"30","duration_minutes":45}`),
			decode[model.Service](t, `{"id":11,"section_id":1,"name":"Colour","price":"80","duration_minutes":120}`),
			decode[model.Service](t, `{"id":12,"section_id":9,"name":"Orphan","price":"5"}`),
		},
	}, nil)

	res, err := f.svc.Catalog(context.Background())

	require.NoError(t, err)
	require.Len(t, res.Sections, 2)
	assert.Len(t, res.Sections[0].Services, 2)
	assert.Empty(t, res.Sections[1].Services)
	require.Len(t, res.Unassigned, 1)
	assert.Equal(t, "Orphan", res.Unassigned[0].Name)
	assert.Equal(t, "$30.00", res.Sections[0].Services[0].PriceDisplay)
	assert.Equal(t, "2h", res.Sections[0].Services[1].Duration)
}

func TestPricingService_CatalogSectionFailure(t *testing.T) {
	f := newFixture(t)
	f.sections.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.Page[model.Section]{}, errors.New("down"))

	_, err := f.svc.Catalog(context.Background())

	assert.Error(t, err)
}

func TestPricingService_CreateService(t *testing.T) {
	f := newFixture(t)
	active := true

	f.services.EXPECT().
		Create(gomock.Any(), map[string]any{
			"section_id":       "1",
			"name":             "Cut",
			"price":            "30.00",
			"duration_minutes": 45,
			"features":         []string{"Wash"},
			"is_active":        true,
		}).
		Return(&model.Service{ID: "10", Name: "Cut", Price: "30.00", DurationMinutes: 45}, nil)

	res, err := f.svc.CreateService(context.Background(), dto.CreateServiceRequest{
		SectionID:       "1",
		Name:            "Cut",
		Price:           "30.00",
		DurationMinutes: 45,
		Features:        []string{"Wash"},
		IsActive:        &active,
	})

	require.NoError(t, err)
	assert.Equal(t, "10", res.ID)
	assert.Equal(t, []string{}, res.Features)
}

func TestPricingService_Slots(t *testing.T) {
	f := newFixture(t)

	f.slots.EXPECT().List(gomock.Any(), "5").Return([]model.Slot{{ID: "1", ServiceID: "5", SlotTime: "09:30:00"}}, nil)
	f.slots.EXPECT().Delete(gomock.Any(), "5", "1").Return(nil)

	slots, err := f.svc.GetSlots(context.Background(), "5")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "9:30 AM", slots[0].SlotTimeDisplay)

	assert.NoError(t, f.svc.DeleteSlot(context.Background(), "5", "1"))
}
