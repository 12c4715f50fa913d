package dto_test

import (
	"encoding/json"
	"salondash/internal/domains/offer/model"
	"salondash/internal/domains/offer/model/dto"
	"salondash/shared/format"
	"salondash/shared/timezone"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOfferRequest_Form(t *testing.T) {
	active := true
	req := dto.OfferRequest{
		Title:              "Spring glow",
		ServiceID:          "4",
		DiscountPercentage: "25",
		OriginalPrice:      "80",
		StartDate:          "2026-03-01",
		EndDate:            "2026-03-31",
		IsActive:           &active,
	}

	form := req.Form()

	assert.Equal(t, "60.00", form.Value(model.FieldFinalPrice))
	assert.False(t, form.Touched[model.FieldFinalPrice])
	assert.Empty(t, form.ValidateForm())

	body := dto.ToBody(form)
	assert.Equal(t, map[string]any{
		"title":               "Spring glow",
		"start_date":          "2026-03-01",
		"end_date":            "2026-03-31",
		"service_id":          json.Number("4"),
		"discount_percentage": json.Number("25"),
		"original_price":      json.Number("80"),
		"final_price":         json.Number("60.00"),
		"is_active":           true,
	}, body)

	raw, err := json.Marshal(body)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"final_price":60.00`)
}

func TestOfferRequest_FormKeepsSentFinalPrice(t *testing.T) {
	req := dto.OfferRequest{DiscountAmount: "10", OriginalPrice: "80", FinalPrice: "65"}

	form := req.Form()

	assert.Equal(t, "65", form.Value(model.FieldFinalPrice))
	assert.True(t, form.Touched[model.FieldFinalPrice])
}

func TestFormRequest_Form(t *testing.T) {
	req := dto.FormRequest{
		Values:  map[string]string{model.FieldOriginalPrice: "50", model.FieldFinalPrice: "45"},
		Touched: map[string]bool{model.FieldFinalPrice: true, model.FieldTitle: false},
	}

	form := req.Form()
	form.SetField(model.FieldDiscountAmount, "20")

	var res dto.FormResponse
	res.FromForm(form)

	assert.Equal(t, "45", res.Values[model.FieldFinalPrice])
	assert.Equal(t, map[string]bool{model.FieldFinalPrice: true, model.FieldDiscountAmount: true}, res.Touched)
	assert.True(t, res.Valid)
}

func TestOfferResponse_FromModel(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, timezone.GetLocation())
	maxUses := 10

	var res dto.OfferResponse
	res.FromModel(model.Offer{
		ID:                 "3",
		Title:              "Spring glow",
		DiscountPercentage: "20",
		OriginalPrice:      "100",
		FinalPrice:         "80",
		StartDate:          "2026-03-01",
		EndDate:            "2026-03-31",
		MaxUses:            &maxUses,
		UsedCount:          4,
		IsActive:           true,
	}, format.New("en-US", "USD"), now)

	assert.Equal(t, "3", res.ID)
	assert.Equal(t, model.StatusActive, res.Status)
	assert.Equal(t, "20%", res.Display.Discount)
	assert.Contains(t, res.Display.FinalPrice, "80.00")
	assert.Equal(t, "4 / 10", res.Display.Usage)
}

func TestOfferResponse_AmountDiscount(t *testing.T) {
	var res dto.OfferResponse
	res.FromModel(model.Offer{DiscountAmount: "15", UsedCount: 2}, format.New("en-US", "USD"), time.Now())

	assert.Equal(t, model.StatusInactive, res.Status)
	assert.Contains(t, res.Display.Discount, "15.00")
	assert.True(t, strings.HasSuffix(res.Display.Discount, " off"))
	assert.Equal(t, "2 used", res.Display.Usage)
}
