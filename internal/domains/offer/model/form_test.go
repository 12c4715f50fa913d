package model_test

import (
	"salondash/internal/domains/offer/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validValues() map[string]string {
	return map[string]string{
		model.FieldTitle:         "Spring glow",
		model.FieldStartDate:     "2026-03-01",
		model.FieldEndDate:       "2026-03-31",
		model.FieldOriginalPrice: "100",
	}
}

func TestForm_DerivesFinalPrice(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		expected string
	}{
		{"percentage", model.FieldDiscountPercentage, "20", "80.00"},
		{"fractional percentage", model.FieldDiscountPercentage, "12.5", "87.50"},
		{"amount", model.FieldDiscountAmount, "15.50", "84.50"},
		{"amount above price floors at zero", model.FieldDiscountAmount, "150", "0.00"},
		{"NaN percentage keeps the price", model.FieldDiscountPercentage, "NaN", "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := model.NewForm(validValues(), false)

			form.SetField(tt.field, tt.value)

			assert.Equal(t, tt.expected, form.Value(model.FieldFinalPrice))
			assert.True(t, form.Touched[tt.field])
		})
	}
}

func TestForm_FollowsOriginalPrice(t *testing.T) {
	form := model.NewForm(validValues(), false)
	form.SetField(model.FieldDiscountPercentage, "10")
	assert.Equal(t, "90.00", form.Value(model.FieldFinalPrice))

	form.SetField(model.FieldOriginalPrice, "200")
	assert.Equal(t, "180.00", form.Value(model.FieldFinalPrice))
}

func TestForm_TouchedFinalPriceStopsDerivation(t *testing.T) {
	form := model.NewForm(validValues(), false)
	form.SetField(model.FieldDiscountPercentage, "20")
	form.SetField(model.FieldFinalPrice, "75")

	form.SetField(model.FieldDiscountPercentage, "50")
	form.SetField(model.FieldOriginalPrice, "300")

	assert.Equal(t, "75", form.Value(model.FieldFinalPrice))
}

func TestForm_ValidateField(t *testing.T) {
	tests := []struct {
		name     string
		patch    map[string]string
		require  bool
		field    string
		expected string
	}{
		{"title required", map[string]string{model.FieldTitle: " "}, false, model.FieldTitle, model.MessageTitleRequired},
		{"start required", map[string]string{model.FieldStartDate: ""}, false, model.FieldStartDate, model.MessageStartRequired},
		{"end required", map[string]string{model.FieldEndDate: ""}, false, model.FieldEndDate, model.MessageEndRequired},
		{"bad date", map[string]string{model.FieldStartDate: "someday"}, false, model.FieldStartDate, model.MessageDateInvalid},
		{"end before start", map[string]string{model.FieldEndDate: "2026-02-28"}, false, model.FieldEndDate, model.MessageEndBeforeStart},
		{"end on start day", map[string]string{model.FieldEndDate: "2026-03-01"}, false, model.FieldEndDate, ""},
		{"percentage above 100", map[string]string{model.FieldDiscountPercentage: "101"}, false, model.FieldDiscountPercentage, model.MessagePercentageRange},
		{"percentage below 0", map[string]string{model.FieldDiscountPercentage: "-1"}, false, model.FieldDiscountPercentage, model.MessagePercentageRange},
		{"percentage bounds", map[string]string{model.FieldDiscountPercentage: "100"}, false, model.FieldDiscountPercentage, ""},
		{"percentage not a number", map[string]string{model.FieldDiscountPercentage: "lots"}, false, model.FieldDiscountPercentage, model.MessageNumberInvalid},
		{"percentage NaN", map[string]string{model.FieldDiscountPercentage: "NaN"}, false, model.FieldDiscountPercentage, model.MessageNumberInvalid},
		{"percentage infinite", map[string]string{model.FieldDiscountPercentage: "-Inf"}, false, model.FieldDiscountPercentage, model.MessageNumberInvalid},
		{"negative amount", map[string]string{model.FieldDiscountAmount: "-5"}, false, model.FieldDiscountAmount, model.MessageAmountNegative},
		{"negative price", map[string]string{model.FieldOriginalPrice: "-1"}, false, model.FieldOriginalPrice, model.MessageAmountNegative},
		{"both discounts", map[string]string{model.FieldDiscountPercentage: "10", model.FieldDiscountAmount: "5"}, false, model.FieldDiscountAmount, model.MessageDiscountExclusive},
		{"service optional", nil, false, model.FieldServiceID, ""},
		{"service required when toggled", nil, true, model.FieldServiceID, model.MessageServiceRequired},
		{"max uses negative", map[string]string{model.FieldMaxUses: "-2"}, false, model.FieldMaxUses, model.MessageMaxUsesInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validValues()
			for k, v := range tt.patch {
				values[k] = v
			}

			form := model.NewForm(values, tt.require)

			assert.Equal(t, tt.expected, form.ValidateField(tt.field))
		})
	}
}

func TestForm_ValidateForm(t *testing.T) {
	form := model.NewForm(map[string]string{model.FieldDiscountPercentage: "10", model.FieldDiscountAmount: "5"}, true)

	errs := form.ValidateForm()

	assert.False(t, form.Valid())
	assert.Equal(t, map[string]string{
		model.FieldTitle:              model.MessageTitleRequired,
		model.FieldStartDate:          model.MessageStartRequired,
		model.FieldEndDate:            model.MessageEndRequired,
		model.FieldServiceID:          model.MessageServiceRequired,
		model.FieldDiscountPercentage: model.MessageDiscountExclusive,
		model.FieldDiscountAmount:     model.MessageDiscountExclusive,
	}, errs)

	assert.Empty(t, model.NewForm(validValues(), false).ValidateForm())
}

func TestForm_SetFieldClearsExclusiveError(t *testing.T) {
	form := model.NewForm(validValues(), false)
	form.SetField(model.FieldDiscountPercentage, "10")
	form.SetField(model.FieldDiscountAmount, "5")

	assert.Equal(t, model.MessageDiscountExclusive, form.Errors[model.FieldDiscountPercentage])

	form.SetField(model.FieldDiscountAmount, "")

	assert.Empty(t, form.Errors)
	assert.Equal(t, "90.00", form.Value(model.FieldFinalPrice))
}

func TestFormFromOffer(t *testing.T) {
	maxUses := 50
	form := model.FormFromOffer(model.Offer{
		Title:              "Spring glow",
		DiscountPercentage: "20",
		OriginalPrice:      "100",
		FinalPrice:         "79.99",
		StartDate:          "2026-03-01",
		EndDate:            "2026-03-31",
		MaxUses:            &maxUses,
		IsActive:           true,
	}, false)

	assert.Equal(t, "50", form.Value(model.FieldMaxUses))
	assert.Equal(t, "true", form.Value(model.FieldIsActive))
	assert.True(t, form.Touched[model.FieldFinalPrice])

	form.SetField(model.FieldDiscountPercentage, "30")
	assert.Equal(t, "79.99", form.Value(model.FieldFinalPrice))
}
