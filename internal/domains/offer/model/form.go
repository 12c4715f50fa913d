package model

import (
	"maps"
	"math"
	"salondash/shared/model"
	"strconv"
	"strings"
)

const (
	FieldTitle              = "title"
	FieldDescription        = "description"
	FieldCategory           = "category"
	FieldServiceID          = "service_id"
	FieldDiscountPercentage = "discount_percentage"
	FieldDiscountAmount     = "discount_amount"
	FieldOriginalPrice      = "original_price"
	FieldFinalPrice         = "final_price"
	FieldStartDate          = "start_date"
	FieldEndDate            = "end_date"
	FieldMaxUses            = "max_uses"
	FieldIsActive           = "is_active"
)

// FormFields is the order fields are validated and reported in.
var FormFields = []string{
	FieldTitle,
	FieldDescription,
	FieldCategory,
	FieldServiceID,
	FieldDiscountPercentage,
	FieldDiscountAmount,
	FieldOriginalPrice,
	FieldFinalPrice,
	FieldStartDate,
	FieldEndDate,
	FieldMaxUses,
}

const (
	MessageTitleRequired     = "Title is required"
	MessageStartRequired     = "Start date is required"
	MessageEndRequired       = "End date is required"
	MessageDateInvalid       = "Enter a valid date"
	MessageEndBeforeStart    = "End date must be on or after the start date"
	MessagePercentageRange   = "Percentage must be between 0 and 100"
	MessageAmountNegative    = "Amount must be zero or more"
	MessageNumberInvalid     = "Enter a valid number"
	MessageDiscountExclusive = "Use either a percentage or an amount, not both"
	MessageServiceRequired   = "Select a service for this offer"
	MessageMaxUsesInvalid    = "Max uses must be a whole number of zero or more"
)

// Form is the editable state of an offer: raw field values, which fields the owner has changed,
// and the current field errors.
type Form struct {
	Values         map[string]string `json:"values"`
	Touched        map[string]bool   `json:"touched"`
	Errors         map[string]string `json:"errors"`
	RequireService bool              `json:"require_service"`
}

func NewForm(values map[string]string, requireService bool) *Form {
	f := &Form{
		Values:         make(map[string]string, len(values)),
		Touched:        map[string]bool{},
		Errors:         map[string]string{},
		RequireService: requireService,
	}

	for k, v := range values {
		f.Values[k] = strings.TrimSpace(v)
	}

	return f
}

// FormFromOffer loads an existing offer for editing. Its stored final price counts as touched
// so opening the form does not rewrite it.
func FormFromOffer(o Offer, requireService bool) *Form {
	values := map[string]string{
		FieldTitle:              o.Title,
		FieldDescription:        o.Description,
		FieldCategory:           o.Category,
		FieldServiceID:          o.ServiceID.String(),
		FieldDiscountPercentage: string(o.DiscountPercentage),
		FieldDiscountAmount:     string(o.DiscountAmount),
		FieldOriginalPrice:      string(o.OriginalPrice),
		FieldFinalPrice:         string(o.FinalPrice),
		FieldStartDate:          o.StartDate,
		FieldEndDate:            o.EndDate,
		FieldIsActive:           strconv.FormatBool(o.IsActive),
	}

	if o.MaxUses != nil {
		values[FieldMaxUses] = strconv.Itoa(*o.MaxUses)
	}

	f := NewForm(values, requireService)
	if o.FinalPrice != "" {
		f.Touched[FieldFinalPrice] = true
	}

	return f
}

func (f *Form) Value(name string) string {
	return f.Values[name]
}

// SetField stores one value, marks it touched and refreshes the affected errors. Until the
// final price has been touched it follows the original price and discount.
func (f *Form) SetField(name, value string) {
	f.Values[name] = strings.TrimSpace(value)
	f.Touched[name] = true

	if name != FieldFinalPrice && !f.Touched[FieldFinalPrice] {
		if derived, ok := f.DeriveFinalPrice(); ok {
			f.Values[FieldFinalPrice] = string(derived)
		}
	}

	for _, field := range dependents(name) {
		f.setError(field, f.ValidateField(field))
	}
}

// DeriveFinalPrice applies whichever discount is set to the original price. The result never
// drops below zero.
func (f *Form) DeriveFinalPrice() (model.Money, bool) {
	original, ok := model.Money(f.Value(FieldOriginalPrice)).Cents()
	if !ok {
		return "", false
	}

	final := original

	if pct, ok := parsePercentage(f.Value(FieldDiscountPercentage)); ok {
		final = int64(math.Round(float64(original) * (100 - pct) / 100))
	} else if amount, ok := model.Money(f.Value(FieldDiscountAmount)).Cents(); ok {
		final = original - amount
	}

	return model.MoneyFromCents(max(final, 0)), true
}

// ValidateField returns the error message for one field, or "" when it is valid.
func (f *Form) ValidateField(name string) string {
	value := f.Value(name)

	switch name {
	case FieldTitle:
		if value == "" {
			return MessageTitleRequired
		}
	case FieldStartDate:
		if value == "" {
			return MessageStartRequired
		}

		if _, ok := ParseBoundary(value, false); !ok {
			return MessageDateInvalid
		}
	case FieldEndDate:
		if value == "" {
			return MessageEndRequired
		}

		end, ok := ParseBoundary(value, true)
		if !ok {
			return MessageDateInvalid
		}

		if start, ok := ParseBoundary(f.Value(FieldStartDate), false); ok && end.Before(start) {
			return MessageEndBeforeStart
		}
	case FieldDiscountPercentage:
		if value == "" {
			return ""
		}

		pct, ok := parsePercentage(value)
		if !ok {
			return MessageNumberInvalid
		}

		if pct < 0 || pct > 100 {
			return MessagePercentageRange
		}

		if f.Value(FieldDiscountAmount) != "" {
			return MessageDiscountExclusive
		}
	case FieldDiscountAmount:
		if msg := validateAmount(value); msg != "" {
			return msg
		}

		if value != "" && f.Value(FieldDiscountPercentage) != "" {
			return MessageDiscountExclusive
		}
	case FieldOriginalPrice, FieldFinalPrice:
		return validateAmount(value)
	case FieldServiceID:
		if f.RequireService && value == "" {
			return MessageServiceRequired
		}
	case FieldMaxUses:
		if value == "" {
			return ""
		}

		if n, err := strconv.Atoi(value); err != nil || n < 0 {
			return MessageMaxUsesInvalid
		}
	}

	return ""
}

// ValidateForm checks every field, records the errors on the form and returns a copy of them.
func (f *Form) ValidateForm() map[string]string {
	f.Errors = map[string]string{}
	for _, field := range FormFields {
		f.setError(field, f.ValidateField(field))
	}

	return maps.Clone(f.Errors)
}

func (f *Form) Valid() bool {
	return len(f.Errors) == 0
}

func (f *Form) setError(field, msg string) {
	if msg == "" {
		delete(f.Errors, field)
		return
	}

	f.Errors[field] = msg
}

// parsePercentage accepts finite numbers only; ParseFloat alone lets NaN and Inf through.
func parsePercentage(value string) (float64, bool) {
	pct, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, false
	}

	return pct, true
}

func validateAmount(value string) string {
	if value == "" {
		return ""
	}

	cents, ok := model.Money(value).Cents()
	if !ok {
		return MessageNumberInvalid
	}

	if cents < 0 {
		return MessageAmountNegative
	}

	return ""
}

// dependents lists the fields whose message can change when name changes.
func dependents(name string) []string {
	switch name {
	case FieldDiscountPercentage, FieldDiscountAmount:
		return []string{FieldDiscountPercentage, FieldDiscountAmount, FieldFinalPrice}
	case FieldOriginalPrice:
		return []string{FieldOriginalPrice, FieldFinalPrice}
	case FieldStartDate, FieldEndDate:
		return []string{FieldStartDate, FieldEndDate}
	default:
		return []string{name}
	}
}
