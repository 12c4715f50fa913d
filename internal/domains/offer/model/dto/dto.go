package dto

import (
	"encoding/json"
	"salondash/internal/domains/offer/model"
	"salondash/shared/dto"
	"salondash/shared/format"
	"strconv"
	"time"
)

const EmptyMessage = "No offers yet"

// OfferRequest is the submitted offer form. Decimal fields stay strings until validated.
type OfferRequest struct {
	Title              string `json:"title"               validate:"omitempty,max=150"`
	Description        string `json:"description"         validate:"omitempty,max=2000"`
	Category           string `json:"category"            validate:"omitempty,max=100"`
	ServiceID          string `json:"service_id"`
	DiscountPercentage string `json:"discount_percentage"`
	DiscountAmount     string `json:"discount_amount"`
	OriginalPrice      string `json:"original_price"`
	FinalPrice         string `json:"final_price"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	MaxUses            *int   `json:"max_uses"`
	IsActive           *bool  `json:"is_active"`
	RequireService     bool   `json:"require_service"`
}

// Form loads the request into an offer form. A final price sent by the client counts as touched;
// otherwise it is derived.
func (r *OfferRequest) Form() *model.Form {
	values := map[string]string{
		model.FieldTitle:              r.Title,
		model.FieldDescription:        r.Description,
		model.FieldCategory:           r.Category,
		model.FieldServiceID:          r.ServiceID,
		model.FieldDiscountPercentage: r.DiscountPercentage,
		model.FieldDiscountAmount:     r.DiscountAmount,
		model.FieldOriginalPrice:      r.OriginalPrice,
		model.FieldFinalPrice:         r.FinalPrice,
		model.FieldStartDate:          r.StartDate,
		model.FieldEndDate:            r.EndDate,
	}

	if r.MaxUses != nil {
		values[model.FieldMaxUses] = strconv.Itoa(*r.MaxUses)
	}

	if r.IsActive != nil {
		values[model.FieldIsActive] = strconv.FormatBool(*r.IsActive)
	}

	form := model.NewForm(values, r.RequireService)
	if form.Value(model.FieldFinalPrice) != "" {
		form.Touched[model.FieldFinalPrice] = true
	} else if derived, ok := form.DeriveFinalPrice(); ok {
		form.Values[model.FieldFinalPrice] = string(derived)
	}

	return form
}

// ToBody renders a validated form as the backend payload. Numbers go out as JSON numbers and
// blank fields are left out.
func ToBody(form *model.Form) map[string]any {
	body := map[string]any{}

	for _, field := range []string{model.FieldTitle, model.FieldDescription, model.FieldCategory, model.FieldStartDate, model.FieldEndDate} {
		if v := form.Value(field); v != "" {
			body[field] = v
		}
	}

	for _, field := range []string{model.FieldServiceID, model.FieldDiscountPercentage, model.FieldDiscountAmount, model.FieldOriginalPrice, model.FieldFinalPrice, model.FieldMaxUses} {
		if v := form.Value(field); v != "" {
			body[field] = number(v)
		}
	}

	if v, err := strconv.ParseBool(form.Value(model.FieldIsActive)); err == nil {
		body[model.FieldIsActive] = v
	}

	return body
}

// number keeps numeric text as a JSON number and anything else, such as a uuid, as a string.
func number(v string) any {
	if _, err := strconv.ParseFloat(v, 64); err != nil {
		return v
	}

	return json.Number(v)
}

// FormRequest drives the form preview: the current values plus, optionally, one field edit.
type FormRequest struct {
	Values         map[string]string `json:"values"`
	Touched        map[string]bool   `json:"touched"`
	RequireService bool              `json:"require_service"`
	Field          string            `json:"field" validate:"omitempty,max=50"`
	Value          string            `json:"value"`
	Validate       bool              `json:"validate"`
}

func (r *FormRequest) Form() *model.Form {
	form := model.NewForm(r.Values, r.RequireService)
	for field, touched := range r.Touched {
		if touched {
			form.Touched[field] = true
		}
	}

	return form
}

type FormResponse struct {
	Values  map[string]string `json:"values"`
	Touched map[string]bool   `json:"touched"`
	Errors  map[string]string `json:"errors"`
	Valid   bool              `json:"valid"`
}

func (f *FormResponse) FromForm(form *model.Form) {
	f.Values = form.Values
	f.Touched = form.Touched
	f.Errors = form.Errors
	f.Valid = form.Valid()
}

type OfferResponse struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description,omitempty"`
	Category           string  `json:"category,omitempty"`
	ServiceID          string  `json:"service_id,omitempty"`
	DiscountPercentage string  `json:"discount_percentage,omitempty"`
	DiscountAmount     string  `json:"discount_amount,omitempty"`
	OriginalPrice      string  `json:"original_price,omitempty"`
	FinalPrice         string  `json:"final_price,omitempty"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	MaxUses            *int    `json:"max_uses"`
	UsedCount          int     `json:"used_count"`
	IsActive           bool    `json:"is_active"`
	Status             string  `json:"status"`
	Display            Display `json:"display"`
}

// Display holds the locale formatted card fields.
type Display struct {
	Discount      string `json:"discount"`
	OriginalPrice string `json:"original_price,omitempty"`
	FinalPrice    string `json:"final_price,omitempty"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Usage         string `json:"usage"`
}

func (o *OfferResponse) FromModel(m model.Offer, f *format.Formatter, now time.Time) {
	o.ID = m.ID.String()
	o.Title = m.Title
	o.Description = m.Description
	o.Category = m.Category
	o.ServiceID = m.ServiceID.String()
	o.DiscountPercentage = string(m.DiscountPercentage)
	o.DiscountAmount = string(m.DiscountAmount)
	o.OriginalPrice = string(m.OriginalPrice)
	o.FinalPrice = string(m.FinalPrice)
	o.StartDate = m.StartDate
	o.EndDate = m.EndDate
	o.MaxUses = m.MaxUses
	o.UsedCount = m.UsedCount
	o.IsActive = m.IsActive
	o.Status = m.Status(now)
	o.Display = Display{
		Discount:      discountLabel(m, f),
		OriginalPrice: f.MoneyString(string(m.OriginalPrice)),
		FinalPrice:    f.MoneyString(string(m.FinalPrice)),
		StartDate:     f.Date(m.StartDate),
		EndDate:       f.Date(m.EndDate),
		Usage:         usageLabel(m),
	}
}

func discountLabel(m model.Offer, f *format.Formatter) string {
	switch {
	case m.DiscountPercentage != "":
		return strconv.FormatFloat(m.DiscountPercentage.Float(), 'f', -1, 64) + "%"
	case m.DiscountAmount != "":
		return f.MoneyString(string(m.DiscountAmount)) + " off"
	default:
		return ""
	}
}

func usageLabel(m model.Offer) string {
	if m.MaxUses == nil {
		return strconv.Itoa(m.UsedCount) + " used"
	}

	return strconv.Itoa(m.UsedCount) + " / " + strconv.Itoa(*m.MaxUses)
}

type GetOffersResponse struct {
	Offers       []OfferResponse `json:"offers"`
	Pagination   dto.Pagination  `json:"pagination"`
	Empty        bool            `json:"empty"`
	EmptyMessage string          `json:"empty_message,omitempty"`
}

// LinkedService is one entry of the service picker on the offer form.
type LinkedService struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}
