package dto

import (
	"salondash/internal/dashboard"
	"salondash/internal/domains/homeservice/model"
	"salondash/shared"
	"salondash/shared/format"
	gModel "salondash/shared/model"
)

const EmptyMessage = "No home service bookings match the current filters"

type CreateHomeServiceBookingRequest struct {
	CustomerName        string `json:"customer_name"        validate:"required,max=100"`
	CustomerPhone       string `json:"customer_phone"       validate:"required,max=30"`
	CustomerEmail       string `json:"customer_email"       validate:"omitempty,email,max=100"`
	CustomerArea        string `json:"customer_area"        validate:"required,max=100"`
	CustomerAddress     string `json:"customer_address"     validate:"required,max=300"`
	HomeServiceID       string `json:"home_service_id"      validate:"required"`
	BookingDate         string `json:"booking_date"         validate:"required,date"`
	BookingTime         string `json:"booking_time"         validate:"required,clock"`
	DurationMinutes     int    `json:"duration_minutes"     validate:"omitempty,gt=0"`
	ServicePrice        string `json:"service_price"        validate:"omitempty,numeric"`
	TravelFee           string `json:"travel_fee"           validate:"omitempty,numeric"`
	SpecialRequirements string `json:"special_requirements" validate:"omitempty,max=1000"`
	Status              string `json:"status"               validate:"omitempty,oneof=pending confirmed completed cancelled"`
}

// ToBody builds the POST body; total_price is derived when either price part is given.
func (c *CreateHomeServiceBookingRequest) ToBody() map[string]any {
	body := shared.TransformFields(c)

	if c.ServicePrice != "" || c.TravelFee != "" {
		body[model.FieldTotalPrice] = string(gModel.Sum(gModel.Money(c.ServicePrice), gModel.Money(c.TravelFee)))
	}

	return body
}

type UpdateHomeServiceBookingRequest struct {
	CustomerName        *string `json:"customer_name"        validate:"omitempty,min=1,max=100"`
	CustomerPhone       *string `json:"customer_phone"       validate:"omitempty,max=30"`
	CustomerEmail       *string `json:"customer_email"       validate:"omitempty,email,max=100"`
	CustomerArea        *string `json:"customer_area"        validate:"omitempty,max=100"`
	CustomerAddress     *string `json:"customer_address"     validate:"omitempty,max=300"`
	BookingDate         *string `json:"booking_date"         validate:"omitempty,date"`
	BookingTime         *string `json:"booking_time"         validate:"omitempty,clock"`
	DurationMinutes     *int    `json:"duration_minutes"     validate:"omitempty,gt=0"`
	ServicePrice        *string `json:"service_price"        validate:"omitempty,numeric"`
	TravelFee           *string `json:"travel_fee"           validate:"omitempty,numeric"`
	SpecialRequirements *string `json:"special_requirements" validate:"omitempty,max=1000"`
	Status              *string `json:"status"               validate:"omitempty,oneof=pending confirmed completed cancelled"`
}

func (u *UpdateHomeServiceBookingRequest) ToBody() map[string]any {
	return shared.TransformFields(u)
}

type HomeServiceBookingResponse struct {
	ID                  string            `json:"id"`
	CustomerName        string            `json:"customer_name"`
	CustomerPhone       string            `json:"customer_phone"`
	CustomerEmail       string            `json:"customer_email,omitempty"`
	CustomerArea        string            `json:"customer_area"`
	CustomerAddress     string            `json:"customer_address"`
	BookingDate         string            `json:"booking_date"`
	BookingTime         string            `json:"booking_time"`
	DurationMinutes     int               `json:"duration_minutes"`
	ServicePrice        string            `json:"service_price"`
	TravelFee           string            `json:"travel_fee"`
	TotalPrice          string            `json:"total_price"`
	SpecialRequirements string            `json:"special_requirements,omitempty"`
	Status              string            `json:"status"`
	StatusColor         string            `json:"status_color"`
	Archived            bool              `json:"archived"`
	ServiceName         string            `json:"service_name,omitempty"`
	ServiceCategory     string            `json:"service_category,omitempty"`
	EmployeeName        string            `json:"employee_name"`
	Actions             dashboard.Actions `json:"actions"`
}

func (h *HomeServiceBookingResponse) FromModel(m model.Booking) {
	h.ID = m.Key()
	h.CustomerName = m.CustomerName
	h.CustomerPhone = m.CustomerPhone
	h.CustomerEmail = m.CustomerEmail
	h.CustomerArea = m.CustomerArea
	h.CustomerAddress = m.CustomerAddress
	h.BookingDate = m.Day()
	h.BookingTime = m.BookingTime
	h.DurationMinutes = m.DurationMinutes
	h.ServicePrice = string(m.ServicePrice)
	h.TravelFee = string(m.TravelFee)
	h.TotalPrice = string(m.TotalPrice)
	h.SpecialRequirements = m.SpecialRequirements
	h.Status = m.Status
	h.StatusColor = dashboard.StatusColor(m.Status)
	h.Archived = m.Archived
	h.ServiceName = m.ServiceName()
	h.ServiceCategory = m.ServiceCategory()
	h.EmployeeName = m.EmployeeName()
	h.Actions = dashboard.ActionsFor(m.Status, m.Archived)
}

func RowFromModel(m model.Booking) HomeServiceBookingResponse {
	var row HomeServiceBookingResponse
	row.FromModel(m)

	return row
}

type Display struct {
	Date         string `json:"date"`
	Time         string `json:"time"`
	Duration     string `json:"duration"`
	ServicePrice string `json:"service_price"`
	TravelFee    string `json:"travel_fee"`
	TotalPrice   string `json:"total_price"`
}

type HomeServiceBookingDetailsResponse struct {
	HomeServiceBookingResponse
	Display Display `json:"display"`
}

func (d *HomeServiceBookingDetailsResponse) FromModel(m model.Booking, f *format.Formatter) {
	d.HomeServiceBookingResponse.FromModel(m)
	d.Display = Display{
		Date:         f.Date(m.Day()),
		Time:         f.Clock(m.BookingTime),
		Duration:     format.Duration(m.DurationMinutes),
		ServicePrice: f.MoneyString(string(m.ServicePrice)),
		TravelFee:    f.MoneyString(string(m.TravelFee)),
		TotalPrice:   f.MoneyString(string(m.TotalPrice)),
	}
}

type DashboardResponse = dashboard.View[HomeServiceBookingResponse]

func NewDashboardResponse(state dashboard.State[model.Booking], skeletonRows int) DashboardResponse {
	return dashboard.NewView(state, RowFromModel, skeletonRows, EmptyMessage)
}
