package dto

import (
	"salondash/internal/dashboard"
	"salondash/internal/domains/booking/model"
	"salondash/shared"
	"salondash/shared/format"
)

const EmptyMessage = "No bookings match the current filters"

type CreateBookingRequest struct {
	CustomerName    string `json:"customer_name"    validate:"required,max=100"`
	CustomerPhone   string `json:"customer_phone"   validate:"required,max=30"`
	CustomerEmail   string `json:"customer_email"   validate:"omitempty,email,max=100"`
	CustomerNotes   string `json:"customer_notes"   validate:"omitempty,max=1000"`
	ServiceID       string `json:"service_id"       validate:"omitempty"`
	EmployeeID      string `json:"employee_id"      validate:"omitempty"`
	BookingDate     string `json:"booking_date"     validate:"required,date"`
	BookingTime     string `json:"booking_time"     validate:"required,clock"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,gt=0"`
	TotalPrice      string `json:"total_price"      validate:"omitempty,numeric"`
	Status          string `json:"status"           validate:"omitempty,oneof=pending confirmed completed cancelled no_show"`
}

func (c *CreateBookingRequest) ToBody() map[string]any {
	return shared.TransformFields(c)
}

type UpdateBookingRequest struct {
	CustomerName    *string `json:"customer_name"    validate:"omitempty,min=1,max=100"`
	CustomerPhone   *string `json:"customer_phone"   validate:"omitempty,max=30"`
	CustomerEmail   *string `json:"customer_email"   validate:"omitempty,email,max=100"`
	CustomerNotes   *string `json:"customer_notes"   validate:"omitempty,max=1000"`
	ServiceID       *string `json:"service_id"`
	EmployeeID      *string `json:"employee_id"`
	BookingDate     *string `json:"booking_date"     validate:"omitempty,date"`
	BookingTime     *string `json:"booking_time"     validate:"omitempty,clock"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,gt=0"`
	TotalPrice      *string `json:"total_price"      validate:"omitempty,numeric"`
	Status          *string `json:"status"           validate:"omitempty,oneof=pending confirmed completed cancelled no_show"`
}

func (u *UpdateBookingRequest) ToBody() map[string]any {
	return shared.TransformFields(u)
}

// BookingResponse is one grid row.
type BookingResponse struct {
	ID              string            `json:"id"`
	CustomerName    string            `json:"customer_name"`
	CustomerPhone   string            `json:"customer_phone"`
	CustomerEmail   string            `json:"customer_email,omitempty"`
	CustomerNotes   string            `json:"customer_notes,omitempty"`
	BookingDate     string            `json:"booking_date"`
	BookingTime     string            `json:"booking_time"`
	DurationMinutes int               `json:"duration_minutes"`
	TotalPrice      string            `json:"total_price"`
	Status          string            `json:"status"`
	StatusColor     string            `json:"status_color"`
	Archived        bool              `json:"archived"`
	ServiceName     string            `json:"service_name,omitempty"`
	EmployeeName    string            `json:"employee_name"`
	Actions         dashboard.Actions `json:"actions"`
}

func (b *BookingResponse) FromModel(m model.Booking) {
	b.ID = m.Key()
	b.CustomerName = m.CustomerName
	b.CustomerPhone = m.CustomerPhone
	b.CustomerEmail = m.CustomerEmail
	b.CustomerNotes = m.CustomerNotes
	b.BookingDate = m.Day()
	b.BookingTime = m.BookingTime
	b.DurationMinutes = m.DurationMinutes
	b.TotalPrice = string(m.TotalPrice)
	b.Status = m.Status
	b.StatusColor = dashboard.StatusColor(m.Status)
	b.Archived = m.Archived
	b.ServiceName = m.ServiceName()
	b.EmployeeName = m.EmployeeName()
	b.Actions = dashboard.ActionsFor(m.Status, m.Archived)
}

func RowFromModel(m model.Booking) BookingResponse {
	var row BookingResponse
	row.FromModel(m)

	return row
}

// Display holds the locale formatted fields of the details modal.
type Display struct {
	Date       string `json:"date"`
	Time       string `json:"time"`
	Duration   string `json:"duration"`
	TotalPrice string `json:"total_price"`
}

type BookingDetailsResponse struct {
	BookingResponse
	Display Display `json:"display"`
}

func (d *BookingDetailsResponse) FromModel(m model.Booking, f *format.Formatter) {
	d.BookingResponse.FromModel(m)
	d.Display = Display{
		Date:       f.Date(m.Day()),
		Time:       f.Clock(m.BookingTime),
		Duration:   format.Duration(m.DurationMinutes),
		TotalPrice: f.MoneyString(string(m.TotalPrice)),
	}
}

type DashboardResponse = dashboard.View[BookingResponse]

func NewDashboardResponse(state dashboard.State[model.Booking], skeletonRows int) DashboardResponse {
	return dashboard.NewView(state, RowFromModel, skeletonRows, EmptyMessage)
}
