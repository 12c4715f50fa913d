package model

import (
	"encoding/json"
	"maps"
	"salondash/shared/employee"
	"salondash/shared/model"
)

const (
	EntityName = "booking"
	Path       = "/api/owner/bookings"

	PayloadKeyList = "bookings"
	PayloadKey     = "booking"

	SegmentStats        = "stats"
	SegmentOverview     = "overview"
	SegmentCalendar     = "calendar"
	SegmentAvailability = "availability"

	ActionArchive   = "archive"
	ActionUnarchive = "unarchive"

	FieldStatus          = "status"
	FieldIncludeArchived = "include_archived"

	EmployeeFallback = "Unassigned"
)

// Statuses a salon booking can take.
var Statuses = []string{"pending", "confirmed", "completed", "cancelled", "no_show"}

type Service struct {
	Name string `json:"name"`
}

// Booking is an in-salon appointment as the backend reports it. Raw keeps the full object for
// employee name resolution since the employee relation has no fixed shape.
type Booking struct {
	ID              model.ID       `json:"id"`
	CustomerName    string         `json:"customer_name"`
	CustomerPhone   string         `json:"customer_phone"`
	CustomerEmail   string         `json:"customer_email"`
	CustomerNotes   string         `json:"customer_notes"`
	BookingDate     string         `json:"booking_date"`
	BookingTime     string         `json:"booking_time"`
	DurationMinutes int            `json:"duration_minutes"`
	TotalPrice      model.Money    `json:"total_price"`
	Status          string         `json:"status"`
	Archived        bool           `json:"archived"`
	Services        *Service       `json:"services,omitempty"`
	CreatedAt       string         `json:"created_at,omitempty"`
	Raw             map[string]any `json:"-"`
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	type plain Booking

	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*b = Booking(p)
	b.Raw = raw

	return nil
}

func (b Booking) Key() string { return b.ID.String() }
func (b Booking) IsArchived() bool { return b.Archived }
func (b Booking) State() string { return b.Status }

// Day is the YYYY-MM-DD part of the booking date.
func (b Booking) Day() string {
	if len(b.BookingDate) > 10 {
		return b.BookingDate[:10]
	}

	return b.BookingDate
}

func (b Booking) WithArchived(archived bool) Booking {
	b.Archived = archived
	if b.Raw != nil {
		b.Raw = maps.Clone(b.Raw)
		b.Raw["archived"] = archived
	}

	return b
}

// ServiceName is the booked service, if the backend joined it.
func (b Booking) ServiceName() string {
	if b.Services == nil {
		return ""
	}

	return b.Services.Name
}

// EmployeeName resolves the assigned employee from the raw object.
func (b Booking) EmployeeName() string {
	return employee.Resolve(b.Raw, EmployeeFallback)
}
