package model

import (
	"encoding/json"
	"maps"
	"salondash/shared/employee"
	"salondash/shared/model"
)

const (
	EntityName = "home service booking"
	Path       = "/api/owner/home-service-bookings"

	PayloadKeyList         = "home_service_bookings"
	PayloadKeyListFallback = "bookings"
	PayloadKey             = "booking"

	SegmentStats    = "stats"
	SegmentOverview = "overview"

	ActionArchive   = "archive"
	ActionUnarchive = "unarchive"

	FieldServicePrice = "service_price"
	FieldTravelFee    = "travel_fee"
	FieldTotalPrice   = "total_price"

	EmployeeFallback = "Unassigned"
)

// Statuses a home visit can take. There is no no_show for home visits.
var Statuses = []string{"pending", "confirmed", "completed", "cancelled"}

type HomeService struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type Booking struct {
	ID                  model.ID       `json:"id"`
	CustomerName        string         `json:"customer_name"`
	CustomerPhone       string         `json:"customer_phone"`
	CustomerEmail       string         `json:"customer_email"`
	CustomerArea        string         `json:"customer_area"`
	CustomerAddress     string         `json:"customer_address"`
	BookingDate         string         `json:"booking_date"`
	BookingTime         string         `json:"booking_time"`
	DurationMinutes     int            `json:"duration_minutes"`
	ServicePrice        model.Money    `json:"service_price"`
	TravelFee           model.Money    `json:"travel_fee"`
	TotalPrice          model.Money    `json:"total_price"`
	SpecialRequirements string         `json:"special_requirements"`
	Status              string         `json:"status"`
	Archived            bool           `json:"archived"`
	HomeServices        *HomeService   `json:"home_services,omitempty"`
	CreatedAt           string         `json:"created_at,omitempty"`
	Raw                 map[string]any `json:"-"`
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

func (b Booking) ServiceName() string {
	if b.HomeServices == nil {
		return ""
	}

	return b.HomeServices.Name
}

func (b Booking) ServiceCategory() string {
	if b.HomeServices == nil {
		return ""
	}

	return b.HomeServices.Category
}

func (b Booking) EmployeeName() string {
	return employee.Resolve(b.Raw, EmployeeFallback)
}

// Total is service price plus travel fee with two decimals.
func (b Booking) Total() model.Money {
	return model.Sum(b.ServicePrice, b.TravelFee)
}
