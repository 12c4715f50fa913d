package dto

import (
	"salondash/internal/domains/pricing/model"
	"salondash/shared"
	gDto "salondash/shared/dto"
	"salondash/shared/format"
)

type CreateSectionRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	SortOrder   int    `json:"sort_order"  validate:"omitempty,gte=0"`
	IsActive    *bool  `json:"is_active"`
}

func (c *CreateSectionRequest) ToBody() map[string]any {
	return shared.TransformFields(c)
}

type UpdateSectionRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	SortOrder   *int    `json:"sort_order"  validate:"omitempty,gte=0"`
	IsActive    *bool   `json:"is_active"`
}

func (u *UpdateSectionRequest) ToBody() map[string]any {
	return shared.TransformFields(u)
}

type CreateServiceRequest struct {
	SectionID       string   `json:"section_id"       validate:"required"`
	Name            string   `json:"name"             validate:"required,max=100"`
	Description     string   `json:"description"      validate:"omitempty,max=1000"`
	Price           string   `json:"price"            validate:"required,numeric"`
	DurationMinutes int      `json:"duration_minutes" validate:"required,gt=0"`
	Features        []string `json:"features"         validate:"omitempty,dive,max=200"`
	IsActive        *bool    `json:"is_active"`
}

func (c *CreateServiceRequest) ToBody() map[string]any {
	return shared.TransformFields(c)
}

type UpdateServiceRequest struct {
	SectionID       *string   `json:"section_id"`
	Name            *string   `json:"name"             validate:"omitempty,min=1,max=100"`
	Description     *string   `json:"description"      validate:"omitempty,max=1000"`
	Price           *string   `json:"price"            validate:"omitempty,numeric"`
	DurationMinutes *int      `json:"duration_minutes" validate:"omitempty,gt=0"`
	Features        *[]string `json:"features"`
	IsActive        *bool     `json:"is_active"`
}

func (u *UpdateServiceRequest) ToBody() map[string]any {
	return shared.TransformFields(u)
}

type CreateSlotRequest struct {
	SlotTime        string `json:"slot_time"        validate:"required,clock"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,gt=0"`
	IsActive        *bool  `json:"is_active"`
}

func (c *CreateSlotRequest) ToBody() map[string]any {
	return shared.TransformFields(c)
}

type UpdateSlotRequest struct {
	SlotTime        *string `json:"slot_time"        validate:"omitempty,clock"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,gt=0"`
	IsActive        *bool   `json:"is_active"`
}

func (u *UpdateSlotRequest) ToBody() map[string]any {
	return shared.TransformFields(u)
}

type SectionResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
}

func (s *SectionResponse) FromModel(m model.Section) {
	s.ID = m.ID.String()
	s.Name = m.Name
	s.Description = m.Description
	s.SortOrder = m.SortOrder
	s.IsActive = m.IsActive
}

type ServiceResponse struct {
	ID              string   `json:"id"`
	SectionID       string   `json:"section_id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Price           string   `json:"price"`
	PriceDisplay    string   `json:"price_display"`
	DurationMinutes int      `json:"duration_minutes"`
	Duration        string   `json:"duration"`
	Features        []string `json:"features"`
	IsActive        bool     `json:"is_active"`
}

func (s *ServiceResponse) FromModel(m model.Service, f *format.Formatter) {
	s.ID = m.ID.String()
	s.SectionID = m.SectionID.String()
	s.Name = m.Name
	s.Description = m.Description
	s.Price = string(m.Price)
	s.PriceDisplay = f.MoneyString(string(m.Price))
	s.DurationMinutes = m.DurationMinutes
	s.Duration = format.Duration(m.DurationMinutes)
	s.Features = m.Features
	if s.Features == nil {
		s.Features = []string{}
	}
	s.IsActive = m.IsActive
}

type SlotResponse struct {
	ID              string `json:"id"`
	ServiceID       string `json:"service_id"`
	SlotTime        string `json:"slot_time"`
	SlotTimeDisplay string `json:"slot_time_display"`
	DurationMinutes int    `json:"duration_minutes"`
	IsActive        bool   `json:"is_active"`
}

func (s *SlotResponse) FromModel(m model.Slot, f *format.Formatter) {
	s.ID = m.ID.String()
	s.ServiceID = m.ServiceID.String()
	s.SlotTime = m.SlotTime
	s.SlotTimeDisplay = f.Clock(m.SlotTime)
	s.DurationMinutes = m.DurationMinutes
	s.IsActive = m.IsActive
}

type GetSectionsResponse struct {
	Sections   []SectionResponse `json:"sections"`
	Pagination gDto.Pagination   `json:"pagination"`
}

type GetServicesResponse struct {
	Services   []ServiceResponse `json:"services"`
	Pagination gDto.Pagination   `json:"pagination"`
}

// CatalogSection is one section of the pricing page with its services.
type CatalogSection struct {
	SectionResponse
	Services []ServiceResponse `json:"services"`
}

type CatalogResponse struct {
	Sections   []CatalogSection  `json:"sections"`
	Unassigned []ServiceResponse `json:"unassigned"`
}
