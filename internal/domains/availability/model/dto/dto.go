package dto

import (
	"net/url"
	"salondash/internal/domains/availability/model"
	"salondash/shared/format"
	"strconv"
)

// SlotsRequest asks for the free slots of one day, for exactly one of a salon service or a
// home service.
type SlotsRequest struct {
	Date            string `json:"date"             validate:"required,date"`
	ServiceID       string `json:"service_id"       validate:"required_without=HomeServiceID,excluded_with=HomeServiceID"`
	HomeServiceID   string `json:"home_service_id"  validate:"required_without=ServiceID,excluded_with=ServiceID"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,gt=0,lte=1440"`
	Type            string `json:"type"             validate:"omitempty,oneof=salon home"`
}

// FromQuery reads the request from URL query values.
func (r *SlotsRequest) FromQuery(q url.Values) {
	r.Date = q.Get(model.ParamDate)
	r.ServiceID = q.Get(model.ParamServiceID)
	r.HomeServiceID = q.Get(model.ParamHomeServiceID)
	r.Type = q.Get(model.ParamType)

	if v, err := strconv.Atoi(q.Get(model.ParamDurationMinutes)); err == nil {
		r.DurationMinutes = v
	}
}

// Query renders the upstream query. A missing type follows the kind of service asked for.
func (r *SlotsRequest) Query() url.Values {
	q := url.Values{}
	q.Set(model.ParamDate, r.Date)

	kind := r.Type

	if r.ServiceID != "" {
		q.Set(model.ParamServiceID, r.ServiceID)
		if kind == "" {
			kind = model.TypeSalon
		}
	}

	if r.HomeServiceID != "" {
		q.Set(model.ParamHomeServiceID, r.HomeServiceID)
		if kind == "" {
			kind = model.TypeHome
		}
	}

	if r.DurationMinutes > 0 {
		q.Set(model.ParamDurationMinutes, strconv.Itoa(r.DurationMinutes))
	}

	if kind != "" {
		q.Set(model.ParamType, kind)
	}

	return q
}

type SlotResponse struct {
	Time      string `json:"time"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

type SlotsResponse struct {
	Date      string         `json:"date"`
	Type      string         `json:"type"`
	Slots     []SlotResponse `json:"slots"`
	Available int            `json:"available"`
}

func (s *SlotsResponse) FromModels(req SlotsRequest, slots []model.Slot, f *format.Formatter) {
	s.Date = req.Date
	s.Type = req.Query().Get(model.ParamType)
	s.Slots = make([]SlotResponse, 0, len(slots))
	s.Available = 0

	for _, slot := range slots {
		s.Slots = append(s.Slots, SlotResponse{
			Time:      slot.Time,
			Label:     f.Clock(slot.Time),
			Available: slot.Available,
		})

		if slot.Available {
			s.Available++
		}
	}
}
