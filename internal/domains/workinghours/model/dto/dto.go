package dto

import (
	"salondash/internal/domains/workinghours/model"
	"salondash/shared/format"
	"time"
)

// closedLabel is shown for a closed day.
const closedLabel = "Closed"

type DayRequest struct {
	DayOfWeek  int    `json:"day_of_week" validate:"gte=0,lte=6"`
	IsClosed   bool   `json:"is_closed"`
	OpenTime   string `json:"open_time"`
	CloseTime  string `json:"close_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

type UpdateWorkingHoursRequest struct {
	Days []DayRequest `json:"working_hours" validate:"required,min=1,max=7,dive"`
}

func (u *UpdateWorkingHoursRequest) Week() model.Week {
	week := make(model.Week, 0, len(u.Days))
	for _, d := range u.Days {
		day := model.Day(d)
		if day.IsClosed {
			day.OpenTime, day.CloseTime, day.BreakStart, day.BreakEnd = "", "", "", ""
		}

		week = append(week, day)
	}

	week.Sort()

	return week
}

func ToBody(week model.Week) map[string]any {
	return map[string]any{model.PayloadKey: week}
}

type DayResponse struct {
	DayOfWeek  int    `json:"day_of_week"`
	Name       string `json:"name"`
	IsClosed   bool   `json:"is_closed"`
	OpenTime   string `json:"open_time,omitempty"`
	CloseTime  string `json:"close_time,omitempty"`
	BreakStart string `json:"break_start,omitempty"`
	BreakEnd   string `json:"break_end,omitempty"`
	Hours      string `json:"hours"`
	Break      string `json:"break,omitempty"`
}

func (d *DayResponse) FromModel(m model.Day, f *format.Formatter) {
	d.DayOfWeek = m.DayOfWeek
	d.Name = time.Weekday(m.DayOfWeek).String()
	d.IsClosed = m.IsClosed
	d.OpenTime = m.OpenTime
	d.CloseTime = m.CloseTime
	d.BreakStart = m.BreakStart
	d.BreakEnd = m.BreakEnd

	if m.IsClosed {
		d.Hours = closedLabel
		return
	}

	d.Hours = f.Clock(m.OpenTime) + " - " + f.Clock(m.CloseTime)
	if m.BreakStart != "" && m.BreakEnd != "" {
		d.Break = f.Clock(m.BreakStart) + " - " + f.Clock(m.BreakEnd)
	}
}

type WorkingHoursResponse struct {
	Days []DayResponse `json:"working_hours"`
}

func (w *WorkingHoursResponse) FromModel(week model.Week, f *format.Formatter) {
	w.Days = make([]DayResponse, 0, len(week))
	for _, day := range week {
		var res DayResponse
		res.FromModel(day, f)
		w.Days = append(w.Days, res)
	}
}
