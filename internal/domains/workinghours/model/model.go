package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"salondash/shared/constant"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	EntityName = "working_hours"
	Path       = "/api/owner/working-hours"

	PayloadKey   = "working_hours"
	SegmentReset = "reset"

	FieldDayOfWeek  = "day_of_week"
	FieldOpenTime   = "open_time"
	FieldCloseTime  = "close_time"
	FieldBreakStart = "break_start"
	FieldBreakEnd   = "break_end"
)

const (
	MessageDayInvalid      = "Day must be between 0 (Sunday) and 6 (Saturday)"
	MessageDayDuplicate    = "Day is listed more than once"
	MessageTimeRequired    = "Time is required unless the day is closed"
	MessageTimeInvalid     = "Time must be in HH:MM format"
	MessageCloseAfterOpen  = "Closing time must be after opening time"
	MessageBreakIncomplete = "Set both break start and break end, or neither"
	MessageBreakOrder      = "Break must end after it starts"
	MessageBreakOutside    = "Break must fall inside opening hours"
)

// Day is the schedule of one weekday, 0 being Sunday.
type Day struct {
	DayOfWeek  int    `json:"day_of_week"`
	IsClosed   bool   `json:"is_closed"`
	OpenTime   string `json:"open_time"`
	CloseTime  string `json:"close_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

// Week is the weekly schedule. The backend sends it as a list or as an object keyed by weekday.
type Week []Day

func (w *Week) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*w = Week{}
		return nil
	}

	if len(data) > 0 && data[0] == '[' {
		var days []Day
		if err := json.Unmarshal(data, &days); err != nil {
			return fmt.Errorf("decode working hours: %w", err)
		}

		*w = days

		return nil
	}

	var byDay map[string]Day
	if err := json.Unmarshal(data, &byDay); err != nil {
		return fmt.Errorf("decode working hours: %w", err)
	}

	days := make([]Day, 0, len(byDay))
	for key, day := range byDay {
		if n, err := strconv.Atoi(key); err == nil {
			day.DayOfWeek = n
		}

		days = append(days, day)
	}

	*w = days
	w.Sort()

	return nil
}

func (w Week) Sort() {
	slices.SortFunc(w, func(a, b Day) int { return a.DayOfWeek - b.DayOfWeek })
}

// Validate checks every day and returns field messages keyed "<weekday>.<field>". An empty
// map means the week is valid.
func (w Week) Validate() map[string]string {
	errs := map[string]string{}
	seen := map[int]bool{}

	for _, day := range w {
		prefix := strconv.Itoa(day.DayOfWeek) + "."

		if day.DayOfWeek < 0 || day.DayOfWeek > 6 {
			errs[prefix+FieldDayOfWeek] = MessageDayInvalid
			continue
		}

		if seen[day.DayOfWeek] {
			errs[prefix+FieldDayOfWeek] = MessageDayDuplicate
			continue
		}

		seen[day.DayOfWeek] = true

		for field, msg := range day.Validate() {
			errs[prefix+field] = msg
		}
	}

	return errs
}

// Validate checks one day. Closed days carry no time rules.
func (d Day) Validate() map[string]string {
	errs := map[string]string{}
	if d.IsClosed {
		return errs
	}

	open, openOK := clock(d.OpenTime, FieldOpenTime, errs)
	closing, closeOK := clock(d.CloseTime, FieldCloseTime, errs)

	if openOK && closeOK && !closing.After(open) {
		errs[FieldCloseTime] = MessageCloseAfterOpen
	}

	hasStart := strings.TrimSpace(d.BreakStart) != ""
	hasEnd := strings.TrimSpace(d.BreakEnd) != ""

	switch {
	case !hasStart && !hasEnd:
		return errs
	case hasStart != hasEnd:
		if hasStart {
			errs[FieldBreakEnd] = MessageBreakIncomplete
		} else {
			errs[FieldBreakStart] = MessageBreakIncomplete
		}

		return errs
	}

	start, startOK := clock(d.BreakStart, FieldBreakStart, errs)
	end, endOK := clock(d.BreakEnd, FieldBreakEnd, errs)
	if !startOK || !endOK {
		return errs
	}

	if !end.After(start) {
		errs[FieldBreakEnd] = MessageBreakOrder
		return errs
	}

	if openOK && closeOK && (start.Before(open) || end.After(closing)) {
		errs[FieldBreakStart] = MessageBreakOutside
	}

	return errs
}

// clock parses an HH:MM[:SS] value, recording a message under field when it is missing or bad.
func clock(value, field string, errs map[string]string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		errs[field] = MessageTimeRequired
		return time.Time{}, false
	}

	for _, layout := range []string{constant.ClockFormat, constant.ClockFormatSec} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	errs[field] = MessageTimeInvalid

	return time.Time{}, false
}
