package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	EntityName = "availability"
	Path       = "/api/owner/availability"

	SegmentSlots    = "slots"
	PayloadKeySlots = "slots"

	ParamDate            = "date"
	ParamServiceID       = "service_id"
	ParamHomeServiceID   = "home_service_id"
	ParamDurationMinutes = "duration_minutes"
	ParamType            = "type"

	TypeSalon = "salon"
	TypeHome  = "home"
)

var (
	slotTimeKeys      = []string{"time", "slot_time", "start_time", "start"}
	slotAvailableKeys = []string{"available", "is_available"}
)

// Slot is one bookable start time. The backend sends either a bare "HH:MM" string or an object.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

func (s *Slot) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var t string
		if err := json.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("decode slot: %w", err)
		}

		*s = Slot{Time: strings.TrimSpace(t), Available: true}

		return nil
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decode slot: %w", err)
	}

	*s = Slot{Available: true}

	for _, key := range slotTimeKeys {
		if v, ok := obj[key].(string); ok && v != "" {
			s.Time = strings.TrimSpace(v)
			break
		}
	}

	for _, key := range slotAvailableKeys {
		if v, ok := obj[key].(bool); ok {
			s.Available = v
			break
		}
	}

	return nil
}
