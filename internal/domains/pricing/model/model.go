package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"salondash/shared/model"
	"strings"
)

const (
	SectionEntityName = "section"
	ServiceEntityName = "service"
	SlotEntityName    = "slot"

	SectionPath = "/api/owner/sections"
	ServicePath = "/api/owner/services"
	SlotSegment = "slots"

	PayloadKeySections = "sections"
	PayloadKeySection  = "section"
	PayloadKeyServices = "services"
	PayloadKeyService  = "service"
	PayloadKeySlots    = "slots"
	PayloadKeySlot     = "slot"

	FieldSectionID = "section_id"
)

type Section struct {
	ID          model.ID `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	SortOrder   int      `json:"sort_order"`
	IsActive    bool     `json:"is_active"`
}

// Features is the checklist shown on a service card. Backends store it either as a JSON array
// or as a string holding one, or one feature per line.
type Features []string

func (f *Features) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = Features{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode features: %w", err)
		}

		var list []string
		if err := json.Unmarshal([]byte(s), &list); err == nil {
			*f = compact(list)
			return nil
		}

		*f = compact(strings.Split(s, "\n"))

		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("decode features: %w", err)
	}

	*f = compact(list)

	return nil
}

func compact(items []string) Features {
	out := Features{}
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}

	return out
}

type Service struct {
	ID              model.ID    `json:"id"`
	SectionID       model.ID    `json:"section_id"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Price           model.Money `json:"price"`
	DurationMinutes int         `json:"duration_minutes"`
	Features        Features    `json:"features"`
	IsActive        bool        `json:"is_active"`
}

type Slot struct {
	ID              model.ID `json:"id"`
	ServiceID       model.ID `json:"service_id"`
	SlotTime        string   `json:"slot_time"`
	DurationMinutes int      `json:"duration_minutes"`
	IsActive        bool     `json:"is_active"`
}
