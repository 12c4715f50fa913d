package model

import (
	"salondash/shared/constant"
	"salondash/shared/model"
	"salondash/shared/timezone"
	"strings"
	"time"
)

const (
	EntityName = "offer"
	Path       = "/api/owner/offers"

	PayloadKeyList       = "offers"
	PayloadKey           = "offer"
	PayloadKeyStats      = "stats"
	PayloadKeyCategories = "categories"

	SegmentStats      = "stats"
	SegmentSummary    = "summary"
	SegmentCategories = "categories"
)

const (
	StatusInactive  = "inactive"
	StatusScheduled = "scheduled"
	StatusActive    = "active"
	StatusExpired   = "expired"
)

// Offer is a discount campaign. Exactly one of DiscountPercentage and DiscountAmount is expected
// to be set; prices and the percentage are decimals the backend may send as strings.
type Offer struct {
	ID                 model.ID    `json:"id"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	Category           string      `json:"category"`
	ServiceID          model.ID    `json:"service_id"`
	DiscountPercentage model.Money `json:"discount_percentage"`
	DiscountAmount     model.Money `json:"discount_amount"`
	OriginalPrice      model.Money `json:"original_price"`
	FinalPrice         model.Money `json:"final_price"`
	StartDate          string      `json:"start_date"`
	EndDate            string      `json:"end_date"`
	MaxUses            *int        `json:"max_uses"`
	UsedCount          int         `json:"used_count"`
	IsActive           bool        `json:"is_active"`
	CreatedAt          string      `json:"created_at,omitempty"`
}

// Status derives the lifecycle state at now. An inactive offer is inactive whatever its dates;
// otherwise the validity window decides. A date-only end covers that whole day.
func (o Offer) Status(now time.Time) string {
	if !o.IsActive {
		return StatusInactive
	}

	if start, ok := ParseBoundary(o.StartDate, false); ok && now.Before(start) {
		return StatusScheduled
	}

	if end, ok := ParseBoundary(o.EndDate, true); ok && now.After(end) {
		return StatusExpired
	}

	return StatusActive
}

// ParseBoundary reads a window boundary. Full timestamps are used as is; a plain date is the
// start of that day, or its last instant when end is set.
func ParseBoundary(value string, end bool) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(constant.DateFormat, value); err == nil {
		return t, true
	}

	if len(value) > len(constant.DateOnlyFormat) {
		value = value[:len(constant.DateOnlyFormat)]
	}

	day, err := timezone.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return time.Time{}, false
	}

	if end {
		return timezone.EndOfDay(day), true
	}

	return day, true
}
