package model_test

import (
	"salondash/internal/domains/offer/model"
	"salondash/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOffer_Status(t *testing.T) {
	loc := timezone.GetLocation()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, loc)

	tests := []struct {
		name     string
		offer    model.Offer
		expected string
	}{
		{"inactive regardless of dates", model.Offer{IsActive: false, StartDate: "2026-03-01", EndDate: "2026-03-31"}, model.StatusInactive},
		{"inactive even when expired", model.Offer{IsActive: false, StartDate: "2026-01-01", EndDate: "2026-01-31"}, model.StatusInactive},
		{"future start is scheduled", model.Offer{IsActive: true, StartDate: "2026-03-11", EndDate: "2026-03-31"}, model.StatusScheduled},
		{"inside the window is active", model.Offer{IsActive: true, StartDate: "2026-03-01", EndDate: "2026-03-31"}, model.StatusActive},
		{"start day itself is active", model.Offer{IsActive: true, StartDate: "2026-03-10", EndDate: "2026-03-31"}, model.StatusActive},
		{"date-only end covers the whole day", model.Offer{IsActive: true, StartDate: "2026-03-01", EndDate: "2026-03-10"}, model.StatusActive},
		{"past end is expired", model.Offer{IsActive: true, StartDate: "2026-02-01", EndDate: "2026-03-09"}, model.StatusExpired},
		{"timestamp end is exact", model.Offer{IsActive: true, StartDate: "2026-03-01", EndDate: now.Add(-time.Minute).Format(time.RFC3339)}, model.StatusExpired},
		{"no dates is active", model.Offer{IsActive: true}, model.StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.offer.Status(now))
		})
	}
}

func TestParseBoundary(t *testing.T) {
	end, ok := model.ParseBoundary("2026-03-10", true)
	assert.True(t, ok)
	assert.Equal(t, 23, end.Hour())

	start, ok := model.ParseBoundary("2026-03-10T00:00:00.000000Z", false)
	assert.True(t, ok)
	assert.Equal(t, 10, start.Day())

	_, ok = model.ParseBoundary("soon", false)
	assert.False(t, ok)
}
