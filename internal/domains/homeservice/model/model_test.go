package model_test

import (
	"encoding/json"
	"salondash/internal/domains/homeservice/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking_Total(t *testing.T) {
	var b model.Booking
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"service_price":100,"travel_fee":"25.50"}`), &b))

	assert.Equal(t, "125.50", string(b.Total()))
	assert.Equal(t, "1", b.Key())
}
