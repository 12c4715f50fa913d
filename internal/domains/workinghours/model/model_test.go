package model_test

import (
	"encoding/json"
	"salondash/internal/domains/workinghours/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(day int) model.Day {
	return model.Day{DayOfWeek: day, OpenTime: "09:00", CloseTime: "18:00"}
}

func TestDay_Validate(t *testing.T) {
	tests := []struct {
		name     string
		day      model.Day
		expected map[string]string
	}{
		{"open day", open(1), map[string]string{}},
		{"closed day ignores times", model.Day{DayOfWeek: 0, IsClosed: true, OpenTime: "20:00", CloseTime: "08:00"}, map[string]string{}},
		{"seconds accepted", model.Day{OpenTime: "09:00:00", CloseTime: "18:30:00"}, map[string]string{}},
		{"missing times", model.Day{}, map[string]string{
			model.FieldOpenTime:  model.MessageTimeRequired,
			model.FieldCloseTime: model.MessageTimeRequired,
		}},
		{"bad time", model.Day{OpenTime: "9am", CloseTime: "18:00"}, map[string]string{model.FieldOpenTime: model.MessageTimeInvalid}},
		{"close before open", model.Day{OpenTime: "18:00", CloseTime: "09:00"}, map[string]string{model.FieldCloseTime: model.MessageCloseAfterOpen}},
		{"close equals open", model.Day{OpenTime: "09:00", CloseTime: "09:00"}, map[string]string{model.FieldCloseTime: model.MessageCloseAfterOpen}},
		{"break inside", model.Day{OpenTime: "09:00", CloseTime: "18:00", BreakStart: "12:00", BreakEnd: "13:00"}, map[string]string{}},
		{"break on the edges", model.Day{OpenTime: "09:00", CloseTime: "18:00", BreakStart: "09:00", BreakEnd: "18:00"}, map[string]string{}},
		{"break half set", model.Day{OpenTime: "09:00", CloseTime: "18:00", BreakStart: "12:00"}, map[string]string{model.FieldBreakEnd: model.MessageBreakIncomplete}},
		{"break reversed", model.Day{OpenTime: "09:00", CloseTime: "18:00", BreakStart: "13:00", BreakEnd: "12:00"}, map[string]string{model.FieldBreakEnd: model.MessageBreakOrder}},
		{"break outside", model.Day{OpenTime: "09:00", CloseTime: "18:00", BreakStart: "17:30", BreakEnd: "18:30"}, map[string]string{model.FieldBreakStart: model.MessageBreakOutside}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.day.Validate())
		})
	}
}

func TestWeek_Validate(t *testing.T) {
	bad := open(3)
	bad.CloseTime = "08:00"

	week := model.Week{open(1), open(1), model.Day{DayOfWeek: 7, IsClosed: true}, bad}

	assert.Equal(t, map[string]string{
		"1.day_of_week": model.MessageDayDuplicate,
		"7.day_of_week": model.MessageDayInvalid,
		"3.close_time":  model.MessageCloseAfterOpen,
	}, week.Validate())

	assert.Empty(t, model.Week{open(0), open(6)}.Validate())
}

func TestWeek_Unmarshal(t *testing.T) {
	var list model.Week
	require.NoError(t, json.Unmarshal([]byte(`[{"day_of_week":1,"open_time":"09:00","close_time":"17:00"}]`), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "17:00", list[0].CloseTime)

	var keyed model.Week
	require.NoError(t, json.Unmarshal([]byte(`{"2":{"is_closed":true},"0":{"open_time":"10:00","close_time":"14:00"}}`), &keyed))
	require.Len(t, keyed, 2)
	assert.Equal(t, 0, keyed[0].DayOfWeek)
	assert.Equal(t, 2, keyed[1].DayOfWeek)
	assert.True(t, keyed[1].IsClosed)
}
