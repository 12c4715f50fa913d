package dto_test

import (
	"salondash/internal/domains/review/model"
	"salondash/internal/domains/review/model/dto"
	gDto "salondash/shared/dto"
	gModel "salondash/shared/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateReviewRequest_ToBody(t *testing.T) {
	visible := false
	featured := true

	tests := []struct {
		name     string
		req      dto.UpdateReviewRequest
		expected map[string]any
	}{
		{
			name:     "visibility only",
			req:      dto.UpdateReviewRequest{IsVisible: &visible},
			expected: map[string]any{"is_visible": false},
		},
		{
			name: "featured keeps other metadata",
			req:  dto.UpdateReviewRequest{Featured: &featured, Metadata: gModel.Attributes{"source": "walk-in", "isFeatured": false}},
			expected: map[string]any{
				"metadata": gModel.Attributes{"source": "walk-in", "isFeatured": true, "featured": true},
			},
		},
		{
			name:     "nothing set",
			req:      dto.UpdateReviewRequest{},
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.req.ToBody())
		})
	}
}

func TestGetReviewsResponse_FromModels(t *testing.T) {
	var res dto.GetReviewsResponse
	res.FromModels([]model.Review{
		{ID: "1", Rating: 5, IsVisible: true, Metadata: gModel.Attributes{"highlighted": true}},
		{ID: "2", Rating: 4, IsVisible: true},
		{ID: "3", Rating: 2},
	}, gDto.Pagination{Page: 1, Limit: 10, Total: 3, Pages: 1})

	assert.Len(t, res.Reviews, 3)
	assert.True(t, res.Reviews[0].Featured)
	assert.Equal(t, dto.Summary{AverageRating: 3.67, Visible: 2, Featured: 1}, res.PageSummary)
	assert.False(t, res.Empty)

	var empty dto.GetReviewsResponse
	empty.FromModels(nil, gDto.Pagination{})

	assert.True(t, empty.Empty)
	assert.Equal(t, dto.EmptyMessage, empty.EmptyMessage)
	assert.NotNil(t, empty.Reviews)
}
