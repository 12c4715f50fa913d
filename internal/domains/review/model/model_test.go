package model_test

import (
	"encoding/json"
	"salondash/internal/domains/review/model"
	gModel "salondash/shared/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReview_Featured(t *testing.T) {
	tests := []struct {
		name     string
		metadata string
		expected bool
	}{
		{"featured", `{"featured":true}`, true},
		{"is_featured", `{"is_featured":1}`, true},
		{"isFeatured", `{"isFeatured":"true"}`, true},
		{"highlighted", `{"highlighted":"yes"}`, true},
		{"canonical key wins", `{"featured":false,"highlighted":true}`, false},
		{"encoded metadata", `"{\"is_featured\":true}"`, true},
		{"no flag", `{"source":"google"}`, false},
		{"null metadata", `null`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var review model.Review
			require.NoError(t, json.Unmarshal([]byte(`{"id":1,"rating":4,"metadata":`+tt.metadata+`}`), &review))

			assert.Equal(t, tt.expected, review.Featured())
		})
	}
}

func TestReview_Stars(t *testing.T) {
	assert.Equal(t, 4, model.Review{Rating: 4.4}.Stars())
	assert.Equal(t, 5, model.Review{Rating: 4.5}.Stars())
	assert.Equal(t, 5, model.Review{Rating: 9}.Stars())
	assert.Equal(t, 0, model.Review{Rating: -2}.Stars())
}

func TestWithFeatured(t *testing.T) {
	metadata := gModel.Attributes{"highlighted": true, "source": "google"}

	out := model.WithFeatured(metadata, false)

	assert.Equal(t, gModel.Attributes{"featured": false, "highlighted": false, "source": "google"}, out)
	assert.Equal(t, true, metadata["highlighted"])
	assert.False(t, model.Review{Metadata: out}.Featured())
}
