package model_test

import (
	"salondash/internal/domains/contact/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucket(t *testing.T) {
	tests := []struct {
		status   string
		expected string
	}{
		{"", model.BucketNew},
		{"new", model.BucketNew},
		{" Unread ", model.BucketNew},
		{"PENDING", model.BucketNew},
		{"responded", model.BucketResponded},
		{"Replied", model.BucketResponded},
		{"closed", model.BucketResponded},
		{"spam", model.BucketOther},
		{"archived", model.BucketOther},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.Bucket(tt.status))
			assert.Equal(t, tt.expected, model.Contact{Status: tt.status}.Bucket())
		})
	}
}
