package model_test

import (
	"encoding/json"
	"salondash/internal/domains/pricing/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatures_Unmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected model.Features
	}{
		{"array", `["Wash", " Cut ", ""]`, model.Features{"Wash", "Cut"}},
		{"encoded array", `"[\"Wash\",\"Blow dry\"]"`, model.Features{"Wash", "Blow dry"}},
		{"lines", `"Wash\nCut\n"`, model.Features{"Wash", "Cut"}},
		{"null", `null`, model.Features{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f model.Features
			require.NoError(t, json.Unmarshal([]byte(tt.input), &f))
			assert.Equal(t, tt.expected, f)
		})
	}
}
