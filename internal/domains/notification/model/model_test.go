package model_test

import (
	"salondash/internal/domains/notification/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeType(t *testing.T) {
	tests := map[string]string{
		"info":      model.TypeInfo,
		"success":   model.TypeSuccess,
		" Warning ": model.TypeWarning,
		"DANGER":    model.TypeDanger,
		"error":     model.TypeInfo,
		"":          model.TypeInfo,
	}

	for in, expected := range tests {
		assert.Equal(t, expected, model.NormalizeType(in), in)
	}
}
