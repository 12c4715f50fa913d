package dto

import (
	"salondash/shared/constant"
	"salondash/shared/model"
	"salondash/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	if !model.CreatedAt.IsZero() {
		m.CreatedAt = timezone.Format(model.CreatedAt.Time, constant.DateFormat)
	}

	if !model.UpdatedAt.IsZero() {
		m.UpdatedAt = timezone.Format(model.UpdatedAt.Time, constant.DateFormat)
	}
}
