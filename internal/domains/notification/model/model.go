package model

import (
	"salondash/shared/model"
	"strings"
)

const (
	EntityName = "notification"
	Path       = "/api/owner/notifications"

	PayloadKeyList = "notifications"
	PayloadKey     = "notification"
)

const (
	TypeInfo    = "info"
	TypeSuccess = "success"
	TypeWarning = "warning"
	TypeDanger  = "danger"
)

type Notification struct {
	ID        model.ID         `json:"id"`
	Type      string           `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Meta      model.Attributes `json:"meta"`
	CreatedAt model.Timestamp  `json:"created_at"`
}

// NormalizeType maps a backend type onto the four known kinds. Unknown types are info.
func NormalizeType(t string) string {
	switch s := strings.ToLower(strings.TrimSpace(t)); s {
	case TypeSuccess, TypeWarning, TypeDanger:
		return s
	default:
		return TypeInfo
	}
}
