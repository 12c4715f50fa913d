package model

import "salondash/shared/model"

const (
	EntityName = "profile"
	Path       = "/api/owner/profile"

	PayloadKey      = "profile"
	SegmentPassword = "password"
)

type Profile struct {
	ID        model.ID `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	SalonName string   `json:"salon_name"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	Bio       string   `json:"bio"`
	AvatarURL string   `json:"avatar_url"`
	model.Metadata
}
