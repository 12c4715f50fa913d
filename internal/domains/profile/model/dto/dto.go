package dto

import (
	"salondash/internal/domains/profile/model"
	"salondash/shared"
	"salondash/shared/dto"
)

const MessagePasswordChanged = "Password updated"

type UpdateProfileRequest struct {
	Name      *string `json:"name"       validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email"      validate:"omitempty,email,max=100"`
	Phone     *string `json:"phone"      validate:"omitempty,max=30"`
	SalonName *string `json:"salon_name" validate:"omitempty,max=150"`
	Address   *string `json:"address"    validate:"omitempty,max=255"`
	City      *string `json:"city"       validate:"omitempty,max=100"`
	Bio       *string `json:"bio"        validate:"omitempty,max=2000"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
}

func (u *UpdateProfileRequest) ToBody() map[string]any {
	return shared.TransformFields(u)
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=128"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

func (c *ChangePasswordRequest) ToBody() map[string]any {
	return shared.TransformFields(c)
}

type ProfileResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	SalonName string `json:"salon_name,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	dto.Metadata
}

func (p *ProfileResponse) FromModel(m model.Profile) {
	p.ID = m.ID.String()
	p.Name = m.Name
	p.Email = m.Email
	p.Phone = m.Phone
	p.SalonName = m.SalonName
	p.Address = m.Address
	p.City = m.City
	p.Bio = m.Bio
	p.AvatarURL = m.AvatarURL
	p.Metadata.FromModel(m.Metadata)
}
