package dto

import (
	"salondash/internal/domains/notification/model"
	"salondash/shared/constant"
	"salondash/shared/dto"
	gModel "salondash/shared/model"
	"salondash/shared/timezone"
)

const EmptyMessage = "You're all caught up"

type NotificationResponse struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Meta      gModel.Attributes `json:"meta"`
	CreatedAt string            `json:"created_at,omitempty"`
}

func (n *NotificationResponse) FromModel(m model.Notification) {
	n.ID = m.ID.String()
	n.Type = model.NormalizeType(m.Type)
	n.Title = m.Title
	n.Message = m.Message
	n.Meta = m.Meta.Clone()

	if !m.CreatedAt.IsZero() {
		n.CreatedAt = timezone.Format(m.CreatedAt.Time, constant.DateFormat)
	}
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Pagination    dto.Pagination         `json:"pagination"`
	Empty         bool                   `json:"empty"`
	EmptyMessage  string                 `json:"empty_message,omitempty"`
}
