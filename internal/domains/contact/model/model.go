package model

import (
	"salondash/shared/model"
	"slices"
	"strings"
)

const (
	EntityName = "contact"
	Path       = "/api/owner/contacts"

	PayloadKeyList = "contacts"
	PayloadKey     = "contact"

	FieldStatus = "status"
)

const (
	BucketNew       = "new"
	BucketResponded = "responded"
	BucketOther     = "other"
)

// Statuses the backend has been seen to use for each bucket. Anything else is "other".
var (
	newStatuses       = []string{"new", "unread", "pending", "open"}
	respondedStatuses = []string{"responded", "replied", "answered", "resolved", "closed"}
)

type Contact struct {
	ID      model.ID `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Message string   `json:"message"`
	Status  string   `json:"status"`
	model.Metadata
}

func (c Contact) Bucket() string {
	return Bucket(c.Status)
}

// Bucket groups a free-form status. An empty status counts as new.
func Bucket(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))

	switch {
	case s == "" || slices.Contains(newStatuses, s):
		return BucketNew
	case slices.Contains(respondedStatuses, s):
		return BucketResponded
	default:
		return BucketOther
	}
}
