package dto

import (
	"salondash/internal/domains/contact/model"
	"salondash/shared"
	"salondash/shared/dto"
)

const EmptyMessage = "No messages match the current filters"

type UpdateContactRequest struct {
	Status string `json:"status" validate:"required,max=50"`
}

func (u *UpdateContactRequest) ToBody() map[string]any {
	return shared.TransformFields(u)
}

type ContactResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
	Status  string `json:"status"`
	Bucket  string `json:"bucket"`
	dto.Metadata
}

func (c *ContactResponse) FromModel(m model.Contact) {
	c.ID = m.ID.String()
	c.Name = m.Name
	c.Email = m.Email
	c.Phone = m.Phone
	c.Message = m.Message
	c.Status = m.Status
	c.Bucket = m.Bucket()
	c.Metadata.FromModel(m.Metadata)
}

// Buckets counts the messages of the current page per status bucket.
type Buckets struct {
	New       int `json:"new"`
	Responded int `json:"responded"`
	Other     int `json:"other"`
}

func (b *Buckets) Add(bucket string) {
	switch bucket {
	case model.BucketNew:
		b.New++
	case model.BucketResponded:
		b.Responded++
	default:
		b.Other++
	}
}

type GetContactsResponse struct {
	Contacts     []ContactResponse `json:"contacts"`
	Pagination   dto.Pagination    `json:"pagination"`
	PageBuckets  Buckets           `json:"page_buckets"`
	Empty        bool              `json:"empty"`
	EmptyMessage string            `json:"empty_message,omitempty"`
}

func (g *GetContactsResponse) FromModels(contacts []model.Contact, pagination dto.Pagination) {
	g.Contacts = make([]ContactResponse, 0, len(contacts))
	g.Pagination = pagination
	g.PageBuckets = Buckets{}

	for _, m := range contacts {
		var row ContactResponse
		row.FromModel(m)
		g.Contacts = append(g.Contacts, row)
		g.PageBuckets.Add(row.Bucket)
	}

	g.Empty = len(g.Contacts) == 0
	if g.Empty {
		g.EmptyMessage = EmptyMessage
	}
}
