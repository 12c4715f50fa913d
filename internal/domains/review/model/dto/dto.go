package dto

import (
	"salondash/internal/domains/review/model"
	"salondash/shared/constant"
	"salondash/shared/dto"
	gModel "salondash/shared/model"
	"salondash/shared/timezone"
)

const EmptyMessage = "No reviews yet"

// UpdateReviewRequest toggles visibility and the featured flag. Metadata is the row's current
// metadata, kept so other keys survive the update.
type UpdateReviewRequest struct {
	IsVisible *bool             `json:"is_visible"`
	Featured  *bool             `json:"featured"`
	Metadata  gModel.Attributes `json:"metadata"`
}

func (u *UpdateReviewRequest) ToBody() map[string]any {
	body := map[string]any{}

	if u.IsVisible != nil {
		body[model.FieldIsVisible] = *u.IsVisible
	}

	if u.Featured != nil {
		body[model.FieldMetadata] = model.WithFeatured(u.Metadata, *u.Featured)
	}

	return body
}

type ReviewResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email,omitempty"`
	Phone     string            `json:"phone,omitempty"`
	Rating    float64           `json:"rating"`
	Stars     int               `json:"stars"`
	Text      string            `json:"text"`
	IsVisible bool              `json:"is_visible"`
	Featured  bool              `json:"featured"`
	Metadata  gModel.Attributes `json:"metadata"`
	CreatedAt string            `json:"created_at,omitempty"`
}

func (r *ReviewResponse) FromModel(m model.Review) {
	r.ID = m.ID.String()
	r.Name = m.Name
	r.Email = m.Email
	r.Phone = m.Phone
	r.Rating = m.Rating
	r.Stars = m.Stars()
	r.Text = m.Text
	r.IsVisible = m.IsVisible
	r.Featured = m.Featured()
	r.Metadata = m.Metadata.Clone()

	if !m.CreatedAt.IsZero() {
		r.CreatedAt = timezone.Format(m.CreatedAt.Time, constant.DateFormat)
	}
}

// Summary counts the reviews of the current page.
type Summary struct {
	AverageRating float64 `json:"average_rating"`
	Visible       int     `json:"visible"`
	Featured      int     `json:"featured"`
}

type GetReviewsResponse struct {
	Reviews      []ReviewResponse `json:"reviews"`
	Pagination   dto.Pagination   `json:"pagination"`
	PageSummary  Summary          `json:"page_summary"`
	Empty        bool             `json:"empty"`
	EmptyMessage string           `json:"empty_message,omitempty"`
}

func (g *GetReviewsResponse) FromModels(reviews []model.Review, pagination dto.Pagination) {
	g.Reviews = make([]ReviewResponse, 0, len(reviews))
	g.Pagination = pagination
	g.PageSummary = Summary{}

	var total float64
	for _, m := range reviews {
		var row ReviewResponse
		row.FromModel(m)
		g.Reviews = append(g.Reviews, row)

		total += m.Rating
		if row.IsVisible {
			g.PageSummary.Visible++
		}

		if row.Featured {
			g.PageSummary.Featured++
		}
	}

	if len(reviews) > 0 {
		g.PageSummary.AverageRating = float64(int(total/float64(len(reviews))*100+0.5)) / 100
	}

	g.Empty = len(g.Reviews) == 0
	if g.Empty {
		g.EmptyMessage = EmptyMessage
	}
}
