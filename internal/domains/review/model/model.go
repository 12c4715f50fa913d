package model

import (
	"salondash/shared/model"
)

const (
	EntityName = "review"
	Path       = "/api/owner/reviews"

	PayloadKeyList = "reviews"
	PayloadKey     = "review"

	FieldIsVisible = "is_visible"
	FieldMetadata  = "metadata"

	MetadataKeyFeatured = "featured"

	MaxRating = 5
)

// FeaturedKeys are the metadata keys the featured flag has been stored under, most specific first.
var FeaturedKeys = []string{MetadataKeyFeatured, "is_featured", "isFeatured", "highlighted"}

type Review struct {
	ID        model.ID         `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Rating    float64          `json:"rating"`
	Text      string           `json:"text"`
	IsVisible bool             `json:"is_visible"`
	Metadata  model.Attributes `json:"metadata"`
	CreatedAt model.Timestamp  `json:"created_at"`
}

func (r Review) Featured() bool {
	return r.Metadata.Flag(FeaturedKeys...)
}

// Stars clamps the rating to 0..5 and rounds it to whole stars.
func (r Review) Stars() int {
	stars := int(r.Rating + 0.5)

	return min(max(stars, 0), MaxRating)
}

// WithFeatured returns metadata carrying featured under every alias already present, plus the
// canonical key, so no stale alias can contradict it.
func WithFeatured(metadata model.Attributes, featured bool) model.Attributes {
	out := metadata.Clone()
	for _, key := range FeaturedKeys[1:] {
		if _, ok := out[key]; ok {
			out[key] = featured
		}
	}

	out[MetadataKeyFeatured] = featured

	return out
}
