package dto

import "salondash/shared"

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Normalize fills Pages when the upstream left it out and clamps Page to at least 1.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}

	if p.Pages == 0 {
		p.Pages = shared.CalculateTotalPage(p.Total, p.Limit)
	}

	return p
}
