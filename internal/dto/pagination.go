package dto

// PageRequest is the shared list-endpoint query. Defaults are applied by
// Normalize, not by binding, so zero values round-trip cleanly.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

// Normalize applies defaults and returns limit and offset for the repository.
func (p *PageRequest) Normalize() (limit, offset int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	return p.PageSize, (p.Page - 1) * p.PageSize
}

// ListBookingsRequest is the booking list query: paging plus an optional
// lifecycle-status filter.
type ListBookingsRequest struct {
	PageRequest
	Status string `form:"status" binding:"omitempty,oneof=Booked Cancelled"`
}

// PageResponse wraps a list payload with its paging facts.
type PageResponse[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}
