package models

// WebResponse is the envelope for every gateway response.
type WebResponse[T any] struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	ErrorName string `json:"errorName,omitempty"`
	Data      T      `json:"data,omitempty"`
}

// Page mirrors the upstream paginated query result. The page index is
// zero-based.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	HasNext       bool  `json:"hasNext"`
}

// PrevEnabled reports whether a previous page exists.
func (p *Page[T]) PrevEnabled() bool {
	return p.Page > 0
}

// NextEnabled reports whether a next page exists. HasNext is authoritative;
// TotalPages is not consulted because the two can disagree on the last page.
func (p *Page[T]) NextEnabled() bool {
	return p.HasNext
}
