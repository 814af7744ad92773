package dto

// Page is the pagination envelope returned by every list operation.
// Pages are zero-indexed.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	CurrentPage   int   `json:"currentPage"`
	PageSize      int   `json:"pageSize"`
	HasNext       bool  `json:"hasNext"`
	HasPrevious   bool  `json:"hasPrevious"`
}

// NewPage builds a Page from one slice of content plus the total element count
func NewPage[T any](content []T, totalElements int64, page, size int) *Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((totalElements + int64(size) - 1) / int64(size))
	}
	return &Page[T]{
		Content:       content,
		TotalElements: totalElements,
		TotalPages:    totalPages,
		CurrentPage:   page,
		PageSize:      size,
		HasNext:       int64(page+1)*int64(size) < totalElements,
		HasPrevious:   page > 0,
	}
}
