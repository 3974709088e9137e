// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

// Page is the pagination envelope every listing endpoint returns.
// Number is the zero-based page index that was requested.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	TotalElements int64 `json:"totalElements"`
	Size          int   `json:"size"`
}

// NewPage assembles a pagination envelope from a fetched slice and the
// total record count. A nil content slice becomes an empty one so the
// JSON field is always an array.
func NewPage[T any](content []T, total int64, page, size int) *Page[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return &Page[T]{
		Content:       content,
		TotalPages:    totalPages,
		Number:        page,
		TotalElements: total,
		Size:          size,
	}
}
