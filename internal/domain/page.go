package domain

// Page is one page of a newest-first listing. Pages are zero-based; Total is
// the number of items across all pages at query time.
type Page[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Total int `json:"total"`
}

// HasMore reports whether a later page exists.
func (p Page[T]) HasMore() bool {
	return (p.Page+1)*p.Size < p.Total
}
