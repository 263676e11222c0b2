package service

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// normalizePage clamps the zero-based page index and page size to the
// pagination contract: page >= 0, 1 <= size <= maxPageSize. A non-positive
// size falls back to the default.
func normalizePage(page, size int) (normPage, normSize int) {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}
