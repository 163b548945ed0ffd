package domain

import "math"

const (
	// DefaultPageSize is the page size used when none is requested.
	DefaultPageSize = 20
	// MaxPageSize is the largest page size a caller may request.
	MaxPageSize = 100
)

// PageRequest selects a window of a result set. Page is zero-based.
type PageRequest struct {
	Page int
	Size int
}

// NewPageRequest builds a PageRequest, applying the defaults for missing values.
func NewPageRequest(page, size *int) PageRequest {
	pr := PageRequest{Page: 0, Size: DefaultPageSize}
	if page != nil {
		pr.Page = *page
	}
	if size != nil {
		pr.Size = *size
	}
	return pr
}

// Validate checks the page window bounds.
func (p PageRequest) Validate() error {
	var messages []string
	if p.Page < 0 {
		messages = append(messages, "page must not be negative")
	}
	if p.Size <= 0 || p.Size > MaxPageSize {
		messages = append(messages, "size must be between 1 and 100")
	} else if p.Page > math.MaxInt/p.Size {
		messages = append(messages, "page is too large")
	}
	if len(messages) > 0 {
		return NewValidationErr(messages...)
	}
	return nil
}

// Offset returns the number of rows to skip before the window starts.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is a window of a result set together with the size of the whole set.
type Page[T any] struct {
	Items         []T
	Page          int
	Size          int
	TotalElements int64
}

// TotalPages returns the number of pages needed to hold TotalElements.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}
