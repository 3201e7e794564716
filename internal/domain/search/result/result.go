package result

// Page is one slice of a filtered listing.
type Page[T any] struct {
	items      []T
	total      int
	page       int
	limit      int
	totalPages int
}

// Paginate returns the 1-based page of items with the given size.
// Out-of-range pages yield an empty item list with correct totals.
func Paginate[T any](items []T, page, limit int) Page[T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	total := len(items)
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	// Compare page counts before multiplying so huge page numbers cannot overflow.
	start := total
	if page-1 < totalPages {
		start = (page - 1) * limit
	}
	end := total
	if limit < total-start {
		end = start + limit
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return Page[T]{items: out, total: total, page: page, limit: limit, totalPages: totalPages}
}

// Items returns the records on this page.
func (p Page[T]) Items() []T { return p.items }

// Total returns the number of records across all pages.
func (p Page[T]) Total() int { return p.total }

// Page returns the 1-based page number.
func (p Page[T]) Page() int { return p.page }

// Limit returns the page size.
func (p Page[T]) Limit() int { return p.limit }

// TotalPages returns the number of pages.
func (p Page[T]) TotalPages() int { return p.totalPages }

// HasMore reports whether later pages exist.
func (p Page[T]) HasMore() bool { return p.page < p.totalPages }
