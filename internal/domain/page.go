package domain

// Pagination bounds for catalog listing.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageRequest is 1-based offset pagination input.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize applies defaults and clamps values into the allowed ranges.
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
}

// Offset returns the number of rows to skip for the current page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageMeta is pagination metadata computed from the post-filter,
// pre-pagination total.
type PageMeta struct {
	Total       int
	Page        int
	Limit       int
	TotalPages  int
	HasNextPage bool
	HasPrevPage bool
}

// NewPageMeta builds PageMeta for a normalized request and a filtered total.
func NewPageMeta(req PageRequest, total int) PageMeta {
	totalPages := 0
	if total > 0 {
		totalPages = (total + req.Limit - 1) / req.Limit
	}
	return PageMeta{
		Total:       total,
		Page:        req.Page,
		Limit:       req.Limit,
		TotalPages:  totalPages,
		HasNextPage: req.Page < totalPages,
		HasPrevPage: req.Page > 1 && total > 0,
	}
}
