package domain

// Sort fields and orders accepted by list queries.
const (
	SortCreated = "created"
	SortUpdated = "updated"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Default page sizes per content kind.
const (
	DefaultBlogPageSize    = 10
	DefaultProductPageSize = 12
)

// ListParams carries the filter, sort, and pagination inputs of a list
// query. Visibility is not part of the params: list queries are always
// restricted to public records.
type ListParams struct {
	Query    string
	Tags     []string
	Category string
	Type     string // product lists only
	Status   string
	Sort     string
	Order    string
	Page     int
	PageSize int
}

// Normalized returns a copy with defaults applied: published-only
// status, updated-desc ordering, first page with the given page size.
func (p ListParams) Normalized(defaultPageSize int) ListParams {
	if p.Status == "" {
		p.Status = StatusPublished
	}
	if p.Sort == "" {
		p.Sort = SortUpdated
	}
	if p.Order == "" {
		p.Order = OrderDesc
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	return p
}

// Offset is the number of records skipped by pagination.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}
