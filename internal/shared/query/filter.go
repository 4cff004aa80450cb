// Package query holds the paging and sorting filters shared by list repositories.
package query

import "github.com/stealthycommerce/stealthy/internal/shared/constants"

type PageFilter struct {
	Page     int
	PageSize int
}

func (f PageFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

func (f PageFilter) Limit() int {
	if f.PageSize <= 0 {
		return constants.DefaultPageSize
	}
	if f.PageSize > constants.MaxPageSize {
		return constants.MaxPageSize
	}
	return f.PageSize
}

type SortFilter struct {
	SortBy     string
	Descending bool
}

// Direction returns the SQL keyword for the sort direction.
func (f SortFilter) Direction() string {
	if f.Descending {
		return "DESC"
	}
	return "ASC"
}

// OrderClauses maps SortBy through columns, using fallback for unknown keys,
// and appends tiebreak in the same direction so pages do not overlap.
func (f SortFilter) OrderClauses(columns map[string]string, fallback, tiebreak string) []string {
	col, ok := columns[f.SortBy]
	if !ok {
		col = columns[fallback]
	}
	dir := f.Direction()
	clauses := []string{col + " " + dir}
	if tiebreak != "" && tiebreak != col {
		clauses = append(clauses, tiebreak+" "+dir)
	}
	return clauses
}

type BaseFilter struct {
	PageFilter
	SortFilter
}

type FilterOption func(*BaseFilter)

func WithPage(page, pageSize int) FilterOption {
	return func(f *BaseFilter) {
		f.Page = page
		f.PageSize = pageSize
	}
}

func WithSort(sortBy string, descending bool) FilterOption {
	return func(f *BaseFilter) {
		f.SortBy = sortBy
		f.Descending = descending
	}
}

// NewBaseFilter returns the first page, newest first, with opts applied.
func NewBaseFilter(opts ...FilterOption) BaseFilter {
	f := BaseFilter{
		PageFilter: PageFilter{
			Page:     constants.DefaultPage,
			PageSize: constants.DefaultPageSize,
		},
		SortFilter: SortFilter{
			Descending: true,
		},
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}
