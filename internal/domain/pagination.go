package domain

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

type Pagination struct {
	Page     int
	PageSize int
}

func NewPagination(page, pageSize *int) Pagination {
	pagination := Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	if page != nil {
		pagination.Page = *page
	}
	if pageSize != nil {
		pagination.PageSize = *pageSize
	}

	return pagination
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
