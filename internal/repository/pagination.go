package repository

// PageRequest carries 1-based pagination parameters. Both fields must be
// strictly positive; callers validate before hitting the repository.
type PageRequest struct {
	Number int
	Size   int
}

func (p PageRequest) Valid() bool {
	return p.Number > 0 && p.Size > 0
}

func (p PageRequest) Offset() int {
	return (p.Number - 1) * p.Size
}

// Page is one page of results plus the metadata the listing contract requires.
// Requests beyond the last page yield an empty Data slice, not an error.
type Page[T any] struct {
	Data         []T
	PageNumber   int
	PageSize     int
	TotalRecords int64
	TotalPages   int
}

// NewPage computes TotalPages as ceil(totalRecords / pageSize).
func NewPage[T any](data []T, req PageRequest, totalRecords int64) Page[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := int((totalRecords + int64(req.Size) - 1) / int64(req.Size))
	return Page[T]{
		Data:         data,
		PageNumber:   req.Number,
		PageSize:     req.Size,
		TotalRecords: totalRecords,
		TotalPages:   totalPages,
	}
}
