package pagination

// Response is the envelope for paginated listings.
type Response[T any] struct {
	Data       []T      `json:"data"`
	Pagination Metadata `json:"pagination"`
}

// NewResponse wraps one page of items with its metadata.
func NewResponse[T any](data []T, meta Metadata) Response[T] {
	return Response[T]{Data: data, Pagination: meta}
}
