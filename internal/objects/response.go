package objects

type ErrorResponse struct {
	Error Error `json:"error"`
}

type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	// Detail carries the underlying error message where the surface
	// contract exposes it (profile update only).
	Detail string `json:"detail,omitempty"`
}

// ListResponse is the envelope for list operations: the page of records plus
// pagination metadata, returned unchanged from the store.
type ListResponse struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta"`
}

type Meta struct {
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

// DataResponse is the envelope for single-record operations.
type DataResponse struct {
	Data any `json:"data"`
}
