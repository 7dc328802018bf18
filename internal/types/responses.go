// Package types defines the request and response envelopes shared by the API
// server and the client.
package types

// PaginationResponse represents pagination information for list endpoints
type PaginationResponse struct {
	// Total number of items available across all pages
	Total int `json:"total"`

	// Current page number (1-based)
	Page int `json:"page"`

	// Maximum number of items per page
	PageSize int `json:"page_size"`
}

// ListResponse defines a generic response structure for listing resources
type ListResponse[T any] struct {
	// Array of resource items
	Rows []T `json:"rows"`

	// Pagination information for the result set
	Pagination PaginationResponse `json:"pagination"`
}

// ErrorResponse represents an error returned by the API
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginRequest carries the credentials for the login endpoint
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token issued on a successful login
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ReorderRequest carries the new ordering for catalogs and views: the full
// list of ids in their new display order.
type ReorderRequest struct {
	IDs []uint `json:"ids"`
}
