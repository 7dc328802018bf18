// Package types exposes the request and response envelopes needed by API
// client consumers.
package types

// NOTE: This package uses type aliases to internal definitions
// as a temporary measure. This should be revisited
// during a proper refactoring to define stable public types.

import (
	internaltypes "github.com/David-H-Afonso/gamesdatabase/internal/types"
)

// PaginationResponse represents pagination information for list endpoints
type PaginationResponse = internaltypes.PaginationResponse

// ListResponse defines a generic response structure for listing resources
//
// Generic type aliases require Go 1.24; under the Go 1.21 toolchain this is
// a defined type with the same underlying struct and JSON layout.
type ListResponse[T any] internaltypes.ListResponse[T]

// ErrorResponse represents an error returned by the API
type ErrorResponse = internaltypes.ErrorResponse

// LoginRequest carries the credentials for the login endpoint
type LoginRequest = internaltypes.LoginRequest

// LoginResponse carries the bearer token issued on a successful login
type LoginResponse = internaltypes.LoginResponse

// ReorderRequest carries the new display ordering for catalogs and views
type ReorderRequest = internaltypes.ReorderRequest
