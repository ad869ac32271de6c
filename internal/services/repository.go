// Package services provides repository interfaces and SQLite implementations
// for data access. This layer is the persistence facade consumed by the HTTP
// API; it holds no state of its own between calls.
package services

import "errors"

// ListOptions controls pagination and sorting for list queries.
type ListOptions struct {
	Limit     int    // Max results per page (default 100, max 1000).
	Offset    int    // Number of results to skip.
	SortBy    string // Column name (validated per-repository).
	SortOrder string // "asc" or "desc" (default "asc").
}

// ListResult wraps a paginated result set with a total count. Total always
// reflects the filter only, never the pagination, so callers can compute
// page counts.
type ListResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// ErrNotFound is returned when the requested record does not exist. It is
// not a failure; callers are expected to check for it explicitly.
var ErrNotFound = errors.New("not found")

// normalizeListOptions applies defaults and caps to list options.
func normalizeListOptions(opts ListOptions) ListOptions {
	if opts.Limit <= 0 {
		opts.Limit = 100
	}
	if opts.Limit > 1000 {
		opts.Limit = 1000
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	if opts.SortOrder != "desc" {
		opts.SortOrder = "asc"
	}
	return opts
}
