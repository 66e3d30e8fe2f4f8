package domain

import "time"

// Record status flag shared by every resource table. Soft deleting a row flips
// Status to StatusDeleted; restoring flips it back. Hard delete removes the row.
const (
	StatusDeleted = 0
	StatusActive  = 1
)

// BaseModel is the common base struct for all resource models. It deliberately
// does not use gorm.Model: soft delete is an explicit status flag, not the
// implicit DeletedAt behavior.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Status    int       `gorm:"not null;default:1;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageRequest holds pagination, sorting, filtering, and search parameters for
// list queries.
type PageRequest struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Search    string
	Filter    map[string]string

	// Admin list variant: include soft-deleted rows and restrict by
	// creation date range (YYYY-MM-DD, inclusive).
	IncludeDeleted bool
	CreatedFrom    string
	CreatedTo      string
}

// Pagination is the metadata block returned alongside every list response.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// PageResult pairs one page of rows with its pagination metadata. TotalPages
// is computed from the count over the same WHERE clause as the data query, so
// it is stable regardless of which page is requested.
type PageResult[T any] struct {
	Items      []T
	Pagination Pagination
}

// Fields is a partial-update payload mapping column names to new values.
// A key that is absent leaves the column untouched; a key present with a nil
// value writes NULL; anything else writes the value. Services build Fields
// from pointer-typed request DTOs, so "not provided" and "provided blank"
// stay distinguishable.
type Fields map[string]any

// GroupCount is one bucket of a grouped aggregate query.
type GroupCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// DayCount is one day of a trailing creation trend.
type DayCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// Stats holds the aggregate dashboard numbers for one resource. Computed per
// request via grouped aggregate queries, never cached.
type Stats struct {
	Total   int64        `json:"total"`
	Active  int64        `json:"active"`
	Deleted int64        `json:"deleted"`
	ByGroup []GroupCount `json:"by_group"`
	Trend   []DayCount   `json:"trend"`
}
