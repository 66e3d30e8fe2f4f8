package crud

// Resource is the per-entity configuration laid over the generic repository:
// display name, default ordering, and the column allow-lists that keep every
// dynamically assembled query free of unvalidated identifiers. Each resource
// is a configuration value, not a hand-written duplicate of the query logic.
type Resource struct {
	// Name is the singular display name used in error messages ("City",
	// "Enquiry").
	Name string

	// DefaultSort is a trusted ORDER BY constant such as "created_at DESC",
	// applied whenever the requested sort column is not allow-listed.
	DefaultSort string

	// SortFields, FilterFields, and SearchFields are the closed sets of
	// column names accepted for sorting, exact-match filtering, and
	// free-text LIKE search. Requested identifiers outside these sets never
	// reach the generated SQL.
	SortFields   []string
	FilterFields []string
	SearchFields []string

	// UniqueFields are columns with a schema-level unique index. Updates
	// pre-check them (excluding the target row) and fail with a conflict
	// before writing; the index itself remains the authoritative guard.
	UniqueFields []string

	// StatsGroupColumn is the categorical column for the grouped breakdown
	// in Stats. Empty disables the breakdown.
	StatsGroupColumn string

	// TrendDays is the length of the trailing creation trend in Stats.
	// Zero means the default of 7.
	TrendDays int

	// Preloads are association names loaded on detail and list reads.
	Preloads []string
}

func (r Resource) trendDays() int {
	if r.TrendDays <= 0 {
		return 7
	}
	return r.TrendDays
}
