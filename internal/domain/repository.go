package domain

import "context"

// Repository is the uniform data access contract every resource repository
// satisfies. Implementations must acquire and release database connections
// per operation and never interpolate values into SQL text; only allow-listed
// column names may appear as bare identifiers.
type Repository[T any] interface {
	List(ctx context.Context, req PageRequest) (*PageResult[T], error)
	GetByID(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, record *T) error

	// UpdateFields applies a partial update covering exactly the supplied
	// columns. An empty field set is a caller error, not a silent no-op.
	UpdateFields(ctx context.Context, id uint, fields Fields) error

	SoftDelete(ctx context.Context, id uint) error
	HardDelete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) error

	// Bulk operations issue one statement with an IN clause sized to ids.
	// The returned count is what the driver reports; nonexistent ids are
	// silently skipped.
	BulkUpdate(ctx context.Context, ids []uint, fields Fields) (int64, error)
	BulkSoftDelete(ctx context.Context, ids []uint) (int64, error)
	BulkHardDelete(ctx context.Context, ids []uint) (int64, error)

	// Exists reports whether a row other than excludeID has the given value
	// in an allow-listed unique column. Used as a pre-check only; the schema
	// level unique index remains the authoritative conflict signal.
	Exists(ctx context.Context, column string, value any, excludeID uint) (bool, error)

	Stats(ctx context.Context) (*Stats, error)
}
