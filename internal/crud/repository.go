package crud

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/estateops/backoffice/internal/domain"
	"github.com/estateops/backoffice/internal/pkg"
)

// validColumn matches only alphanumeric characters and underscores. Column
// names in update payloads come from service code, not request input, but are
// still validated before appearing as SQL identifiers.
var validColumn = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Repository is the generic query core shared by every resource. It assembles
// parameterized list, partial-update, and bulk statements from the Resource
// configuration; values are always bound positionally, never concatenated
// into query text.
type Repository[T any] struct {
	db  *gorm.DB
	res Resource
}

// New creates a Repository for one resource configuration.
func New[T any](db *gorm.DB, res Resource) *Repository[T] {
	return &Repository[T]{db: db, res: res}
}

// DB exposes the underlying handle for resource-specific queries built on top
// of the core.
func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}

// List returns one page of rows plus pagination metadata. The COUNT(*) and
// the data query share the same WHERE clause, so the page count is stable
// regardless of which page is requested. Soft-deleted rows are excluded
// unless the request asks for them.
func (r *Repository[T]) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[T], error) {
	base := r.db.WithContext(ctx).Model(new(T)).Scopes(
		pkg.Visible(req),
		pkg.Filter(req, r.res.FilterFields),
		pkg.Search(req, r.res.SearchFields),
		pkg.CreatedBetween(req),
	)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, r.mapError(err)
	}

	data := base.Scopes(
		pkg.Sort(req, r.res.SortFields, r.res.DefaultSort),
		pkg.Paginate(req),
	)
	for _, preload := range r.res.Preloads {
		data = data.Preload(preload)
	}

	var items []T
	if err := data.Find(&items).Error; err != nil {
		return nil, r.mapError(err)
	}

	return pkg.NewPageResult(items, total, req), nil
}

// GetByID retrieves a row by primary key, regardless of its status flag.
func (r *Repository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	q := r.db.WithContext(ctx)
	for _, preload := range r.res.Preloads {
		q = q.Preload(preload)
	}

	var record T
	if err := q.First(&record, id).Error; err != nil {
		return nil, r.mapError(err)
	}
	return &record, nil
}

// GetBy retrieves a row by an alternate key such as slug or cuid. The column
// name must be a trusted constant; it is validated before entering SQL text.
func (r *Repository[T]) GetBy(ctx context.Context, column string, value any) (*T, error) {
	if !validColumn.MatchString(column) {
		return nil, domain.NewAppError(domain.CodeInternal, "invalid lookup column", nil)
	}

	q := r.db.WithContext(ctx)
	for _, preload := range r.res.Preloads {
		q = q.Preload(preload)
	}

	var record T
	if err := q.Where(column+" = ?", value).First(&record).Error; err != nil {
		return nil, r.mapError(err)
	}
	return &record, nil
}

// Create inserts a new row. A schema-level unique index violation is mapped
// to a conflict.
func (r *Repository[T]) Create(ctx context.Context, record *T) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return r.mapError(err)
	}
	return nil
}

// UpdateFields applies a partial update covering exactly the supplied
// columns: SET col1 = ?, col2 = ?, ... WHERE id = ?. The target row must
// exist, the field set must be non-empty, and unique columns are pre-checked
// against every other row before the write.
func (r *Repository[T]) UpdateFields(ctx context.Context, id uint, fields domain.Fields) error {
	if len(fields) == 0 {
		return domain.NewAppError(domain.CodeValidation, "no fields to update", nil)
	}
	for col := range fields {
		if !validColumn.MatchString(col) {
			return domain.NewAppError(domain.CodeValidation, "invalid field name", nil)
		}
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return r.mapError(err)
	}
	if count == 0 {
		return r.notFound()
	}

	for _, col := range r.res.UniqueFields {
		value, ok := fields[col]
		if !ok || value == nil {
			continue
		}
		taken, err := r.Exists(ctx, col, value, id)
		if err != nil {
			return err
		}
		if taken {
			return r.conflict(col)
		}
	}

	if err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).
		Updates(map[string]any(fields)).Error; err != nil {
		return r.mapError(err)
	}
	return nil
}

// SoftDelete flips the status flag to deleted.
func (r *Repository[T]) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).
		Update("status", domain.StatusDeleted)
	if result.Error != nil {
		return r.mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return r.notFound()
	}
	return nil
}

// HardDelete removes the row entirely. Terminal.
func (r *Repository[T]) HardDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return r.mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return r.notFound()
	}
	return nil
}

// Restore flips a soft-deleted row back to active. A row that is missing or
// not currently deleted reports not-found.
func (r *Repository[T]) Restore(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(new(T)).
		Where("id = ? AND status = ?", id, domain.StatusDeleted).
		Update("status", domain.StatusActive)
	if result.Error != nil {
		return r.mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return r.notFound()
	}
	return nil
}

// BulkUpdate applies the same field values to every listed id in one
// statement with an IN clause sized to len(ids). The returned count is what
// the driver reports; nonexistent ids are silently skipped.
func (r *Repository[T]) BulkUpdate(ctx context.Context, ids []uint, fields domain.Fields) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.NewAppError(domain.CodeValidation, "ids are required", nil)
	}
	if len(fields) == 0 {
		return 0, domain.NewAppError(domain.CodeValidation, "no fields to update", nil)
	}
	for col := range fields {
		if !validColumn.MatchString(col) {
			return 0, domain.NewAppError(domain.CodeValidation, "invalid field name", nil)
		}
	}

	result := r.db.WithContext(ctx).Model(new(T)).Where("id IN ?", ids).
		Updates(map[string]any(fields))
	if result.Error != nil {
		return 0, r.mapError(result.Error)
	}
	return result.RowsAffected, nil
}

// BulkSoftDelete soft-deletes every listed id in one statement.
func (r *Repository[T]) BulkSoftDelete(ctx context.Context, ids []uint) (int64, error) {
	return r.BulkUpdate(ctx, ids, domain.Fields{"status": domain.StatusDeleted})
}

// BulkHardDelete removes every listed id in one statement.
func (r *Repository[T]) BulkHardDelete(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.NewAppError(domain.CodeValidation, "ids are required", nil)
	}

	result := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(new(T))
	if result.Error != nil {
		return 0, r.mapError(result.Error)
	}
	return result.RowsAffected, nil
}

// Exists reports whether a row other than excludeID has the given value in
// the column. Pre-check only; unique indexes stay authoritative under
// concurrent writers.
func (r *Repository[T]) Exists(ctx context.Context, column string, value any, excludeID uint) (bool, error) {
	if !validColumn.MatchString(column) {
		return false, domain.NewAppError(domain.CodeInternal, "invalid lookup column", nil)
	}

	var count int64
	q := r.db.WithContext(ctx).Model(new(T)).Where(column+" = ?", value)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, r.mapError(err)
	}
	return count > 0, nil
}

// Stats computes the aggregate dashboard numbers: totals, active/deleted
// split, a breakdown by the configured categorical column, and a trailing
// creation trend. Nothing is cached; every call hits the database.
func (r *Repository[T]) Stats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats

	if err := r.db.WithContext(ctx).Model(new(T)).Count(&stats.Total).Error; err != nil {
		return nil, r.mapError(err)
	}
	if err := r.db.WithContext(ctx).Model(new(T)).
		Where("status = ?", domain.StatusActive).
		Count(&stats.Active).Error; err != nil {
		return nil, r.mapError(err)
	}
	stats.Deleted = stats.Total - stats.Active

	if col := r.res.StatsGroupColumn; col != "" {
		if !validColumn.MatchString(col) {
			return nil, domain.NewAppError(domain.CodeInternal, "invalid stats column", nil)
		}
		if err := r.db.WithContext(ctx).Model(new(T)).
			Select(col+" AS value, COUNT(*) AS count").
			Where("status = ?", domain.StatusActive).
			Group(col).
			Order("count DESC").
			Scan(&stats.ByGroup).Error; err != nil {
			return nil, r.mapError(err)
		}
	}

	days := r.res.trendDays()
	now := time.Now()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -(days - 1))
	if err := r.db.WithContext(ctx).Model(new(T)).
		Select("DATE(created_at) AS day, COUNT(*) AS count").
		Where("created_at >= ?", cutoff).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&stats.Trend).Error; err != nil {
		return nil, r.mapError(err)
	}

	return &stats, nil
}

// notFound builds the resource-specific not-found error.
func (r *Repository[T]) notFound() error {
	return domain.NewAppError(domain.CodeNotFound, r.res.Name+" not found", nil)
}

// conflict builds the resource-specific uniqueness conflict error.
func (r *Repository[T]) conflict(column string) error {
	return domain.NewAppError(domain.CodeAlreadyExists,
		strings.ToLower(r.res.Name)+" "+column+" already exists", nil)
}

// mapError converts GORM errors to domain errors.
func (r *Repository[T]) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.notFound()
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, strings.ToLower(r.res.Name)+" already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. This is needed because not all GORM dialectors translate
// driver-level errors to gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
