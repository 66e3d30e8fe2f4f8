package pkg

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/estateops/backoffice/internal/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// reservedParams lists query parameter names used for pagination, sorting,
// search, and the admin list variant; everything else becomes a filter key.
var reservedParams = map[string]bool{
	"page":            true,
	"limit":           true,
	"search":          true,
	"q":               true,
	"sortBy":          true,
	"sortOrder":       true,
	"include_deleted": true,
	"created_from":    true,
	"created_to":      true,
}

// validFieldName matches only alphanumeric characters and underscores.
var validFieldName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ParsePageRequest extracts pagination, sorting, search, and filtering
// parameters from query params. "q" is accepted as an alias for "search".
// Leftover query parameters become filter candidates; repositories decide
// which of them are allow-listed.
func ParsePageRequest(c *gin.Context) domain.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if page < 1 {
		page = defaultPage
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	search := c.Query("search")
	if search == "" {
		search = c.Query("q")
	}

	filter := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if reservedParams[key] {
			continue
		}
		if len(values) > 0 && values[0] != "" {
			filter[key] = values[0]
		}
	}

	includeDeleted := false
	switch strings.ToLower(c.Query("include_deleted")) {
	case "1", "true", "yes":
		includeDeleted = true
	}

	return domain.PageRequest{
		Page:           page,
		Limit:          limit,
		SortBy:         c.Query("sortBy"),
		SortOrder:      c.Query("sortOrder"),
		Search:         search,
		Filter:         filter,
		IncludeDeleted: includeDeleted,
		CreatedFrom:    c.Query("created_from"),
		CreatedTo:      c.Query("created_to"),
	}
}

// Paginate returns a GORM scope that applies LIMIT and OFFSET based on the
// page request. offset = (page-1) * limit.
func Paginate(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (req.Page - 1) * req.Limit
		return db.Offset(offset).Limit(req.Limit)
	}
}

// Visible returns a GORM scope that excludes soft-deleted rows unless the
// request explicitly asks for them.
func Visible(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if req.IncludeDeleted {
			return db
		}
		return db.Where("status = ?", domain.StatusActive)
	}
}

// Sort returns a GORM scope that applies ORDER BY based on the page request.
// A requested column outside the allowed list falls back to the resource's
// default ordering; an unvalidated identifier is never passed into SQL text.
// Direction is normalized to ASC/DESC; unknown values fall back to DESC.
func Sort(req domain.PageRequest, allowed []string, fallback string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		field := strings.TrimSpace(req.SortBy)
		if field == "" || !validFieldName.MatchString(field) || !isAllowed(field, allowed) {
			return db.Order(fallback)
		}
		return db.Order(field + " " + normalizeDirection(req.SortOrder))
	}
}

// Filter returns a GORM scope that applies WHERE conditions for every
// non-empty filter value whose key is in the allowed list, one bound
// parameter per value, in allow-list declaration order. Unrecognized keys
// never reach the generated SQL.
func Filter(req domain.PageRequest, allowed []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, col := range allowed {
			value, ok := req.Filter[col]
			if !ok || value == "" {
				continue
			}
			db = db.Where(col+" = ?", value)
		}
		return db
	}
}

// Search returns a GORM scope that applies a free-text LIKE predicate across
// a fixed set of columns, OR-joined within a single parenthesized group.
func Search(req domain.PageRequest, columns []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term := strings.TrimSpace(req.Search)
		if term == "" || len(columns) == 0 {
			return db
		}

		pattern := "%" + term + "%"
		predicates := make([]string, 0, len(columns))
		args := make([]any, 0, len(columns))
		for _, col := range columns {
			predicates = append(predicates, col+" LIKE ?")
			args = append(args, pattern)
		}
		return db.Where("("+strings.Join(predicates, " OR ")+")", args...)
	}
}

// CreatedBetween returns a GORM scope restricting rows to an inclusive
// creation date range. Bounds are plain YYYY-MM-DD strings bound as
// parameters; empty bounds are skipped.
func CreatedBetween(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if from := strings.TrimSpace(req.CreatedFrom); from != "" {
			db = db.Where("DATE(created_at) >= ?", from)
		}
		if to := strings.TrimSpace(req.CreatedTo); to != "" {
			db = db.Where("DATE(created_at) <= ?", to)
		}
		return db
	}
}

// NewPageResult creates a PageResult with computed total pages.
func NewPageResult[T any](items []T, total int64, req domain.PageRequest) *domain.PageResult[T] {
	totalPages := 0
	if req.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(req.Limit)))
	}

	if items == nil {
		items = []T{}
	}

	return &domain.PageResult[T]{
		Items: items,
		Pagination: domain.Pagination{
			CurrentPage:  req.Page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: req.Limit,
		},
	}
}

// normalizeDirection maps a case-insensitive sort direction to exactly ASC or
// DESC, defaulting to DESC for unknown values.
func normalizeDirection(dir string) string {
	switch strings.ToLower(strings.TrimSpace(dir)) {
	case "asc":
		return "ASC"
	default:
		return "DESC"
	}
}

// isAllowed checks if a field name is in the allowed list.
func isAllowed(field string, allowed []string) bool {
	return slices.Contains(allowed, field)
}
