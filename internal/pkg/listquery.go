package pkg

import (
	"context"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// validFieldName matches only alphanumeric characters and underscores.
var validFieldName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ListSpec configures the query option compiler for one entity kind:
// which columns are sortable and searchable, the default ordering, and
// which optional filters the entity supports. A zero column name disables
// the corresponding filter.
type ListSpec struct {
	DefaultSort  string
	SortFields   []string
	SearchFields []string
	SoftDelete   bool
	// CategoryColumn enables the foreign-key equality filter (ListOptions.CategoryID).
	CategoryColumn string
	// StatusColumn enables the enum equality filter (ListOptions.StatusFilter)
	// for entities with a workflow status instead of a trash tier.
	StatusColumn string
	// DateColumn enables the date-range filter.
	DateColumn string
	Preloads   []string
}

// ParseListOptions extracts list-query options from query parameters.
// Malformed numeric values fall back to defaults; list endpoints degrade
// gracefully on sloppy query strings instead of erroring.
func ParseListOptions(c *gin.Context) domain.ListOptions {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	var categoryID uint
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			categoryID = uint(id)
		}
	}

	status := strings.TrimSpace(c.Query("status"))

	opts := domain.ListOptions{
		Status:       status,
		StatusFilter: status,
		Search:       strings.TrimSpace(c.Query("q")),
		Sort:         strings.TrimSpace(c.Query("sort")),
		Page:         page,
		Limit:        limit,
		CategoryID:   categoryID,
		DateFrom:     parseDateParam(c.Query("date_from"), false),
		DateTo:       parseDateParam(c.Query("date_to"), true),
	}
	NormalizeListOptions(&opts)
	return opts
}

// parseDateParam accepts RFC 3339 timestamps or plain dates. A plain date
// used as a range end is widened to the end of that day so "to" is inclusive.
func parseDateParam(raw string, endOfDay bool) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t
}

// NormalizeListOptions coerces page and limit to sane positive values.
// The limit cap bounds worst-case page size regardless of caller input.
func NormalizeListOptions(opts *domain.ListOptions) {
	if opts.Page < 1 {
		opts.Page = defaultPage
	}
	if opts.Limit < 1 {
		opts.Limit = defaultLimit
	}
	if opts.Limit > maxLimit {
		opts.Limit = maxLimit
	}
}

// FilterScope compiles the option bag into a gorm scope. The same scope
// backs both the page fetch and the count so the two stay consistent.
func (s ListSpec) FilterScope(opts domain.ListOptions) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if s.SoftDelete {
			if opts.Status == domain.StatusTrashed {
				db = db.Where("deleted_at IS NOT NULL")
			} else {
				db = db.Where("deleted_at IS NULL")
			}
		}

		if term := strings.TrimSpace(opts.Search); term != "" && len(s.SearchFields) > 0 {
			like := "%" + strings.ToLower(term) + "%"
			clauses := make([]string, 0, len(s.SearchFields))
			args := make([]any, 0, len(s.SearchFields))
			for _, field := range s.SearchFields {
				clauses = append(clauses, "LOWER("+field+") LIKE ?")
				args = append(args, like)
			}
			db = db.Where(strings.Join(clauses, " OR "), args...)
		}

		if s.CategoryColumn != "" && opts.CategoryID != 0 {
			db = db.Where(s.CategoryColumn+" = ?", opts.CategoryID)
		}

		if s.StatusColumn != "" && opts.StatusFilter != "" {
			db = db.Where(s.StatusColumn+" = ?", opts.StatusFilter)
		}

		if s.DateColumn != "" {
			if opts.DateFrom != nil {
				db = db.Where(s.DateColumn+" >= ?", *opts.DateFrom)
			}
			if opts.DateTo != nil {
				db = db.Where(s.DateColumn+" <= ?", *opts.DateTo)
			}
		}

		return db
	}
}

// OrderScope compiles the sort option. The sort key has the form
// "<field>-<asc|desc>"; an unknown field or direction falls back to the
// entity's default ordering. The fallback is a defined behavior, not an
// error: bogus sort keys must not break list endpoints.
func (s ListSpec) OrderScope(opts domain.ListOptions) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		field, direction, ok := splitSortKey(opts.Sort)
		if !ok ||
			!validFieldName.MatchString(field) ||
			!slices.Contains(s.SortFields, field) {
			if s.DefaultSort != "" {
				return db.Order(s.DefaultSort)
			}
			return db
		}
		return db.Order(field + " " + direction)
	}
}

// splitSortKey decomposes "field-asc" / "field-desc". Column names never
// contain dashes, so the last dash is the separator.
func splitSortKey(sort string) (field, direction string, ok bool) {
	idx := strings.LastIndex(sort, "-")
	if idx <= 0 {
		return "", "", false
	}
	field = strings.TrimSpace(sort[:idx])
	direction = strings.ToLower(strings.TrimSpace(sort[idx+1:]))
	if direction != "asc" && direction != "desc" {
		return "", "", false
	}
	return field, direction, true
}

// Paginate returns a gorm scope applying LIMIT and OFFSET.
// Options are assumed normalized.
func Paginate(opts domain.ListOptions) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (opts.Page - 1) * opts.Limit
		return db.Offset(offset).Limit(opts.Limit)
	}
}

// RunListQuery executes the compiled list query for one entity kind: an
// unbounded count and a bounded, ordered page fetch over identical
// predicates. The two reads are independent; a concurrent writer between
// them yields a transient, acceptable inconsistency.
func RunListQuery[T any](ctx context.Context, db *gorm.DB, spec ListSpec, opts domain.ListOptions) (*domain.PageResult[T], error) {
	NormalizeListOptions(&opts)

	var model T

	var total int64
	if err := db.WithContext(ctx).Model(&model).
		Scopes(spec.FilterScope(opts)).
		Count(&total).Error; err != nil {
		return nil, MapGormError(err)
	}

	query := db.WithContext(ctx).Model(&model).
		Scopes(spec.FilterScope(opts), spec.OrderScope(opts), Paginate(opts))
	for _, preload := range spec.Preloads {
		query = query.Preload(preload)
	}

	var rows []T
	if err := query.Find(&rows).Error; err != nil {
		return nil, MapGormError(err)
	}

	return NewPageResult(rows, total, opts), nil
}

// NewPageResult assembles a PageResult with computed TotalPages.
// Data is never nil so JSON encodes an empty array, not null.
func NewPageResult[T any](data []T, total int64, opts domain.ListOptions) *domain.PageResult[T] {
	totalPages := 0
	if opts.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(opts.Limit)))
	}

	if data == nil {
		data = []T{}
	}

	return &domain.PageResult[T]{
		Data:       data,
		TotalCount: total,
		Page:       opts.Page,
		Limit:      opts.Limit,
		TotalPages: totalPages,
	}
}
