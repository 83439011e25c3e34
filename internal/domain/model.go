package domain

import "time"

// BaseModel is the common base struct for all domain models.
// It replaces gorm.Model so that soft deletion stays an explicit, per-entity
// concern (Lifecycle) instead of gorm's implicit DeletedAt filtering.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Lifecycle carries the two-state visibility marker for content entities.
// A nil DeletedAt means the entity is active; non-nil means trashed.
// It is composed into each soft-deletable entity rather than inherited, so
// orders and users (which have no trash tier) are not forced to carry it.
type Lifecycle struct {
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// Trashed reports whether the entity is in the trashed partition.
func (l Lifecycle) Trashed() bool {
	return l.DeletedAt != nil
}

// Visibility statuses accepted by list queries for soft-deletable entities.
const (
	StatusActive  = "active"
	StatusTrashed = "trashed"
)

// ListOptions holds the uniform, caller-supplied options of a list query:
// visibility status, free-text search, sort key, pagination, and the
// optional foreign-key / status / date-range filters.
//
// All fields are best-effort: malformed or out-of-range values are replaced
// with defaults by the compiler, never rejected.
type ListOptions struct {
	Status       string
	Search       string
	Sort         string
	Page         int
	Limit        int
	CategoryID   uint
	StatusFilter string
	DateFrom     *time.Time
	DateTo       *time.Time
}

// PageResult is the outcome of a list query: one page of data plus the
// total size of the filtered set, independent of page/limit.
type PageResult[T any] struct {
	Data       []T   `json:"data"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}
