package domain

import "context"

// SoftDeletable is satisfied by every entity that embeds Lifecycle.
type SoftDeletable interface {
	Trashed() bool
}

// CrudRepository is the uniform data-access contract shared by all
// soft-deletable content entities. Reads are unscoped: GetByID returns
// trashed rows too, and List partitions rows by the status option.
//
// SoftDelete, Restore, and ForceDelete report ErrNotFound for unknown ids
// and never create rows. Restore of an already-active entity and SoftDelete
// of an already-trashed one are no-ops.
type CrudRepository[T SoftDeletable] interface {
	Create(ctx context.Context, entity *T) error
	GetByID(ctx context.Context, id uint) (*T, error)
	GetBySlug(ctx context.Context, slug string) (*T, error)
	List(ctx context.Context, opts ListOptions) (*PageResult[T], error)
	Update(ctx context.Context, entity *T) error
	SoftDelete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) error
	ForceDelete(ctx context.Context, id uint) error
}
