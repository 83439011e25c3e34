package catalog

import (
	"gorm.io/gorm"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/pkg"
)

// List-query configuration for the two catalog entities. These specs are the
// entity-specific halves of the generic compiler: sortable whitelist, search
// columns, default ordering, and which optional filters apply.
var (
	productListSpec = pkg.ListSpec{
		DefaultSort:    "created_at DESC",
		SortFields:     []string{"id", "name", "created_at", "updated_at"},
		SearchFields:   []string{"name", "description"},
		SoftDelete:     true,
		CategoryColumn: "category_id",
		DateColumn:     "created_at",
		Preloads:       []string{"Category"},
	}

	categoryListSpec = pkg.ListSpec{
		DefaultSort:  "name ASC",
		SortFields:   []string{"id", "name", "created_at", "updated_at"},
		SearchFields: []string{"name"},
		SoftDelete:   true,
	}
)

// NewProductRepository creates a ProductRepository backed by the given GORM database.
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return pkg.NewCrudStore[domain.Product](db, productListSpec)
}

// NewCategoryRepository creates a CategoryRepository backed by the given GORM database.
func NewCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return pkg.NewCrudStore[domain.Category](db, categoryListSpec)
}
