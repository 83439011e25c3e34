package portfolio

import (
	"gorm.io/gorm"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/pkg"
)

var (
	itemListSpec = pkg.ListSpec{
		DefaultSort:    "created_at DESC",
		SortFields:     []string{"id", "title", "created_at", "updated_at"},
		SearchFields:   []string{"title", "description"},
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

// NewItemRepository creates a PortfolioRepository backed by the given GORM database.
func NewItemRepository(db *gorm.DB) domain.PortfolioRepository {
	return pkg.NewCrudStore[domain.PortfolioItem](db, itemListSpec)
}

// NewCategoryRepository creates a PortfolioCategoryRepository backed by the given GORM database.
func NewCategoryRepository(db *gorm.DB) domain.PortfolioCategoryRepository {
	return pkg.NewCrudStore[domain.PortfolioCategory](db, categoryListSpec)
}
