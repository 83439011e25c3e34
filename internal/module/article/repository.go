package article

import (
	"gorm.io/gorm"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/pkg"
)

var (
	articleListSpec = pkg.ListSpec{
		DefaultSort:    "created_at DESC",
		SortFields:     []string{"id", "title", "created_at", "updated_at"},
		SearchFields:   []string{"title", "content"},
		SoftDelete:     true,
		CategoryColumn: "category_id",
		DateColumn:     "created_at",
		Preloads:       []string{"Category"},
	}

	articleCategoryListSpec = pkg.ListSpec{
		DefaultSort:  "name ASC",
		SortFields:   []string{"id", "name", "created_at", "updated_at"},
		SearchFields: []string{"name"},
		SoftDelete:   true,
	}
)

// NewArticleRepository creates an ArticleRepository backed by the given GORM database.
func NewArticleRepository(db *gorm.DB) domain.ArticleRepository {
	return pkg.NewCrudStore[domain.Article](db, articleListSpec)
}

// NewCategoryRepository creates an ArticleCategoryRepository backed by the given GORM database.
func NewCategoryRepository(db *gorm.DB) domain.ArticleCategoryRepository {
	return pkg.NewCrudStore[domain.ArticleCategory](db, articleCategoryListSpec)
}
