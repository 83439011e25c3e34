package app

import (
	"gorm.io/gorm"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
)

// Migrate creates or updates the schema for every entity. Debug mode runs it
// automatically on startup; other modes run it through the migrate command.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Category{},
		&domain.Product{},
		&domain.ArticleCategory{},
		&domain.Article{},
		&domain.PortfolioCategory{},
		&domain.PortfolioItem{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.Inquiry{},
		&domain.User{},
	)
}
