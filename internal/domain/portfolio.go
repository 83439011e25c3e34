package domain

// PortfolioCategory groups portfolio entries, e.g. "Residential" or "Hotel".
type PortfolioCategory struct {
	BaseModel
	Lifecycle
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Slug string `gorm:"size:120;uniqueIndex;not null" json:"slug"`
}

// PortfolioItem showcases a finished installation project.
type PortfolioItem struct {
	BaseModel
	Lifecycle
	Title       string             `gorm:"size:200;not null" json:"title"`
	Slug        string             `gorm:"size:220;uniqueIndex;not null" json:"slug"`
	Description string             `gorm:"type:text" json:"description"`
	ImageURL    string             `gorm:"size:500" json:"image_url"`
	CategoryID  uint               `gorm:"index;not null" json:"category_id"`
	Category    *PortfolioCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// PortfolioRepository is the data access interface for portfolio items.
type PortfolioRepository = CrudRepository[PortfolioItem]

// PortfolioCategoryRepository is the data access interface for portfolio categories.
type PortfolioCategoryRepository = CrudRepository[PortfolioCategory]
