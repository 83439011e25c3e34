package domain

// ArticleCategory groups articles on the content side of the site.
type ArticleCategory struct {
	BaseModel
	Lifecycle
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Slug string `gorm:"size:120;uniqueIndex;not null" json:"slug"`
}

// Article is a published piece of storefront content.
type Article struct {
	BaseModel
	Lifecycle
	Title      string           `gorm:"size:200;not null" json:"title"`
	Slug       string           `gorm:"size:220;uniqueIndex;not null" json:"slug"`
	Excerpt    string           `gorm:"size:500" json:"excerpt"`
	Content    string           `gorm:"type:text" json:"content"`
	ImageURL   string           `gorm:"size:500" json:"image_url"`
	CategoryID uint             `gorm:"index;not null" json:"category_id"`
	Category   *ArticleCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// ArticleRepository is the data access interface for articles.
type ArticleRepository = CrudRepository[Article]

// ArticleCategoryRepository is the data access interface for article categories.
type ArticleCategoryRepository = CrudRepository[ArticleCategory]
