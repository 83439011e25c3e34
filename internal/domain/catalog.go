package domain

// Category groups products, e.g. "Solid Wood" or "Engineering Door".
type Category struct {
	BaseModel
	Lifecycle
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Slug        string `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"size:500" json:"description"`
}

// Product is a catalog item. Doors are quoted per deal rather than sold at a
// list price, so a product carries availability (ready stock vs indent) but
// no price field; the negotiated price lives on the order.
type Product struct {
	BaseModel
	Lifecycle
	Name         string    `gorm:"size:150;not null" json:"name"`
	Slug         string    `gorm:"size:170;uniqueIndex;not null" json:"slug"`
	Description  string    `gorm:"type:text" json:"description"`
	ImageURL     string    `gorm:"size:500" json:"image_url"`
	IsReadyStock bool      `gorm:"not null;default:false" json:"is_ready_stock"`
	CategoryID   uint      `gorm:"index;not null" json:"category_id"`
	Category     *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// ProductRepository is the data access interface for products.
type ProductRepository = CrudRepository[Product]

// CategoryRepository is the data access interface for product categories.
type CategoryRepository = CrudRepository[Category]
