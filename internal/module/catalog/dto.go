package catalog

// CreateProductRequest represents the input for creating a new product.
type CreateProductRequest struct {
	Name         string `json:"name" form:"name" binding:"required,min=2,max=150"`
	Slug         string `json:"slug" form:"slug" binding:"omitempty,max=170"`
	Description  string `json:"description" form:"description"`
	ImageURL     string `json:"image_url" form:"image_url" binding:"omitempty,url,max=500"`
	IsReadyStock bool   `json:"is_ready_stock" form:"is_ready_stock"`
	CategoryID   uint   `json:"category_id" form:"category_id" binding:"required"`
}

// UpdateProductRequest represents the input for updating an existing product.
type UpdateProductRequest struct {
	Name         string `json:"name" form:"name" binding:"required,min=2,max=150"`
	Slug         string `json:"slug" form:"slug" binding:"omitempty,max=170"`
	Description  string `json:"description" form:"description"`
	ImageURL     string `json:"image_url" form:"image_url" binding:"omitempty,url,max=500"`
	IsReadyStock bool   `json:"is_ready_stock" form:"is_ready_stock"`
	CategoryID   uint   `json:"category_id" form:"category_id" binding:"required"`
}

// CreateCategoryRequest represents the input for creating a new category.
type CreateCategoryRequest struct {
	Name        string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Slug        string `json:"slug" form:"slug" binding:"omitempty,max=120"`
	Description string `json:"description" form:"description" binding:"omitempty,max=500"`
}

// UpdateCategoryRequest represents the input for updating an existing category.
type UpdateCategoryRequest struct {
	Name        string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Slug        string `json:"slug" form:"slug" binding:"omitempty,max=120"`
	Description string `json:"description" form:"description" binding:"omitempty,max=500"`
}
