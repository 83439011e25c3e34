package article

// CreateArticleRequest represents the input for publishing a new article.
type CreateArticleRequest struct {
	Title      string `json:"title" form:"title" binding:"required,min=2,max=200"`
	Slug       string `json:"slug" form:"slug" binding:"omitempty,max=220"`
	Excerpt    string `json:"excerpt" form:"excerpt" binding:"omitempty,max=500"`
	Content    string `json:"content" form:"content" binding:"required"`
	ImageURL   string `json:"image_url" form:"image_url" binding:"omitempty,url,max=500"`
	CategoryID uint   `json:"category_id" form:"category_id" binding:"required"`
}

// UpdateArticleRequest represents the input for updating an existing article.
type UpdateArticleRequest struct {
	Title      string `json:"title" form:"title" binding:"required,min=2,max=200"`
	Slug       string `json:"slug" form:"slug" binding:"omitempty,max=220"`
	Excerpt    string `json:"excerpt" form:"excerpt" binding:"omitempty,max=500"`
	Content    string `json:"content" form:"content" binding:"required"`
	ImageURL   string `json:"image_url" form:"image_url" binding:"omitempty,url,max=500"`
	CategoryID uint   `json:"category_id" form:"category_id" binding:"required"`
}

// CategoryRequest represents the input for creating or updating an article category.
type CategoryRequest struct {
	Name string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Slug string `json:"slug" form:"slug" binding:"omitempty,max=120"`
}
