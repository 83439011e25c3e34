package portfolio

// ItemRequest represents the input for creating or updating a portfolio item.
type ItemRequest struct {
	Title       string `json:"title" form:"title" binding:"required,min=2,max=200"`
	Slug        string `json:"slug" form:"slug" binding:"omitempty,max=220"`
	Description string `json:"description" form:"description" binding:"omitempty"`
	ImageURL    string `json:"image_url" form:"image_url" binding:"omitempty,url,max=500"`
	CategoryID  uint   `json:"category_id" form:"category_id" binding:"required"`
}

// CategoryRequest represents the input for creating or updating a portfolio category.
type CategoryRequest struct {
	Name string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Slug string `json:"slug" form:"slug" binding:"omitempty,max=120"`
}
