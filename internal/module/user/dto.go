package user

import "github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"

// CreateUserRequest represents the input for registering an admin-panel account.
type CreateUserRequest struct {
	Name     string      `json:"name" binding:"required,min=2,max=100"`
	Email    string      `json:"email" binding:"required,email,max=255"`
	Password string      `json:"password" binding:"required,min=8,max=72"`
	Role     domain.Role `json:"role" binding:"required"`
}

// UpdateUserRequest represents the input for updating an account. Password is
// optional; leaving it empty keeps the current one.
type UpdateUserRequest struct {
	Name     string      `json:"name" binding:"required,min=2,max=100"`
	Email    string      `json:"email" binding:"required,email,max=255"`
	Password string      `json:"password" binding:"omitempty,min=8,max=72"`
	Role     domain.Role `json:"role" binding:"required"`
}
