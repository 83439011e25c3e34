package auth

import "github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"

// LoginRequest represents the credentials for an admin-panel login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the signed access token back to the client.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        *domain.User `json:"user"`
}
