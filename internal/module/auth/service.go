package auth

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/middleware"
)

// Service defines the authentication operations.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
}

type authService struct {
	users       domain.UserRepository
	secret      string
	tokenExpiry time.Duration
	now         func() time.Time
}

// NewService creates an auth Service that signs tokens with the given HMAC
// secret and expiry.
func NewService(users domain.UserRepository, secret string, tokenExpiry time.Duration) Service {
	return &authService{
		users:       users,
		secret:      secret,
		tokenExpiry: tokenExpiry,
		now:         time.Now,
	}
}

// Login verifies the credentials and returns a signed access token. Unknown
// emails and wrong passwords produce the same error so the endpoint does not
// leak which accounts exist.
func (s *authService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeUnauthorized, "invalid email or password", nil)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.NewAppError(domain.CodeUnauthorized, "invalid email or password", nil)
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to sign access token", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenExpiry.Seconds()),
		User:        user,
	}, nil
}

func (s *authService) signToken(user *domain.User) (string, error) {
	now := s.now()
	claims := middleware.AuthClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
