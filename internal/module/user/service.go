package user

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
)

// Service defines the user account business operations.
type Service interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error)
	GetUser(ctx context.Context, id uint) (*domain.User, error)
	ListUsers(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.User], error)
	UpdateUser(ctx context.Context, id uint, req UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	users domain.UserRepository
}

// NewService creates a user Service over the given repository.
func NewService(users domain.UserRepository) Service {
	return &userService{users: users}
}

func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	if !req.Role.Valid() {
		return nil, domain.NewAppError(domain.CodeValidation,
			fmt.Sprintf("unknown role %q", req.Role), nil)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         req.Role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.User], error) {
	return s.users.List(ctx, opts)
}

func (s *userService) UpdateUser(ctx context.Context, id uint, req UpdateUserRequest) (*domain.User, error) {
	if !req.Role.Valid() {
		return nil, domain.NewAppError(domain.CodeValidation,
			fmt.Sprintf("unknown role %q", req.Role), nil)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = strings.TrimSpace(req.Name)
	user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	user.Role = req.Role

	if req.Password != "" {
		hash, err := hashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	return s.users.Delete(ctx, id)
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", domain.NewAppError(domain.CodeInternal, "failed to hash password", err)
	}
	return string(hash), nil
}
