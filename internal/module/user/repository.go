package user

import (
	"context"

	"gorm.io/gorm"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/pkg"
)

var userListSpec = pkg.ListSpec{
	DefaultSort:  "created_at DESC",
	SortFields:   []string{"id", "name", "email", "role", "created_at"},
	SearchFields: []string{"name", "email"},
	StatusColumn: "role",
}

type userRepository struct {
	db *gorm.DB
}

// NewRepository creates a UserRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return pkg.MapGormError(err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, pkg.MapGormError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, pkg.MapGormError(err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.User], error) {
	return pkg.RunListQuery[domain.User](ctx, r.db, userListSpec, opts)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return pkg.MapGormError(err)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.User{}, id)
	if res.Error != nil {
		return pkg.MapGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
