package inquiry

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/pkg"
)

var inquiryListSpec = pkg.ListSpec{
	DefaultSort:  "created_at DESC",
	SortFields:   []string{"id", "sender_name", "subject", "status", "created_at"},
	SearchFields: []string{"sender_name", "sender_email", "subject"},
	StatusColumn: "status",
	DateColumn:   "created_at",
}

type inquiryRepository struct {
	db *gorm.DB
}

// NewRepository creates an InquiryRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	if err := r.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return pkg.MapGormError(err)
	}
	return nil
}

func (r *inquiryRepository) GetByID(ctx context.Context, id uint) (*domain.Inquiry, error) {
	var inquiry domain.Inquiry
	if err := r.db.WithContext(ctx).First(&inquiry, id).Error; err != nil {
		return nil, pkg.MapGormError(err)
	}
	return &inquiry, nil
}

func (r *inquiryRepository) List(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.Inquiry], error) {
	return pkg.RunListQuery[domain.Inquiry](ctx, r.db, inquiryListSpec, opts)
}

func (r *inquiryRepository) UpdateStatus(ctx context.Context, id uint, status domain.InquiryStatus) error {
	res := r.db.WithContext(ctx).Model(&domain.Inquiry{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return pkg.MapGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *inquiryRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Inquiry{}, id)
	if res.Error != nil {
		return pkg.MapGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
