package order

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/pkg"
)

var orderListSpec = pkg.ListSpec{
	DefaultSort:  "created_at DESC",
	SortFields:   []string{"id", "invoice_number", "customer_name", "status", "created_at", "updated_at"},
	SearchFields: []string{"invoice_number", "customer_name", "customer_email"},
	StatusColumn: "status",
	DateColumn:   "created_at",
	Preloads:     []string{"Items"},
}

type orderRepository struct {
	db *gorm.DB
}

// NewRepository creates an OrderRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order and its item lines in one transaction.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	return pkg.WithTx(r.db, func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(order).Error; err != nil {
			return pkg.MapGormError(err)
		}
		return nil
	})
}

func (r *orderRepository) GetByID(ctx context.Context, id uint) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, pkg.MapGormError(err)
	}
	return &order, nil
}

func (r *orderRepository) GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("invoice_number = ?", invoiceNumber).
		First(&order).Error
	if err != nil {
		return nil, pkg.MapGormError(err)
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.Order], error) {
	return pkg.RunListQuery[domain.Order](ctx, r.db, orderListSpec, opts)
}

// Update writes the order row only; the item snapshots are immutable after
// checkout and are never saved through here.
func (r *orderRepository) Update(ctx context.Context, order *domain.Order) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(order).Error; err != nil {
		return pkg.MapGormError(err)
	}
	return nil
}

// UpdateStatus writes the status and, when provided, the negotiated deal
// price in a single update.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus, dealPrice *float64) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if dealPrice != nil {
		updates["deal_price"] = *dealPrice
	}

	res := r.db.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return pkg.MapGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the order permanently. Item lines go with it.
func (r *orderRepository) Delete(ctx context.Context, id uint) error {
	return pkg.WithTx(r.db, func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Where("order_id = ?", id).Delete(&domain.OrderItem{}).Error; err != nil {
			return pkg.MapGormError(err)
		}

		res := tx.WithContext(ctx).Delete(&domain.Order{}, id)
		if res.Error != nil {
			return pkg.MapGormError(res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
