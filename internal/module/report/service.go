package report

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/pkg"
)

// StatusCount is one row of a grouped status aggregate.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// MonthlyRevenue is the summed deal price of orders per calendar month.
type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// TopProduct ranks a product by total ordered quantity.
type TopProduct struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
}

// Summary is the admin dashboard aggregate.
type Summary struct {
	OrdersByStatus    []StatusCount `json:"orders_by_status"`
	InquiriesByStatus []StatusCount `json:"inquiries_by_status"`
	TopProducts       []TopProduct  `json:"top_products"`
	ActiveProducts    int64         `json:"active_products"`
	TrashedProducts   int64         `json:"trashed_products"`
}

// SalesReport is the revenue aggregate for a date range.
type SalesReport struct {
	From    *time.Time       `json:"from,omitempty"`
	To      *time.Time       `json:"to,omitempty"`
	Monthly []MonthlyRevenue `json:"monthly"`
}

// Service defines the reporting aggregate queries.
type Service interface {
	Summary(ctx context.Context) (*Summary, error)
	Sales(ctx context.Context, from, to *time.Time) (*SalesReport, error)
}

type reportService struct {
	db *gorm.DB
}

// NewService creates a report Service over the given GORM database.
func NewService(db *gorm.DB) Service {
	return &reportService{db: db}
}

const topProductLimit = 5

func (s *reportService) Summary(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		OrdersByStatus:    []StatusCount{},
		InquiriesByStatus: []StatusCount{},
		TopProducts:       []TopProduct{},
	}

	err := s.db.WithContext(ctx).Model(&domain.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Scan(&summary.OrdersByStatus).Error
	if err != nil {
		return nil, pkg.MapGormError(err)
	}

	err = s.db.WithContext(ctx).Model(&domain.Inquiry{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Scan(&summary.InquiriesByStatus).Error
	if err != nil {
		return nil, pkg.MapGormError(err)
	}

	err = s.db.WithContext(ctx).Model(&domain.OrderItem{}).
		Select("product_id, product_name, SUM(quantity) AS quantity").
		Group("product_id, product_name").
		Order("quantity DESC").
		Limit(topProductLimit).
		Scan(&summary.TopProducts).Error
	if err != nil {
		return nil, pkg.MapGormError(err)
	}

	err = s.db.WithContext(ctx).Model(&domain.Product{}).
		Where("deleted_at IS NULL").
		Count(&summary.ActiveProducts).Error
	if err != nil {
		return nil, pkg.MapGormError(err)
	}

	err = s.db.WithContext(ctx).Model(&domain.Product{}).
		Where("deleted_at IS NOT NULL").
		Count(&summary.TrashedProducts).Error
	if err != nil {
		return nil, pkg.MapGormError(err)
	}

	return summary, nil
}

// Sales sums the negotiated deal price per calendar month. Orders still
// waiting on a deal price count toward the order total but add no revenue.
func (s *reportService) Sales(ctx context.Context, from, to *time.Time) (*SalesReport, error) {
	q := s.db.WithContext(ctx).Model(&domain.Order{}).
		Select(s.monthExpr() + " AS month, COUNT(*) AS orders, COALESCE(SUM(deal_price), 0) AS revenue").
		Group("month").
		Order("month ASC")

	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at <= ?", *to)
	}

	report := &SalesReport{From: from, To: to, Monthly: []MonthlyRevenue{}}
	if err := q.Scan(&report.Monthly).Error; err != nil {
		return nil, pkg.MapGormError(err)
	}
	return report, nil
}

// monthExpr returns the dialect-specific expression that truncates
// created_at to a YYYY-MM bucket.
func (s *reportService) monthExpr() string {
	switch s.db.Dialector.Name() {
	case "postgres":
		return "to_char(created_at, 'YYYY-MM')"
	case "mysql":
		return "DATE_FORMAT(created_at, '%Y-%m')"
	default:
		return "strftime('%Y-%m', created_at)"
	}
}
