package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
)

// Service defines the order business operations.
type Service interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, id uint) (*domain.Order, error)
	GetOrderByInvoiceNumber(ctx context.Context, invoiceNumber string) (*domain.Order, error)
	ListOrders(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.Order], error)
	UpdateOrder(ctx context.Context, id uint, req UpdateOrderRequest) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, req UpdateStatusRequest) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id uint) error
}

type orderService struct {
	orders   domain.OrderRepository
	products domain.ProductRepository
	now      func() time.Time
}

// NewService creates an order Service over the given repositories.
func NewService(orders domain.OrderRepository, products domain.ProductRepository) Service {
	return &orderService{orders: orders, products: products, now: time.Now}
}

// Checkout records a public order submission. Each item line snapshots the
// product name and availability so later catalog edits keep order history
// intact. New orders always start in PENDING.
func (s *orderService) Checkout(ctx context.Context, req CheckoutRequest) (*domain.Order, error) {
	items := make([]domain.OrderItem, 0, len(req.Items))
	seen := make(map[uint]bool, len(req.Items))

	for _, line := range req.Items {
		if seen[line.ProductID] {
			return nil, domain.NewAppError(domain.CodeValidation,
				fmt.Sprintf("duplicate product %d in order", line.ProductID), nil)
		}
		seen[line.ProductID] = true

		product, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if domain.IsNotFound(err) {
				return nil, domain.NewAppError(domain.CodeValidation,
					fmt.Sprintf("product %d does not exist", line.ProductID), nil)
			}
			return nil, err
		}
		if product.Trashed() {
			return nil, domain.NewAppError(domain.CodeValidation,
				fmt.Sprintf("product %q is no longer available", product.Name), nil)
		}

		items = append(items, domain.OrderItem{
			ProductID:    product.ID,
			ProductName:  product.Name,
			IsReadyStock: product.IsReadyStock,
			Quantity:     line.Quantity,
		})
	}

	order := &domain.Order{
		InvoiceNumber:   s.newInvoiceNumber(),
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		CustomerAddress: strings.TrimSpace(req.CustomerAddress),
		Status:          domain.OrderStatusPending,
		Items:           items,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uint) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *orderService) GetOrderByInvoiceNumber(ctx context.Context, invoiceNumber string) (*domain.Order, error) {
	return s.orders.GetByInvoiceNumber(ctx, invoiceNumber)
}

func (s *orderService) ListOrders(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.Order], error) {
	return s.orders.List(ctx, opts)
}

// UpdateOrder replaces the order's mutable fields: customer details, status
// and deal price. Invoice number and the snapshotted items stay as recorded
// at checkout.
func (s *orderService) UpdateOrder(ctx context.Context, id uint, req UpdateOrderRequest) (*domain.Order, error) {
	if !req.Status.Valid() {
		return nil, domain.NewAppError(domain.CodeValidation,
			fmt.Sprintf("unknown order status %q", req.Status), nil)
	}

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.CustomerName = strings.TrimSpace(req.CustomerName)
	order.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	order.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	order.CustomerAddress = strings.TrimSpace(req.CustomerAddress)
	order.Status = req.Status
	if req.DealPrice != nil {
		order.DealPrice = req.DealPrice
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus sets the order status. Only enum membership is checked; the
// admin may move an order between any two statuses.
func (s *orderService) UpdateStatus(ctx context.Context, id uint, req UpdateStatusRequest) (*domain.Order, error) {
	if !req.Status.Valid() {
		return nil, domain.NewAppError(domain.CodeValidation,
			fmt.Sprintf("unknown order status %q", req.Status), nil)
	}

	if err := s.orders.UpdateStatus(ctx, id, req.Status, req.DealPrice); err != nil {
		return nil, err
	}
	return s.orders.GetByID(ctx, id)
}

func (s *orderService) DeleteOrder(ctx context.Context, id uint) error {
	return s.orders.Delete(ctx, id)
}

// newInvoiceNumber builds an identifier like INV-20260115-a1b2c3d4: the
// submission date plus a random fragment for uniqueness within the day.
func (s *orderService) newInvoiceNumber() string {
	fragment := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("INV-%s-%s", s.now().Format("20060102"), fragment)
}
