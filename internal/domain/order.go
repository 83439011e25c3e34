package domain

import "context"

// OrderStatus is the closed set of states an order moves through.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusProcessed OrderStatus = "PROCESSED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// OrderStatuses lists all valid order statuses.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessed,
	OrderStatusShipped,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// Valid reports whether s is one of the known order statuses.
// Any enum-to-enum transition is allowed; the admin may override freely, so
// no transition graph is enforced beyond enum membership.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order is a checkout submission. Items snapshot the product name and
// availability at checkout time so later catalog edits do not rewrite
// order history. DealPrice is the negotiated total, attached once the
// deal is struck (typically when the order leaves PENDING).
type Order struct {
	BaseModel
	InvoiceNumber   string      `gorm:"size:40;uniqueIndex;not null" json:"invoice_number"`
	CustomerName    string      `gorm:"size:150;not null" json:"customer_name"`
	CustomerEmail   string      `gorm:"size:255;not null" json:"customer_email"`
	CustomerPhone   string      `gorm:"size:30;not null" json:"customer_phone"`
	CustomerAddress string      `gorm:"size:500;not null" json:"customer_address"`
	Status          OrderStatus `gorm:"size:20;not null;index" json:"status"`
	DealPrice       *float64    `json:"deal_price,omitempty"`
	Items           []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem is one product line of an order, snapshotted at checkout.
type OrderItem struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	OrderID      uint   `gorm:"index;not null" json:"order_id"`
	ProductID    uint   `gorm:"not null" json:"product_id"`
	ProductName  string `gorm:"size:150;not null" json:"product_name"`
	IsReadyStock bool   `gorm:"not null" json:"is_ready_stock"`
	Quantity     int    `gorm:"not null" json:"quantity"`
}

// OrderRepository defines the data access interface for orders.
// Orders have no trash tier: Delete removes the row permanently.
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id uint) (*Order, error)
	GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (*Order, error)
	List(ctx context.Context, opts ListOptions) (*PageResult[Order], error)
	Update(ctx context.Context, order *Order) error
	UpdateStatus(ctx context.Context, id uint, status OrderStatus, dealPrice *float64) error
	Delete(ctx context.Context, id uint) error
}
