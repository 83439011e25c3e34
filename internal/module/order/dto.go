package order

import "github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"

// CheckoutItemRequest is one product line in a checkout submission.
type CheckoutItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// CheckoutRequest represents a public checkout submission.
type CheckoutRequest struct {
	CustomerName    string                `json:"customer_name" binding:"required,min=2,max=150"`
	CustomerEmail   string                `json:"customer_email" binding:"required,email,max=255"`
	CustomerPhone   string                `json:"customer_phone" binding:"required,min=6,max=30"`
	CustomerAddress string                `json:"customer_address" binding:"required,min=10,max=500"`
	Items           []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderRequest represents a full admin edit of an order's mutable
// fields. Invoice number and item snapshots are never rewritten.
type UpdateOrderRequest struct {
	CustomerName    string             `json:"customer_name" binding:"required,min=2,max=150"`
	CustomerEmail   string             `json:"customer_email" binding:"required,email,max=255"`
	CustomerPhone   string             `json:"customer_phone" binding:"required,min=6,max=30"`
	CustomerAddress string             `json:"customer_address" binding:"required,min=10,max=500"`
	Status          domain.OrderStatus `json:"status" binding:"required"`
	DealPrice       *float64           `json:"deal_price" binding:"omitempty,gt=0"`
}

// UpdateStatusRequest moves an order to a new status. DealPrice is optional
// and records the negotiated total when the deal is struck.
type UpdateStatusRequest struct {
	Status    domain.OrderStatus `json:"status" binding:"required"`
	DealPrice *float64           `json:"deal_price" binding:"omitempty,gt=0"`
}
