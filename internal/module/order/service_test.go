package order

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/module/catalog"
)

func setupOrderService(t *testing.T) (Service, catalog.Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Category{}, &domain.Product{}, &domain.Order{}, &domain.OrderItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	products := catalog.NewProductRepository(db)
	categories := catalog.NewCategoryRepository(db)
	catalogSvc := catalog.NewService(products, categories)
	return NewService(NewRepository(db), products), catalogSvc, db
}

func seedProduct(t *testing.T, svc catalog.Service, name string, ready bool) *domain.Product {
	t.Helper()
	ctx := context.Background()
	cat, err := svc.CreateCategory(ctx, catalog.CreateCategoryRequest{Name: "Doors " + name})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	product, err := svc.CreateProduct(ctx, catalog.CreateProductRequest{
		Name:         name,
		IsReadyStock: ready,
		CategoryID:   cat.ID,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	return product
}

func checkoutRequest(productID uint, qty int) CheckoutRequest {
	return CheckoutRequest{
		CustomerName:    "Budi Santoso",
		CustomerEmail:   "budi@example.com",
		CustomerPhone:   "08123456789",
		CustomerAddress: "Jl. Khatib Sulaiman No. 10, Padang",
		Items:           []CheckoutItemRequest{{ProductID: productID, Quantity: qty}},
	}
}

var invoicePattern = regexp.MustCompile(`^INV-\d{8}-[0-9a-f]{8}$`)

func TestCheckout(t *testing.T) {
	svc, catalogSvc, _ := setupOrderService(t)
	ctx := context.Background()
	product := seedProduct(t, catalogSvc, "Classic 90", true)

	order, err := svc.Checkout(ctx, checkoutRequest(product.ID, 3))
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	if order.Status != domain.OrderStatusPending {
		t.Errorf("Status=%s; want PENDING", order.Status)
	}
	if !invoicePattern.MatchString(order.InvoiceNumber) {
		t.Errorf("InvoiceNumber=%q; want INV-YYYYMMDD-xxxxxxxx", order.InvoiceNumber)
	}
	if order.DealPrice != nil {
		t.Error("new orders should have no deal price")
	}
	if len(order.Items) != 1 {
		t.Fatalf("len(Items)=%d; want 1", len(order.Items))
	}

	item := order.Items[0]
	if item.ProductName != "Classic 90" || !item.IsReadyStock || item.Quantity != 3 {
		t.Errorf("item=%+v; want snapshot of product with qty 3", item)
	}
}

func TestCheckout_SnapshotSurvivesProductEdits(t *testing.T) {
	svc, catalogSvc, _ := setupOrderService(t)
	ctx := context.Background()
	product := seedProduct(t, catalogSvc, "Original Name", true)

	order, err := svc.Checkout(ctx, checkoutRequest(product.ID, 1))
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	if _, err := catalogSvc.UpdateProduct(ctx, product.ID, catalog.UpdateProductRequest{
		Name:         "Renamed Later",
		IsReadyStock: false,
		CategoryID:   product.CategoryID,
	}); err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}

	got, err := svc.GetOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if got.Items[0].ProductName != "Original Name" {
		t.Errorf("ProductName=%q; want the checkout-time snapshot", got.Items[0].ProductName)
	}
	if !got.Items[0].IsReadyStock {
		t.Error("IsReadyStock should keep the checkout-time value")
	}
}

func TestCheckout_UnknownProduct(t *testing.T) {
	svc, _, _ := setupOrderService(t)

	_, err := svc.Checkout(context.Background(), checkoutRequest(999, 1))
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCheckout_TrashedProductRejected(t *testing.T) {
	svc, catalogSvc, _ := setupOrderService(t)
	ctx := context.Background()
	product := seedProduct(t, catalogSvc, "Retired", true)

	if err := catalogSvc.DeleteProduct(ctx, product.ID, false); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}

	_, err := svc.Checkout(ctx, checkoutRequest(product.ID, 1))
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for trashed product, got %v", err)
	}
}

func TestCheckout_DuplicateProductLine(t *testing.T) {
	svc, catalogSvc, _ := setupOrderService(t)
	ctx := context.Background()
	product := seedProduct(t, catalogSvc, "Classic 90", true)

	req := checkoutRequest(product.ID, 1)
	req.Items = append(req.Items, CheckoutItemRequest{ProductID: product.ID, Quantity: 2})

	_, err := svc.Checkout(ctx, req)
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for duplicate line, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, catalogSvc, _ := setupOrderService(t)
	ctx := context.Background()
	product := seedProduct(t, catalogSvc, "Classic 90", true)

	order, err := svc.Checkout(ctx, checkoutRequest(product.ID, 1))
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	price := 2500000.0
	updated, err := svc.UpdateStatus(ctx, order.ID, UpdateStatusRequest{
		Status:    domain.OrderStatusProcessed,
		DealPrice: &price,
	})
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != domain.OrderStatusProcessed {
		t.Errorf("Status=%s; want PROCESSED", updated.Status)
	}
	if updated.DealPrice == nil || *updated.DealPrice != price {
		t.Errorf("DealPrice=%v; want %v", updated.DealPrice, price)
	}
}

func TestUpdateOrder(t *testing.T) {
	svc, catalogSvc, _ := setupOrderService(t)
	ctx := context.Background()
	product := seedProduct(t, catalogSvc, "Classic 90", true)

	order, err := svc.Checkout(ctx, checkoutRequest(product.ID, 2))
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	price := 3200000.0
	updated, err := svc.UpdateOrder(ctx, order.ID, UpdateOrderRequest{
		CustomerName:    "  Budi S. Santoso  ",
		CustomerEmail:   "budi.santoso@example.com",
		CustomerPhone:   "08127770001",
		CustomerAddress: "Jl. Veteran No. 5, Padang",
		Status:          domain.OrderStatusProcessed,
		DealPrice:       &price,
	})
	if err != nil {
		t.Fatalf("UpdateOrder: %v", err)
	}

	if updated.CustomerName != "Budi S. Santoso" {
		t.Errorf("CustomerName=%q; want trimmed value", updated.CustomerName)
	}
	if updated.Status != domain.OrderStatusProcessed {
		t.Errorf("Status=%s; want PROCESSED", updated.Status)
	}
	if updated.DealPrice == nil || *updated.DealPrice != price {
		t.Errorf("DealPrice=%v; want %v", updated.DealPrice, price)
	}

	got, err := svc.GetOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if got.CustomerEmail != "budi.santoso@example.com" {
		t.Errorf("CustomerEmail=%q; edit did not persist", got.CustomerEmail)
	}
	if got.InvoiceNumber != order.InvoiceNumber {
		t.Errorf("InvoiceNumber changed from %q to %q", order.InvoiceNumber, got.InvoiceNumber)
	}
	if len(got.Items) != 1 || got.Items[0].ProductName != "Classic 90" || got.Items[0].Quantity != 2 {
		t.Errorf("Items=%+v; snapshots must survive an admin edit", got.Items)
	}
}

func TestUpdateOrder_KeepsDealPriceWhenOmitted(t *testing.T) {
	svc, catalogSvc, _ := setupOrderService(t)
	ctx := context.Background()
	product := seedProduct(t, catalogSvc, "Classic 90", true)

	order, err := svc.Checkout(ctx, checkoutRequest(product.ID, 1))
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	price := 1800000.0
	if _, err := svc.UpdateStatus(ctx, order.ID, UpdateStatusRequest{
		Status:    domain.OrderStatusProcessed,
		DealPrice: &price,
	}); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	updated, err := svc.UpdateOrder(ctx, order.ID, UpdateOrderRequest{
		CustomerName:    "Budi Santoso",
		CustomerEmail:   "budi@example.com",
		CustomerPhone:   "08123456789",
		CustomerAddress: "Jl. Khatib Sulaiman No. 10, Padang",
		Status:          domain.OrderStatusShipped,
	})
	if err != nil {
		t.Fatalf("UpdateOrder: %v", err)
	}
	if updated.DealPrice == nil || *updated.DealPrice != price {
		t.Errorf("DealPrice=%v; want the struck deal kept when omitted", updated.DealPrice)
	}
}

func TestUpdateOrder_UnknownStatus(t *testing.T) {
	svc, catalogSvc, _ := setupOrderService(t)
	ctx := context.Background()
	product := seedProduct(t, catalogSvc, "Classic 90", true)

	order, err := svc.Checkout(ctx, checkoutRequest(product.ID, 1))
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	_, err = svc.UpdateOrder(ctx, order.ID, UpdateOrderRequest{
		CustomerName:    "Budi Santoso",
		CustomerEmail:   "budi@example.com",
		CustomerPhone:   "08123456789",
		CustomerAddress: "Jl. Khatib Sulaiman No. 10, Padang",
		Status:          "DELIVERED",
	})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestUpdateOrder_UnknownOrder(t *testing.T) {
	svc, _, _ := setupOrderService(t)

	_, err := svc.UpdateOrder(context.Background(), 404, UpdateOrderRequest{
		CustomerName:    "Budi Santoso",
		CustomerEmail:   "budi@example.com",
		CustomerPhone:   "08123456789",
		CustomerAddress: "Jl. Khatib Sulaiman No. 10, Padang",
		Status:          domain.OrderStatusPending,
	})
	if !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateStatus_AnyTransitionAllowed(t *testing.T) {
	svc, catalogSvc, _ := setupOrderService(t)
	ctx := context.Background()
	product := seedProduct(t, catalogSvc, "Classic 90", true)

	order, err := svc.Checkout(ctx, checkoutRequest(product.ID, 1))
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	// The admin may move an order between any two statuses, including
	// backwards.
	sequence := []domain.OrderStatus{
		domain.OrderStatusCompleted,
		domain.OrderStatusPending,
		domain.OrderStatusCancelled,
		domain.OrderStatusShipped,
	}
	for _, status := range sequence {
		if _, err := svc.UpdateStatus(ctx, order.ID, UpdateStatusRequest{Status: status}); err != nil {
			t.Fatalf("UpdateStatus(%s): %v", status, err)
		}
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc, catalogSvc, _ := setupOrderService(t)
	ctx := context.Background()
	product := seedProduct(t, catalogSvc, "Classic 90", true)

	order, err := svc.Checkout(ctx, checkoutRequest(product.ID, 1))
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	_, err = svc.UpdateStatus(ctx, order.ID, UpdateStatusRequest{Status: "DELIVERED"})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	svc, _, _ := setupOrderService(t)

	_, err := svc.UpdateStatus(context.Background(), 404, UpdateStatusRequest{Status: domain.OrderStatusProcessed})
	if !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteOrder_RemovesItems(t *testing.T) {
	svc, catalogSvc, db := setupOrderService(t)
	ctx := context.Background()
	product := seedProduct(t, catalogSvc, "Classic 90", true)

	order, err := svc.Checkout(ctx, checkoutRequest(product.ID, 2))
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	if err := svc.DeleteOrder(ctx, order.ID); err != nil {
		t.Fatalf("DeleteOrder: %v", err)
	}

	if _, err := svc.GetOrder(ctx, order.ID); !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	var itemCount int64
	if err := db.Model(&domain.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if itemCount != 0 {
		t.Errorf("itemCount=%d; want 0 after order delete", itemCount)
	}
}

func TestGetOrderByInvoiceNumber(t *testing.T) {
	svc, catalogSvc, _ := setupOrderService(t)
	ctx := context.Background()
	product := seedProduct(t, catalogSvc, "Classic 90", true)

	order, err := svc.Checkout(ctx, checkoutRequest(product.ID, 1))
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	got, err := svc.GetOrderByInvoiceNumber(ctx, order.InvoiceNumber)
	if err != nil {
		t.Fatalf("GetOrderByInvoiceNumber: %v", err)
	}
	if got.ID != order.ID {
		t.Errorf("ID=%d; want %d", got.ID, order.ID)
	}
}

func TestNewInvoiceNumber_DatePrefix(t *testing.T) {
	s := &orderService{now: func() time.Time {
		return time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	}}

	inv := s.newInvoiceNumber()
	if len(inv) != len("INV-20260831-xxxxxxxx") {
		t.Fatalf("len(%q)=%d; unexpected", inv, len(inv))
	}
	if inv[:12] != "INV-20260831" {
		t.Errorf("prefix=%q; want INV-20260831", inv[:12])
	}
}
