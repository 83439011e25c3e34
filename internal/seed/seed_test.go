package seed

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/app"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := app.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestRun(t *testing.T) {
	db := setupSeedDB(t)
	ctx := context.Background()

	if err := Run(ctx, db); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var productCount, categoryCount int64
	db.Model(&domain.Product{}).Count(&productCount)
	db.Model(&domain.Category{}).Count(&categoryCount)
	if productCount == 0 || categoryCount == 0 {
		t.Fatalf("counts products=%d categories=%d; want seeded rows", productCount, categoryCount)
	}

	var orderCount, inquiryCount int64
	db.Model(&domain.Order{}).Count(&orderCount)
	db.Model(&domain.Inquiry{}).Count(&inquiryCount)
	if orderCount == 0 || inquiryCount == 0 {
		t.Fatalf("counts orders=%d inquiries=%d; want seeded rows", orderCount, inquiryCount)
	}

	var completed domain.Order
	if err := db.Preload("Items").Where("status = ?", domain.OrderStatusCompleted).First(&completed).Error; err != nil {
		t.Fatalf("completed sample order missing: %v", err)
	}
	if completed.DealPrice == nil || *completed.DealPrice <= 0 {
		t.Errorf("DealPrice=%v; completed order should carry a struck deal", completed.DealPrice)
	}
	if len(completed.Items) == 0 || completed.Items[0].ProductName == "" {
		t.Errorf("Items=%+v; order items should snapshot product names", completed.Items)
	}

	var pending int64
	db.Model(&domain.Order{}).Where("status = ?", domain.OrderStatusPending).Count(&pending)
	if pending == 0 {
		t.Error("want at least one pending sample order")
	}

	var admin domain.User
	if err := db.Where("email = ?", AdminEmail).First(&admin).Error; err != nil {
		t.Fatalf("admin account missing: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Errorf("Role=%s; want admin", admin.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(AdminPassword)); err != nil {
		t.Errorf("admin hash does not match default password: %v", err)
	}
}

func TestRun_Idempotent(t *testing.T) {
	db := setupSeedDB(t)
	ctx := context.Background()

	if err := Run(ctx, db); err != nil {
		t.Fatalf("first Run: %v", err)
	}

	var before int64
	db.Model(&domain.Product{}).Count(&before)

	if err := Run(ctx, db); err != nil {
		t.Fatalf("second Run: %v", err)
	}

	var after, admins, orders, items, inquiries int64
	db.Model(&domain.Product{}).Count(&after)
	db.Model(&domain.User{}).Where("email = ?", AdminEmail).Count(&admins)
	db.Model(&domain.Order{}).Count(&orders)
	db.Model(&domain.OrderItem{}).Count(&items)
	db.Model(&domain.Inquiry{}).Count(&inquiries)

	if after != before {
		t.Errorf("product count changed from %d to %d on reseed", before, after)
	}
	if admins != 1 {
		t.Errorf("admin accounts=%d; want exactly 1", admins)
	}
	if orders != 3 || inquiries != 2 {
		t.Errorf("orders=%d inquiries=%d after reseed; want 3 and 2", orders, inquiries)
	}
	if items != 4 {
		t.Errorf("order items=%d after reseed; want 4", items)
	}
}
