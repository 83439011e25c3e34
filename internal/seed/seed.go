package seed

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
)

// Default admin credentials created by Run. Rotate the password after the
// first login.
const (
	AdminEmail    = "admin@wiradoor.local"
	AdminPassword = "wiradoor-admin"
)

// Run populates the database with a small deterministic sample data set:
// door categories and products, article and portfolio content, a few orders
// and inquiries in different workflow states, and one admin account.
// Existing rows with the same unique keys are left alone, so running it
// twice is safe.
func Run(ctx context.Context, db *gorm.DB) error {
	if err := seedCatalog(ctx, db); err != nil {
		return err
	}
	if err := seedArticles(ctx, db); err != nil {
		return err
	}
	if err := seedPortfolio(ctx, db); err != nil {
		return err
	}
	if err := seedOrders(ctx, db); err != nil {
		return err
	}
	if err := seedInquiries(ctx, db); err != nil {
		return err
	}
	return seedAdmin(ctx, db)
}

func seedCatalog(ctx context.Context, db *gorm.DB) error {
	categories := []domain.Category{
		{Name: "Solid Doors", Slug: "solid-doors", Description: "Engineered solid doors for main entrances."},
		{Name: "Flush Doors", Slug: "flush-doors", Description: "Flat-faced doors for interior rooms."},
		{Name: "Louvre Doors", Slug: "louvre-doors", Description: "Ventilated doors for utility spaces."},
	}
	for i := range categories {
		if err := firstOrCreate(ctx, db, &categories[i], "slug = ?", categories[i].Slug); err != nil {
			return err
		}
	}

	products := []domain.Product{
		{Name: "Wiradoor Classic 90", Slug: "wiradoor-classic-90", Description: "90cm solid engineered door leaf.", IsReadyStock: true, CategoryID: categories[0].ID},
		{Name: "Wiradoor Classic 80", Slug: "wiradoor-classic-80", Description: "80cm solid engineered door leaf.", IsReadyStock: true, CategoryID: categories[0].ID},
		{Name: "Wiradoor Flush Duo", Slug: "wiradoor-flush-duo", Description: "Double flush door set with frame.", IsReadyStock: false, CategoryID: categories[1].ID},
		{Name: "Wiradoor Breeze", Slug: "wiradoor-breeze", Description: "Louvre door for laundry and service rooms.", IsReadyStock: true, CategoryID: categories[2].ID},
	}
	for i := range products {
		if err := firstOrCreate(ctx, db, &products[i], "slug = ?", products[i].Slug); err != nil {
			return err
		}
	}
	return nil
}

func seedArticles(ctx context.Context, db *gorm.DB) error {
	categories := []domain.ArticleCategory{
		{Name: "Tips", Slug: "tips"},
		{Name: "News", Slug: "news"},
	}
	for i := range categories {
		if err := firstOrCreate(ctx, db, &categories[i], "slug = ?", categories[i].Slug); err != nil {
			return err
		}
	}

	articles := []domain.Article{
		{
			Title:      "Choosing the Right Door for a Humid Climate",
			Slug:       "choosing-the-right-door-for-a-humid-climate",
			Excerpt:    "What to look for in door materials when humidity is high year round.",
			Content:    "Engineered doors resist warping far better than solid timber in coastal humidity. Look for sealed edges and a stable core.",
			CategoryID: categories[0].ID,
		},
		{
			Title:      "Showroom Opening Hours",
			Slug:       "showroom-opening-hours",
			Excerpt:    "Updated visiting hours for the Padang showroom.",
			Content:    "The showroom is open Monday through Saturday, 09.00 to 17.00.",
			CategoryID: categories[1].ID,
		},
	}
	for i := range articles {
		if err := firstOrCreate(ctx, db, &articles[i], "slug = ?", articles[i].Slug); err != nil {
			return err
		}
	}
	return nil
}

func seedPortfolio(ctx context.Context, db *gorm.DB) error {
	categories := []domain.PortfolioCategory{
		{Name: "Residential", Slug: "residential"},
		{Name: "Hospitality", Slug: "hospitality"},
	}
	for i := range categories {
		if err := firstOrCreate(ctx, db, &categories[i], "slug = ?", categories[i].Slug); err != nil {
			return err
		}
	}

	items := []domain.PortfolioItem{
		{
			Title:       "Cluster Housing Project, Kuranji",
			Slug:        "cluster-housing-project-kuranji",
			Description: "Supplied and installed 64 interior flush doors across a housing cluster.",
			CategoryID:  categories[0].ID,
		},
		{
			Title:       "Boutique Hotel Renovation",
			Slug:        "boutique-hotel-renovation",
			Description: "Replaced all guest room doors with fire-rated engineered leaves.",
			CategoryID:  categories[1].ID,
		},
	}
	for i := range items {
		if err := firstOrCreate(ctx, db, &items[i], "slug = ?", items[i].Slug); err != nil {
			return err
		}
	}
	return nil
}

func seedOrders(ctx context.Context, db *gorm.DB) error {
	var classic90, breeze domain.Product
	if err := db.WithContext(ctx).Where("slug = ?", "wiradoor-classic-90").First(&classic90).Error; err != nil {
		return fmt.Errorf("load seeded product: %w", err)
	}
	if err := db.WithContext(ctx).Where("slug = ?", "wiradoor-breeze").First(&breeze).Error; err != nil {
		return fmt.Errorf("load seeded product: %w", err)
	}

	completedPrice := 5400000.0
	processedPrice := 1350000.0

	orders := []domain.Order{
		{
			BaseModel:       domain.BaseModel{CreatedAt: time.Date(2026, 6, 12, 10, 0, 0, 0, time.UTC)},
			InvoiceNumber:   "INV-20260612-0a1b2c3d",
			CustomerName:    "Rina Marlina",
			CustomerEmail:   "rina.marlina@example.com",
			CustomerPhone:   "081266778899",
			CustomerAddress: "Jl. Sudirman No. 42, Padang",
			Status:          domain.OrderStatusCompleted,
			DealPrice:       &completedPrice,
			Items: []domain.OrderItem{
				{ProductID: classic90.ID, ProductName: classic90.Name, IsReadyStock: classic90.IsReadyStock, Quantity: 3},
			},
		},
		{
			BaseModel:       domain.BaseModel{CreatedAt: time.Date(2026, 7, 2, 14, 30, 0, 0, time.UTC)},
			InvoiceNumber:   "INV-20260702-4e5f6a7b",
			CustomerName:    "Hendra Gunawan",
			CustomerEmail:   "hendra.gunawan@example.com",
			CustomerPhone:   "081355443322",
			CustomerAddress: "Jl. Raya Indarung No. 8, Padang",
			Status:          domain.OrderStatusProcessed,
			DealPrice:       &processedPrice,
			Items: []domain.OrderItem{
				{ProductID: breeze.ID, ProductName: breeze.Name, IsReadyStock: breeze.IsReadyStock, Quantity: 1},
			},
		},
		{
			BaseModel:       domain.BaseModel{CreatedAt: time.Date(2026, 7, 21, 9, 15, 0, 0, time.UTC)},
			InvoiceNumber:   "INV-20260721-8c9d0e1f",
			CustomerName:    "Yanti Kusuma",
			CustomerEmail:   "yanti.kusuma@example.com",
			CustomerPhone:   "081299887766",
			CustomerAddress: "Jl. Gajah Mada No. 17, Bukittinggi",
			Status:          domain.OrderStatusPending,
			Items: []domain.OrderItem{
				{ProductID: classic90.ID, ProductName: classic90.Name, IsReadyStock: classic90.IsReadyStock, Quantity: 2},
				{ProductID: breeze.ID, ProductName: breeze.Name, IsReadyStock: breeze.IsReadyStock, Quantity: 2},
			},
		},
	}
	for i := range orders {
		if err := firstOrCreate(ctx, db, &orders[i], "invoice_number = ?", orders[i].InvoiceNumber); err != nil {
			return err
		}
	}
	return nil
}

func seedInquiries(ctx context.Context, db *gorm.DB) error {
	inquiries := []domain.Inquiry{
		{
			SenderName:  "Fajar Pratama",
			SenderEmail: "fajar.pratama@example.com",
			SenderPhone: "081211223344",
			Subject:     "Bulk pricing for a housing project",
			Message:     "We need around 120 flush doors for a development in Solok. Can you quote?",
			Status:      domain.InquiryStatusReplied,
		},
		{
			SenderName:  "Maya Sari",
			SenderEmail: "maya.sari@example.com",
			Subject:     "Custom door dimensions",
			Message:     "Do you produce door leaves taller than the standard 210cm?",
			Status:      domain.InquiryStatusNew,
		},
	}
	for i := range inquiries {
		if err := firstOrCreate(ctx, db, &inquiries[i], "sender_email = ? AND subject = ?", inquiries[i].SenderEmail, inquiries[i].Subject); err != nil {
			return err
		}
	}
	return nil
}

func seedAdmin(ctx context.Context, db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := domain.User{
		Name:         "Administrator",
		Email:        AdminEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	return firstOrCreate(ctx, db, &admin, "email = ?", admin.Email)
}

func firstOrCreate[T any](ctx context.Context, db *gorm.DB, row *T, query string, args ...any) error {
	return db.WithContext(ctx).Where(query, args...).FirstOrCreate(row).Error
}
