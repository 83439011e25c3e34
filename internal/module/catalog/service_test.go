package catalog

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
)

func setupService(t *testing.T) Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Category{}, &domain.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(NewProductRepository(db), NewCategoryRepository(db))
}

func createCategory(t *testing.T, svc Service, name string) *domain.Category {
	t.Helper()
	cat, err := svc.CreateCategory(context.Background(), CreateCategoryRequest{Name: name})
	if err != nil {
		t.Fatalf("CreateCategory(%q): %v", name, err)
	}
	return cat
}

func TestCreateProduct_SlugFromName(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	cat := createCategory(t, svc, "Solid Doors")

	product, err := svc.CreateProduct(ctx, CreateProductRequest{
		Name:       "Wiradoor Classic 90",
		CategoryID: cat.ID,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if product.Slug != "wiradoor-classic-90" {
		t.Errorf("Slug=%q; want wiradoor-classic-90", product.Slug)
	}
}

func TestCreateProduct_ExplicitSlugWins(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	cat := createCategory(t, svc, "Solid Doors")

	product, err := svc.CreateProduct(ctx, CreateProductRequest{
		Name:       "Wiradoor Classic 90",
		Slug:       "Classic 90 Special",
		CategoryID: cat.ID,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if product.Slug != "classic-90-special" {
		t.Errorf("Slug=%q; want classic-90-special", product.Slug)
	}
}

func TestCreateProduct_UnknownCategory(t *testing.T) {
	svc := setupService(t)

	_, err := svc.CreateProduct(context.Background(), CreateProductRequest{
		Name:       "Orphan",
		CategoryID: 999,
	})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreateProduct_TrashedCategoryRejected(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	cat := createCategory(t, svc, "Going Away")

	if err := svc.DeleteCategory(ctx, cat.ID, false); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}

	_, err := svc.CreateProduct(ctx, CreateProductRequest{
		Name:       "Late Arrival",
		CategoryID: cat.ID,
	})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for trashed category, got %v", err)
	}
}

func TestGetProductBySlug_HidesTrashed(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	cat := createCategory(t, svc, "Solid Doors")

	product, err := svc.CreateProduct(ctx, CreateProductRequest{Name: "Hidden Soon", CategoryID: cat.ID})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	if _, err := svc.GetProductBySlug(ctx, product.Slug); err != nil {
		t.Fatalf("GetProductBySlug before delete: %v", err)
	}

	if err := svc.DeleteProduct(ctx, product.ID, false); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}

	// Trashed products are not publicly addressable by slug.
	if _, err := svc.GetProductBySlug(ctx, product.Slug); !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound for trashed product, got %v", err)
	}

	// But the admin can still fetch and restore by id.
	if _, err := svc.GetProduct(ctx, product.ID); err != nil {
		t.Errorf("GetProduct by id after soft delete: %v", err)
	}
	if err := svc.RestoreProduct(ctx, product.ID); err != nil {
		t.Fatalf("RestoreProduct: %v", err)
	}
	if _, err := svc.GetProductBySlug(ctx, product.Slug); err != nil {
		t.Errorf("GetProductBySlug after restore: %v", err)
	}
}

func TestDeleteProduct_ForceIsTerminal(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	cat := createCategory(t, svc, "Solid Doors")

	product, err := svc.CreateProduct(ctx, CreateProductRequest{Name: "Doomed", CategoryID: cat.ID})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	if err := svc.DeleteProduct(ctx, product.ID, true); err != nil {
		t.Fatalf("force DeleteProduct: %v", err)
	}
	if _, err := svc.GetProduct(ctx, product.ID); !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound after force delete, got %v", err)
	}
	if err := svc.RestoreProduct(ctx, product.ID); !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound restoring force-deleted product, got %v", err)
	}
}

func TestListProducts_PartitionAndCategoryFilter(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	doors := createCategory(t, svc, "Doors")
	frames := createCategory(t, svc, "Frames")

	for _, req := range []CreateProductRequest{
		{Name: "Door A", CategoryID: doors.ID},
		{Name: "Door B", CategoryID: doors.ID},
		{Name: "Frame A", CategoryID: frames.ID},
	} {
		if _, err := svc.CreateProduct(ctx, req); err != nil {
			t.Fatalf("CreateProduct(%q): %v", req.Name, err)
		}
	}

	result, err := svc.ListProducts(ctx, domain.ListOptions{CategoryID: doors.ID})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if result.TotalCount != 2 {
		t.Errorf("TotalCount=%d; want 2", result.TotalCount)
	}
	for _, p := range result.Data {
		if p.Category == nil || p.Category.ID != doors.ID {
			t.Errorf("product %q missing preloaded doors category", p.Name)
		}
	}
}

func TestUpdateProduct_ChangesCategoryAfterCheck(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	oldCat := createCategory(t, svc, "Old")
	newCat := createCategory(t, svc, "New")

	product, err := svc.CreateProduct(ctx, CreateProductRequest{Name: "Mover", CategoryID: oldCat.ID})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	updated, err := svc.UpdateProduct(ctx, product.ID, UpdateProductRequest{
		Name:       "Mover",
		CategoryID: newCat.ID,
	})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if updated.CategoryID != newCat.ID {
		t.Errorf("CategoryID=%d; want %d", updated.CategoryID, newCat.ID)
	}

	if err := svc.DeleteCategory(ctx, oldCat.ID, false); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if _, err := svc.UpdateProduct(ctx, product.ID, UpdateProductRequest{
		Name:       "Mover",
		CategoryID: oldCat.ID,
	}); !domain.IsValidation(err) {
		t.Errorf("expected validation error moving to trashed category, got %v", err)
	}
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	createCategory(t, svc, "Doors")
	_, err := svc.CreateCategory(ctx, CreateCategoryRequest{Name: "Doors"})
	if !domain.IsAlreadyExists(err) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}
