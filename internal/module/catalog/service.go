package catalog

import (
	"context"
	"strings"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/pkg"
)

// Service defines the catalog business operations over products and
// product categories.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*domain.Product, error)
	GetProduct(ctx context.Context, id uint) (*domain.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	ListProducts(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.Product], error)
	UpdateProduct(ctx context.Context, id uint, req UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint, force bool) error
	RestoreProduct(ctx context.Context, id uint) error

	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error)
	GetCategory(ctx context.Context, id uint) (*domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	ListCategories(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.Category], error)
	UpdateCategory(ctx context.Context, id uint, req UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id uint, force bool) error
	RestoreCategory(ctx context.Context, id uint) error
}

// catalogService implements Service.
type catalogService struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
}

// NewService creates a catalog Service over the given repositories.
func NewService(products domain.ProductRepository, categories domain.CategoryRepository) Service {
	return &catalogService{products: products, categories: categories}
}

// CreateProduct validates the referenced category and persists a new product.
func (s *catalogService) CreateProduct(ctx context.Context, req CreateProductRequest) (*domain.Product, error) {
	if err := s.requireActiveCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:         strings.TrimSpace(req.Name),
		Slug:         resolveSlug(req.Slug, req.Name),
		Description:  strings.TrimSpace(req.Description),
		ImageURL:     strings.TrimSpace(req.ImageURL),
		IsReadyStock: req.IsReadyStock,
		CategoryID:   req.CategoryID,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID, trashed or not.
func (s *catalogService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

// GetProductBySlug retrieves a product by its unique slug. Trashed products
// are hidden: the storefront resolves slugs, and trashed content is not
// publicly addressable.
func (s *catalogService) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	product, err := s.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product.Trashed() {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// ListProducts returns one page of products matching the given options.
func (s *catalogService) ListProducts(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.Product], error) {
	return s.products.List(ctx, opts)
}

// UpdateProduct loads the existing product, applies changes, and persists them.
func (s *catalogService) UpdateProduct(ctx context.Context, id uint, req UpdateProductRequest) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != product.CategoryID {
		if err := s.requireActiveCategory(ctx, req.CategoryID); err != nil {
			return nil, err
		}
	}

	product.Name = strings.TrimSpace(req.Name)
	product.Slug = resolveSlug(req.Slug, req.Name)
	product.Description = strings.TrimSpace(req.Description)
	product.ImageURL = strings.TrimSpace(req.ImageURL)
	product.IsReadyStock = req.IsReadyStock
	product.CategoryID = req.CategoryID
	product.Category = nil

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct soft-deletes by default; force removes the row permanently.
func (s *catalogService) DeleteProduct(ctx context.Context, id uint, force bool) error {
	if force {
		return s.products.ForceDelete(ctx, id)
	}
	return s.products.SoftDelete(ctx, id)
}

// RestoreProduct moves a trashed product back to the active partition.
func (s *catalogService) RestoreProduct(ctx context.Context, id uint) error {
	return s.products.Restore(ctx, id)
}

// CreateCategory persists a new category. A duplicate name or slug surfaces
// as an already-exists error.
func (s *catalogService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error) {
	category := &domain.Category{
		Name:        strings.TrimSpace(req.Name),
		Slug:        resolveSlug(req.Slug, req.Name),
		Description: strings.TrimSpace(req.Description),
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetCategory retrieves a category by ID, trashed or not.
func (s *catalogService) GetCategory(ctx context.Context, id uint) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

// GetCategoryBySlug retrieves an active category by its unique slug.
func (s *catalogService) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	category, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category.Trashed() {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

// ListCategories returns one page of categories matching the given options.
func (s *catalogService) ListCategories(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.Category], error) {
	return s.categories.List(ctx, opts)
}

// UpdateCategory loads the existing category, applies changes, and persists them.
func (s *catalogService) UpdateCategory(ctx context.Context, id uint, req UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = strings.TrimSpace(req.Name)
	category.Slug = resolveSlug(req.Slug, req.Name)
	category.Description = strings.TrimSpace(req.Description)

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory soft-deletes by default; force removes the row permanently.
func (s *catalogService) DeleteCategory(ctx context.Context, id uint, force bool) error {
	if force {
		return s.categories.ForceDelete(ctx, id)
	}
	return s.categories.SoftDelete(ctx, id)
}

// RestoreCategory moves a trashed category back to the active partition.
func (s *catalogService) RestoreCategory(ctx context.Context, id uint) error {
	return s.categories.Restore(ctx, id)
}

// requireActiveCategory rejects product writes that reference a missing or
// trashed category.
func (s *catalogService) requireActiveCategory(ctx context.Context, id uint) error {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "category does not exist", nil)
		}
		return err
	}
	if category.Trashed() {
		return domain.NewAppError(domain.CodeValidation, "category is trashed", nil)
	}
	return nil
}

// resolveSlug prefers an explicit slug and falls back to slugifying the name.
func resolveSlug(slug, name string) string {
	if trimmed := strings.TrimSpace(slug); trimmed != "" {
		return pkg.Slugify(trimmed)
	}
	return pkg.Slugify(name)
}
