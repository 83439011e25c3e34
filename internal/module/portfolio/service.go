package portfolio

import (
	"context"
	"strings"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/pkg"
)

// Service defines the portfolio business operations.
type Service interface {
	CreateItem(ctx context.Context, req ItemRequest) (*domain.PortfolioItem, error)
	GetItem(ctx context.Context, id uint) (*domain.PortfolioItem, error)
	GetItemBySlug(ctx context.Context, slug string) (*domain.PortfolioItem, error)
	ListItems(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.PortfolioItem], error)
	UpdateItem(ctx context.Context, id uint, req ItemRequest) (*domain.PortfolioItem, error)
	DeleteItem(ctx context.Context, id uint, force bool) error
	RestoreItem(ctx context.Context, id uint) error

	CreateCategory(ctx context.Context, req CategoryRequest) (*domain.PortfolioCategory, error)
	GetCategory(ctx context.Context, id uint) (*domain.PortfolioCategory, error)
	ListCategories(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.PortfolioCategory], error)
	UpdateCategory(ctx context.Context, id uint, req CategoryRequest) (*domain.PortfolioCategory, error)
	DeleteCategory(ctx context.Context, id uint, force bool) error
	RestoreCategory(ctx context.Context, id uint) error
}

type portfolioService struct {
	items      domain.PortfolioRepository
	categories domain.PortfolioCategoryRepository
}

// NewService creates a portfolio Service over the given repositories.
func NewService(items domain.PortfolioRepository, categories domain.PortfolioCategoryRepository) Service {
	return &portfolioService{items: items, categories: categories}
}

func (s *portfolioService) CreateItem(ctx context.Context, req ItemRequest) (*domain.PortfolioItem, error) {
	if err := s.requireActiveCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	item := &domain.PortfolioItem{
		Title:       strings.TrimSpace(req.Title),
		Slug:        resolveSlug(req.Slug, req.Title),
		Description: strings.TrimSpace(req.Description),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		CategoryID:  req.CategoryID,
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *portfolioService) GetItem(ctx context.Context, id uint) (*domain.PortfolioItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *portfolioService) GetItemBySlug(ctx context.Context, slug string) (*domain.PortfolioItem, error) {
	item, err := s.items.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if item.Trashed() {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func (s *portfolioService) ListItems(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.PortfolioItem], error) {
	return s.items.List(ctx, opts)
}

func (s *portfolioService) UpdateItem(ctx context.Context, id uint, req ItemRequest) (*domain.PortfolioItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != item.CategoryID {
		if err := s.requireActiveCategory(ctx, req.CategoryID); err != nil {
			return nil, err
		}
	}

	item.Title = strings.TrimSpace(req.Title)
	item.Slug = resolveSlug(req.Slug, req.Title)
	item.Description = strings.TrimSpace(req.Description)
	item.ImageURL = strings.TrimSpace(req.ImageURL)
	item.CategoryID = req.CategoryID
	item.Category = nil

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *portfolioService) DeleteItem(ctx context.Context, id uint, force bool) error {
	if force {
		return s.items.ForceDelete(ctx, id)
	}
	return s.items.SoftDelete(ctx, id)
}

func (s *portfolioService) RestoreItem(ctx context.Context, id uint) error {
	return s.items.Restore(ctx, id)
}

func (s *portfolioService) CreateCategory(ctx context.Context, req CategoryRequest) (*domain.PortfolioCategory, error) {
	category := &domain.PortfolioCategory{
		Name: strings.TrimSpace(req.Name),
		Slug: resolveSlug(req.Slug, req.Name),
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *portfolioService) GetCategory(ctx context.Context, id uint) (*domain.PortfolioCategory, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *portfolioService) ListCategories(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.PortfolioCategory], error) {
	return s.categories.List(ctx, opts)
}

func (s *portfolioService) UpdateCategory(ctx context.Context, id uint, req CategoryRequest) (*domain.PortfolioCategory, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = strings.TrimSpace(req.Name)
	category.Slug = resolveSlug(req.Slug, req.Name)

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *portfolioService) DeleteCategory(ctx context.Context, id uint, force bool) error {
	if force {
		return s.categories.ForceDelete(ctx, id)
	}
	return s.categories.SoftDelete(ctx, id)
}

func (s *portfolioService) RestoreCategory(ctx context.Context, id uint) error {
	return s.categories.Restore(ctx, id)
}

func (s *portfolioService) requireActiveCategory(ctx context.Context, id uint) error {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "portfolio category does not exist", nil)
		}
		return err
	}
	if category.Trashed() {
		return domain.NewAppError(domain.CodeValidation, "portfolio category is trashed", nil)
	}
	return nil
}

func resolveSlug(slug, title string) string {
	if trimmed := strings.TrimSpace(slug); trimmed != "" {
		return pkg.Slugify(trimmed)
	}
	return pkg.Slugify(title)
}
