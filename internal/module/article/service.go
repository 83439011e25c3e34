package article

import (
	"context"
	"strings"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/pkg"
)

// Service defines the article business operations.
type Service interface {
	CreateArticle(ctx context.Context, req CreateArticleRequest) (*domain.Article, error)
	GetArticle(ctx context.Context, id uint) (*domain.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*domain.Article, error)
	ListArticles(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.Article], error)
	UpdateArticle(ctx context.Context, id uint, req UpdateArticleRequest) (*domain.Article, error)
	DeleteArticle(ctx context.Context, id uint, force bool) error
	RestoreArticle(ctx context.Context, id uint) error

	CreateCategory(ctx context.Context, req CategoryRequest) (*domain.ArticleCategory, error)
	GetCategory(ctx context.Context, id uint) (*domain.ArticleCategory, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.ArticleCategory, error)
	ListCategories(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.ArticleCategory], error)
	UpdateCategory(ctx context.Context, id uint, req CategoryRequest) (*domain.ArticleCategory, error)
	DeleteCategory(ctx context.Context, id uint, force bool) error
	RestoreCategory(ctx context.Context, id uint) error
}

type articleService struct {
	articles   domain.ArticleRepository
	categories domain.ArticleCategoryRepository
}

// NewService creates an article Service over the given repositories.
func NewService(articles domain.ArticleRepository, categories domain.ArticleCategoryRepository) Service {
	return &articleService{articles: articles, categories: categories}
}

func (s *articleService) CreateArticle(ctx context.Context, req CreateArticleRequest) (*domain.Article, error) {
	if err := s.requireActiveCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	article := &domain.Article{
		Title:      strings.TrimSpace(req.Title),
		Slug:       resolveSlug(req.Slug, req.Title),
		Excerpt:    strings.TrimSpace(req.Excerpt),
		Content:    req.Content,
		ImageURL:   strings.TrimSpace(req.ImageURL),
		CategoryID: req.CategoryID,
	}

	if err := s.articles.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) GetArticle(ctx context.Context, id uint) (*domain.Article, error) {
	return s.articles.GetByID(ctx, id)
}

// GetArticleBySlug hides trashed articles: slugs are the public address of
// content, and trashed content is not publicly addressable.
func (s *articleService) GetArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	article, err := s.articles.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article.Trashed() {
		return nil, domain.ErrNotFound
	}
	return article, nil
}

func (s *articleService) ListArticles(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.Article], error) {
	return s.articles.List(ctx, opts)
}

func (s *articleService) UpdateArticle(ctx context.Context, id uint, req UpdateArticleRequest) (*domain.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != article.CategoryID {
		if err := s.requireActiveCategory(ctx, req.CategoryID); err != nil {
			return nil, err
		}
	}

	article.Title = strings.TrimSpace(req.Title)
	article.Slug = resolveSlug(req.Slug, req.Title)
	article.Excerpt = strings.TrimSpace(req.Excerpt)
	article.Content = req.Content
	article.ImageURL = strings.TrimSpace(req.ImageURL)
	article.CategoryID = req.CategoryID
	article.Category = nil

	if err := s.articles.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) DeleteArticle(ctx context.Context, id uint, force bool) error {
	if force {
		return s.articles.ForceDelete(ctx, id)
	}
	return s.articles.SoftDelete(ctx, id)
}

func (s *articleService) RestoreArticle(ctx context.Context, id uint) error {
	return s.articles.Restore(ctx, id)
}

func (s *articleService) CreateCategory(ctx context.Context, req CategoryRequest) (*domain.ArticleCategory, error) {
	category := &domain.ArticleCategory{
		Name: strings.TrimSpace(req.Name),
		Slug: resolveSlug(req.Slug, req.Name),
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *articleService) GetCategory(ctx context.Context, id uint) (*domain.ArticleCategory, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *articleService) GetCategoryBySlug(ctx context.Context, slug string) (*domain.ArticleCategory, error) {
	category, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category.Trashed() {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

func (s *articleService) ListCategories(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.ArticleCategory], error) {
	return s.categories.List(ctx, opts)
}

func (s *articleService) UpdateCategory(ctx context.Context, id uint, req CategoryRequest) (*domain.ArticleCategory, error) {
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

func (s *articleService) DeleteCategory(ctx context.Context, id uint, force bool) error {
	if force {
		return s.categories.ForceDelete(ctx, id)
	}
	return s.categories.SoftDelete(ctx, id)
}

func (s *articleService) RestoreCategory(ctx context.Context, id uint) error {
	return s.categories.Restore(ctx, id)
}

func (s *articleService) requireActiveCategory(ctx context.Context, id uint) error {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "article category does not exist", nil)
		}
		return err
	}
	if category.Trashed() {
		return domain.NewAppError(domain.CodeValidation, "article category is trashed", nil)
	}
	return nil
}

func resolveSlug(slug, title string) string {
	if trimmed := strings.TrimSpace(slug); trimmed != "" {
		return pkg.Slugify(trimmed)
	}
	return pkg.Slugify(title)
}
