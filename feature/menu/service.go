package menu

import (
	"context"

	"menu-manager/feature/menu/models"

	"go.uber.org/zap"
)

// Service exposes the read side of the synced catalog.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new menu service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListCategories returns all categories sorted by their numeric order,
// without items.
func (s *Service) ListCategories(ctx context.Context) ([]models.CategoryDoc, error) {
	return s.repo.ListCategories(ctx)
}

// GetCategory returns one category together with its items.
func (s *Service) GetCategory(ctx context.Context, slug string) (*models.CategoryWithItems, error) {
	doc, err := s.repo.GetCategory(ctx, slug)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListItems(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &models.CategoryWithItems{CategoryDoc: *doc, Items: items}, nil
}

// GetItem returns a single item of a category.
func (s *Service) GetItem(ctx context.Context, categorySlug, itemSlug string) (*models.Item, error) {
	return s.repo.GetItem(ctx, categorySlug, itemSlug)
}

// RandomItem returns one random item from the whole catalog.
func (s *Service) RandomItem(ctx context.Context) (*models.Item, error) {
	return s.repo.RandomItem(ctx)
}
