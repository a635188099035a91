package mocks

import (
	"context"

	"menu-manager/feature/menu/models"

	"github.com/stretchr/testify/mock"
)

// Repository is a mock implementation of menu.Repository
type Repository struct {
	mock.Mock
}

func (m *Repository) ListCategorySlugs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if slugs, ok := args.Get(0).([]string); ok {
		return slugs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Repository) DeleteCategory(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func (m *Repository) WriteCategory(ctx context.Context, doc models.CategoryDoc) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *Repository) WriteItem(ctx context.Context, categorySlug string, item models.Item) error {
	args := m.Called(ctx, categorySlug, item)
	return args.Error(0)
}

func (m *Repository) ListCategories(ctx context.Context) ([]models.CategoryDoc, error) {
	args := m.Called(ctx)
	if docs, ok := args.Get(0).([]models.CategoryDoc); ok {
		return docs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Repository) GetCategory(ctx context.Context, slug string) (*models.CategoryDoc, error) {
	args := m.Called(ctx, slug)
	if doc, ok := args.Get(0).(*models.CategoryDoc); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Repository) ListItems(ctx context.Context, categorySlug string) ([]models.Item, error) {
	args := m.Called(ctx, categorySlug)
	if items, ok := args.Get(0).([]models.Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Repository) GetItem(ctx context.Context, categorySlug, itemSlug string) (*models.Item, error) {
	args := m.Called(ctx, categorySlug, itemSlug)
	if item, ok := args.Get(0).(*models.Item); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Repository) RandomItem(ctx context.Context) (*models.Item, error) {
	args := m.Called(ctx)
	if item, ok := args.Get(0).(*models.Item); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}
