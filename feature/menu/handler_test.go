package menu_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"menu-manager/feature/menu"
	"menu-manager/feature/menu/mocks"
	"menu-manager/feature/menu/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Repository) {
	t.Helper()
	app := fiber.New()
	repo := new(mocks.Repository)
	svc := menu.NewService(repo, zap.NewNop())
	handler := menu.NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, repo
}

func TestHandleListCategories(t *testing.T) {
	app, repo := setupTestApp(t)

	repo.On("ListCategories", mock.Anything).Return([]models.CategoryDoc{
		{Name: "Salads", Order: 1, Slug: "salads", ItemCount: 2},
		{Name: "Drinks", Order: 2, Slug: "drinks", ItemCount: 1},
	}, nil)

	req := httptest.NewRequest("GET", "/menu/", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []models.CategoryDoc
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, "salads", body[0].Slug)
	assert.Equal(t, 2, body[0].ItemCount)
}

func TestHandleGetCategory(t *testing.T) {
	app, repo := setupTestApp(t)

	repo.On("GetCategory", mock.Anything, "salads").Return(&models.CategoryDoc{
		Name: "Salads", Order: 1, Slug: "salads", ItemCount: 1,
	}, nil)
	repo.On("ListItems", mock.Anything, "salads").Return([]models.Item{
		{Name: "Caesar Salad", Slug: "caesar-salad", Price: 12.5},
	}, nil)

	req := httptest.NewRequest("GET", "/menu/salads", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body models.CategoryWithItems
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Salads", body.Name)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "caesar-salad", body.Items[0].Slug)
}

func TestHandleGetCategory_NotFound(t *testing.T) {
	app, repo := setupTestApp(t)

	repo.On("GetCategory", mock.Anything, "desserts").Return(nil, menu.ErrNotFound)

	req := httptest.NewRequest("GET", "/menu/desserts", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleGetItem(t *testing.T) {
	app, repo := setupTestApp(t)

	repo.On("GetItem", mock.Anything, "salads", "caesar-salad").Return(&models.Item{
		Name: "Caesar Salad", Slug: "caesar-salad", Price: 12.5, IsNew: true,
	}, nil)

	req := httptest.NewRequest("GET", "/menu/salads/items/caesar-salad", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body models.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 12.5, body.Price)
	assert.True(t, body.IsNew)
}

func TestHandleRandomItem_EmptyCatalog(t *testing.T) {
	app, repo := setupTestApp(t)

	repo.On("RandomItem", mock.Anything).Return(nil, menu.ErrNotFound)

	req := httptest.NewRequest("GET", "/menu/random", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
