package menu

import (
	"context"
	"strings"
	"time"

	"menu-manager/core/utils"
	"menu-manager/feature/menu/models"
)

// DefaultCategory is the display name used for rows without a category.
const DefaultCategory = "Uncategorized"

// Catalog is the in-memory document tree built from one spreadsheet read.
// Categories keep the insertion order of their first appearance.
type Catalog struct {
	categories []*models.Category
	bySlug     map[string]*models.Category
}

// Categories returns the categories in first-appearance order.
func (c *Catalog) Categories() []*models.Category {
	return c.categories
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// ItemCount returns the total number of items across all categories.
func (c *Catalog) ItemCount() int {
	n := 0
	for _, cat := range c.categories {
		n += len(cat.Items)
	}
	return n
}

func (c *Catalog) category(name string, order float64) *models.Category {
	slug := utils.Slugify(name)
	if cat, ok := c.bySlug[slug]; ok {
		// Distinct names can normalize to the same slug; they share one
		// category document, so they share one category here too.
		return cat
	}
	cat := &models.Category{Name: name, Order: order, Slug: slug}
	c.bySlug[slug] = cat
	c.categories = append(c.categories, cat)
	return cat
}

// BuildCatalog folds spreadsheet rows into a catalog. Field coercion never
// rejects a row: bad numbers become 0, anything but "TRUE" is false, and a
// missing name just yields an empty one. The resolver is consulted only for
// rows whose declared image reference needs a storage lookup.
func BuildCatalog(ctx context.Context, rows []models.Row, objectNames []string, resolver ImageResolver) (*Catalog, error) {
	catalog := &Catalog{bySlug: make(map[string]*models.Category)}

	for _, row := range rows {
		name := strings.TrimSpace(row.Category)
		if name == "" {
			name = DefaultCategory
		}
		// Order comes from the first row that creates the category.
		cat := catalog.category(name, utils.ParseNumber(row.CategoryOrder))

		imageURL := row.ImageURL
		if NeedsResolution(imageURL) {
			resolved, err := resolver.Resolve(ctx, strings.TrimSpace(row.FileName), objectNames)
			if err != nil {
				return nil, err
			}
			imageURL = resolved
		}

		slug := strings.TrimSpace(row.Slug)
		if slug == "" {
			slug = utils.Slugify(row.Name)
		}

		cat.Items = append(cat.Items, models.Item{
			Name:        strings.TrimSpace(row.Name),
			Description: strings.TrimSpace(row.Description),
			Price:       utils.ParseNumber(row.Price),
			FileName:    strings.TrimSpace(row.FileName),
			ImageURL:    imageURL,
			Slug:        slug,
			IsNew:       utils.ParseBool(row.IsNew),
			IsDeleted:   false,
			CreatedAt:   time.Now(),
		})
	}

	return catalog, nil
}
