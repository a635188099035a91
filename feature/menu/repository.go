package menu

import (
	"context"
	"errors"
	"fmt"

	"menu-manager/feature/menu/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by read operations when no document matches.
var ErrNotFound = errors.New("not found")

// Repository is the document-store contract for the menu catalog.
//
// The write side expresses the full-replace sync: enumerate existing
// categories, delete them depth-first (items, then the category document),
// then write the freshly built tree. Nothing here is transactional; a run
// that dies between phases leaves partial state, and the next successful run
// repairs it.
type Repository interface {
	// ListCategorySlugs returns the slugs of all stored categories, in
	// listing order (arbitrary, not sorted).
	ListCategorySlugs(ctx context.Context) ([]string, error)
	// DeleteCategory removes one category's items and then the category
	// document itself.
	DeleteCategory(ctx context.Context, slug string) error
	// WriteCategory upserts a category document keyed by its slug.
	WriteCategory(ctx context.Context, doc models.CategoryDoc) error
	// WriteItem upserts an item under a category, keyed by the item slug.
	// A slug collision within the category silently overwrites.
	WriteItem(ctx context.Context, categorySlug string, item models.Item) error

	// ListCategories returns all category documents sorted by their
	// numeric order.
	ListCategories(ctx context.Context) ([]models.CategoryDoc, error)
	// GetCategory returns one category document or ErrNotFound.
	GetCategory(ctx context.Context, slug string) (*models.CategoryDoc, error)
	// ListItems returns a category's items.
	ListItems(ctx context.Context, categorySlug string) ([]models.Item, error)
	// GetItem returns one item or ErrNotFound.
	GetItem(ctx context.Context, categorySlug, itemSlug string) (*models.Item, error)
	// RandomItem returns one random non-deleted item or ErrNotFound when
	// the catalog is empty.
	RandomItem(ctx context.Context) (*models.Item, error)
}

// MongoRepository stores the catalog in two collections: one document per
// category (keyed by slug) and one document per item (keyed by
// "<category-slug>/<item-slug>", carrying a categorySlug field). This is the
// flat-collection rendering of the category -> items hierarchy.
type MongoRepository struct {
	categories *mongo.Collection
	items      *mongo.Collection
}

// NewMongoRepository creates a repository over the given collections.
func NewMongoRepository(db *mongo.Database, categoryCollection, itemCollection string) *MongoRepository {
	return &MongoRepository{
		categories: db.Collection(categoryCollection),
		items:      db.Collection(itemCollection),
	}
}

type categoryDoc struct {
	ID                 string `bson:"_id"`
	models.CategoryDoc `bson:",inline"`
}

type itemDoc struct {
	ID           string `bson:"_id"`
	CategorySlug string `bson:"categorySlug"`
	models.Item  `bson:",inline"`
}

func itemID(categorySlug, itemSlug string) string {
	return categorySlug + "/" + itemSlug
}

func (r *MongoRepository) ListCategorySlugs(ctx context.Context) ([]string, error) {
	cursor, err := r.categories.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	slugs := []string{}
	for cursor.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode category key: %w", err)
		}
		slugs = append(slugs, doc.ID)
	}
	return slugs, cursor.Err()
}

func (r *MongoRepository) DeleteCategory(ctx context.Context, slug string) error {
	// Items first, then the owning document
	if _, err := r.items.DeleteMany(ctx, bson.M{"categorySlug": slug}); err != nil {
		return fmt.Errorf("failed to delete items of %s: %w", slug, err)
	}
	if _, err := r.categories.DeleteOne(ctx, bson.M{"_id": slug}); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", slug, err)
	}
	return nil
}

func (r *MongoRepository) WriteCategory(ctx context.Context, doc models.CategoryDoc) error {
	_, err := r.categories.ReplaceOne(ctx,
		bson.M{"_id": doc.Slug},
		categoryDoc{ID: doc.Slug, CategoryDoc: doc},
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to write category %s: %w", doc.Slug, err)
	}
	return nil
}

func (r *MongoRepository) WriteItem(ctx context.Context, categorySlug string, item models.Item) error {
	id := itemID(categorySlug, item.Slug)
	_, err := r.items.ReplaceOne(ctx,
		bson.M{"_id": id},
		itemDoc{ID: id, CategorySlug: categorySlug, Item: item},
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to write item %s: %w", id, err)
	}
	return nil
}

func (r *MongoRepository) ListCategories(ctx context.Context) ([]models.CategoryDoc, error) {
	cursor, err := r.categories.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "categoryOrder", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	docs := []models.CategoryDoc{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return docs, nil
}

func (r *MongoRepository) GetCategory(ctx context.Context, slug string) (*models.CategoryDoc, error) {
	var doc models.CategoryDoc
	err := r.categories.FindOne(ctx, bson.M{"_id": slug}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category %s: %w", slug, err)
	}
	return &doc, nil
}

func (r *MongoRepository) ListItems(ctx context.Context, categorySlug string) ([]models.Item, error) {
	cursor, err := r.items.Find(ctx, bson.M{"categorySlug": categorySlug})
	if err != nil {
		return nil, fmt.Errorf("failed to list items of %s: %w", categorySlug, err)
	}
	defer cursor.Close(ctx)

	items := []models.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, nil
}

func (r *MongoRepository) GetItem(ctx context.Context, categorySlug, itemSlug string) (*models.Item, error) {
	var doc models.Item
	err := r.items.FindOne(ctx, bson.M{"_id": itemID(categorySlug, itemSlug)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item %s/%s: %w", categorySlug, itemSlug, err)
	}
	return &doc, nil
}

func (r *MongoRepository) RandomItem(ctx context.Context) (*models.Item, error) {
	cursor, err := r.items.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"isDeleted": false}}},
		bson.D{{Key: "$sample", Value: bson.M{"size": 1}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sample items: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode sampled item: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return &items[0], nil
}
