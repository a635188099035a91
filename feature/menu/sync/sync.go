package sync

import (
	"context"
	"time"

	"menu-manager/core/storage"
	"menu-manager/feature/menu"

	"go.uber.org/zap"
)

// Runner drives one full sync: storage listing, spreadsheet read, catalog
// build, then the full-replace write against the document store.
type Runner struct {
	Client   storage.Client
	Bucket   string
	Repo     menu.Repository
	Resolver menu.ImageResolver
	Logger   *zap.Logger
}

// Summary reports the counts of one completed run.
type Summary struct {
	Objects    int
	Rows       int
	Categories int
	Items      int
	Deleted    int
	DryRun     bool
}

// Run executes the sync. With dryRun set, the catalog is built and reported
// but the store is left untouched.
//
// There is no rollback: an error during the replace phase leaves the store
// partially cleared or partially rewritten, and it is the caller's job to
// run again. Concurrent runs against the same store are unsafe.
func (r *Runner) Run(ctx context.Context, csvPath string, dryRun bool) (*Summary, error) {
	l := r.Logger

	l.Info("Scanning image bucket", zap.String("bucket", r.Bucket))
	objectNames, err := menu.ListObjectNames(ctx, r.Client, r.Bucket)
	if err != nil {
		return nil, err
	}
	l.Info("Bucket scanned", zap.Int("objects", len(objectNames)))

	l.Info("Reading menu spreadsheet", zap.String("path", csvPath))
	rows, err := menu.ReadRows(csvPath)
	if err != nil {
		return nil, err
	}
	l.Info("Spreadsheet read", zap.Int("rows", len(rows)))

	catalog, err := menu.BuildCatalog(ctx, rows, objectNames, r.Resolver)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Objects:    len(objectNames),
		Rows:       len(rows),
		Categories: catalog.Len(),
		Items:      catalog.ItemCount(),
		DryRun:     dryRun,
	}

	if dryRun {
		for _, cat := range catalog.Categories() {
			l.Info("Category built",
				zap.String("category", cat.Name),
				zap.Int("items", len(cat.Items)))
		}
		l.Info("Dry-run: store not touched",
			zap.Int("categories", summary.Categories),
			zap.Int("items", summary.Items))
		return summary, nil
	}

	deleted, err := r.clearStore(ctx)
	if err != nil {
		return nil, err
	}
	summary.Deleted = deleted

	if err := r.writeCatalog(ctx, catalog); err != nil {
		return nil, err
	}

	l.Info("Sync complete",
		zap.Int("categories", summary.Categories),
		zap.Int("items", summary.Items))
	return summary, nil
}

// clearStore is the delete phase: every stored category goes, items first,
// depth-first per category in listing order.
func (r *Runner) clearStore(ctx context.Context) (int, error) {
	slugs, err := r.Repo.ListCategorySlugs(ctx)
	if err != nil {
		return 0, err
	}
	r.Logger.Info("Clearing existing catalog", zap.Int("categories", len(slugs)))
	for _, slug := range slugs {
		if err := r.Repo.DeleteCategory(ctx, slug); err != nil {
			return 0, err
		}
	}
	return len(slugs), nil
}

// writeCatalog is the write phase: categories in build order, the category
// document before its items.
func (r *Runner) writeCatalog(ctx context.Context, catalog *menu.Catalog) error {
	now := time.Now()
	for _, cat := range catalog.Categories() {
		if err := r.Repo.WriteCategory(ctx, cat.Doc(now)); err != nil {
			return err
		}
		for _, item := range cat.Items {
			if err := r.Repo.WriteItem(ctx, cat.Slug, item); err != nil {
				return err
			}
		}
		r.Logger.Info("Category written",
			zap.String("category", cat.Name),
			zap.Int("items", len(cat.Items)))
	}
	return nil
}
