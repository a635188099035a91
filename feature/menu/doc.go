// Package menu implements the restaurant menu catalog: the building blocks
// of the sync run and the HTTP read surface over the synced documents.
//
// # Sync building blocks
//
//   - ReadRows: lenient CSV parse of the menu spreadsheet.
//   - ListObjectNames: one unfiltered enumeration of the image bucket.
//   - FindMatch / Resolver: normalization-based file name matching with a
//     fuzzy fallback, minting presigned image URLs.
//   - BuildCatalog: folds rows into an insertion-ordered category tree with
//     lenient field coercion.
//   - Repository / MongoRepository: the document-store contract and its
//     MongoDB implementation (collections "menu" and "menu_items").
//
// The run itself is sequenced by feature/menu/sync.
//
// # Read API
//
// Service and Handler serve the storefront's read path: category browse,
// product detail and the randomizer. Routes are registered through the
// Feature type via core/loader.
package menu
