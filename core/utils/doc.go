// Package utils provides string coercion and normalization helpers shared
// across the menu pipeline.
//
// The spreadsheet that drives the menu sync is hand-edited, so these helpers
// never fail: unparseable numbers become 0 and anything that is not "TRUE"
// becomes false. This keeps a single bad cell from aborting a whole run.
//
// # Helpers
//
//   - ParseNumber: numeric string to float64, non-numeric -> 0.
//   - ParseBool: case-insensitive "TRUE" -> true, else false.
//   - Slugify: display name to URL-safe document key.
//   - NormalizeName: loose-comparison form used by the image resolver.
//
// # Usage
//
//	price := utils.ParseNumber(row.Price)     // "12.50" -> 12.5
//	slug := utils.Slugify("Chef's Salad!")    // "chefs-salad"
package utils
