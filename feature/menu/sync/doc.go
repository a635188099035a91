// Package sync drives the full-replace reconciliation of the menu catalog.
//
// One run is strictly sequential: list the image bucket, read the
// spreadsheet, build the catalog in memory, then clear the document store
// and rewrite it. The two store phases are not wrapped in a transaction;
// the run is convenience tooling, executed manually and one at a time, and a
// failed run is repaired by simply running again.
//
// # Phases
//
//  1. Object listing — one unfiltered enumeration of the bucket.
//  2. Spreadsheet read — lenient CSV parse, no row dropped.
//  3. Catalog build — grouping, coercion, inline image resolution.
//  4. Replace — delete phase (depth-first per category), then write phase
//     (category document before its items, in build order).
//
// # Usage
//
//	runner := &sync.Runner{Client: client, Bucket: bucket, Repo: repo,
//	    Resolver: resolver, Logger: log}
//	summary, err := runner.Run(ctx, cfg.Sync.CSVPath, false)
package sync
