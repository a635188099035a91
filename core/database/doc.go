// Package database manages the connection to the document store backing the
// menu catalog.
//
// The catalog is a two-level hierarchy (categories owning items), which maps
// naturally onto MongoDB collections; see feature/menu for the collection
// layout. This package only knows how to dial and verify the connection.
//
// # Connection Semantics
//
// Connect performs an eager ping so that credential or connectivity problems
// abort a sync run before its destructive delete phase. All timeouts come
// from Config; there is no retry.
//
// # Usage
//
//	db, err := database.Connect(ctx, cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer database.Disconnect(context.Background(), db)
package database
