// Package models defines the data shapes of the menu catalog.
//
// A catalog is a two-level hierarchy: categories own items. Row is the raw
// spreadsheet record before coercion; Category/Item are the built forms; the
// *Doc types are what actually lands in the document store.
package models
