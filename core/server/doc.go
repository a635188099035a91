// Package server holds configuration for the HTTP surface of the menu
// manager.
//
// The server itself is assembled in cmd/start.go; this package only defines
// the settings it needs (listen port, optional API key). Keeping the struct
// here lets core/config bind defaults without importing Fiber.
package server
