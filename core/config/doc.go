// Package config provides configuration management for the Menu Manager.
//
// It utilizes Viper for loading configuration from environment variables and
// a local .env file (via godotenv). Defaults come from `default` struct tags
// on each section's Config type, bound recursively by reflection.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MongoDB connection details
//   - Storage: S3/MinIO credentials and the image bucket
//   - Log: Logging level and format
//   - Sync: CSV path and catalog collection names for the sync run
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
