// Package config provides configuration management for pseudo-manager.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults taken from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, verify cache TTL)
//   - Database: graph store connection details (MySQL or SQLite)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
