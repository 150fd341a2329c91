// Package config provides configuration management for bucket-sync.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Command-line flags override the loaded values in cmd.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Storage: driver, endpoint, credentials and bucket
//   - Log: Logging level and format
//   - Sync: local root, target prefix, ignore patterns and listing filters
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
