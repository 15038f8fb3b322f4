// Package config provides configuration management for the reconciler.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Every field carries its default in a struct tag, so
// running with no configuration at all reproduces the classic fixed file
// names in the working directory.
//
// # Configuration Structure
//
// The Config struct is passed explicitly to each stage and is divided into subsections:
//   - Input: paths of the highway and unified exports
//   - Output: paths of the matches, unmatched, possible and clean reports
//   - Columns: substring hints for the required columns
//   - Fuzzy: similarity threshold and candidate cap
//   - Dedupe: key column of the deduplication pass
//   - Storage: optional S3/MinIO exchange of inputs and reports
//   - Log: logging level and format
//
// Environment variables map onto nested keys, e.g. FUZZY_THRESHOLD -> fuzzy.threshold.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Input.Highway)
package config
