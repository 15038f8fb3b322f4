package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"repo-reconciler/core/dedupe"
	"repo-reconciler/core/logger"
	"repo-reconciler/core/reconcile"
	"repo-reconciler/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Input holds the paths of the two exports being reconciled.
	Input InputConfig `mapstructure:"input"`
	// Output holds the paths of the generated reports.
	Output OutputConfig `mapstructure:"output"`
	// Columns holds the substring hints used to locate required columns.
	Columns ColumnsConfig `mapstructure:"columns"`
	// Fuzzy holds the candidate selection settings.
	Fuzzy reconcile.FuzzyOptions `mapstructure:"fuzzy"`
	// Dedupe holds the deduplication settings.
	Dedupe dedupe.Config `mapstructure:"dedupe"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and the .env
// file found in path.
func LoadConfig(path string) (*Config, error) {
	envPath := filepath.Join(path, ".env")

	// Missing .env is fine; the environment and defaults still apply
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Register every key with its tag default so AutomaticEnv can see it
	bindValues(v, Config{}, "")

	// INPUT_HIGHWAY -> input.highway
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks values that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if c.Fuzzy.Threshold < 0 || c.Fuzzy.Threshold > 1 {
		return fmt.Errorf("fuzzy.threshold must be within [0, 1], got %v", c.Fuzzy.Threshold)
	}
	if c.Fuzzy.MaxCandidates < 0 {
		return fmt.Errorf("fuzzy.max_candidates must not be negative, got %d", c.Fuzzy.MaxCandidates)
	}
	if c.Dedupe.KeyColumn < 0 {
		return fmt.Errorf("dedupe.key_column must not be negative, got %d", c.Dedupe.KeyColumn)
	}
	hints := []struct{ key, value string }{
		{"columns.record", c.Columns.Record},
		{"columns.highway", c.Columns.Highway},
		{"columns.playable", c.Columns.Playable},
		{"columns.code", c.Columns.Code},
	}
	for _, h := range hints {
		if h.value == "" {
			return fmt.Errorf("%s must not be empty", h.key)
		}
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
