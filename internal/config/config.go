// Package config loads the larder configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the CLI.
type Config struct {
	// DatabasePath locates the SQLite snapshot database.
	DatabasePath string `yaml:"database_path"`

	// DaysThreshold is the default expiring-soon window in days.
	DaysThreshold int `yaml:"days_threshold"`

	// Barcode configures the product lookup collaborator.
	Barcode BarcodeConfig `yaml:"barcode"`
}

// BarcodeConfig configures the Open Food Facts client.
type BarcodeConfig struct {
	BaseURL string   `yaml:"base_url"`
	Timeout Duration `yaml:"timeout"`
}

// Duration is a time.Duration that unmarshals from YAML strings like
// "10s" or "1m30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the built-in configuration: database under the user
// config directory, a 7-day expiring window, and the public Open Food
// Facts endpoint.
func Default() Config {
	return Config{
		DatabasePath:  defaultDatabasePath(),
		DaysThreshold: 7,
		Barcode: BarcodeConfig{
			BaseURL: "https://world.openfoodfacts.org",
			Timeout: Duration(10 * time.Second),
		},
	}
}

// Load reads the config file at path, layered over the defaults. A
// missing file is not an error - the defaults apply. The LARDER_DB
// environment variable, when set, overrides the database path.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if db := os.Getenv("LARDER_DB"); db != "" {
		cfg.DatabasePath = db
	}

	if cfg.DaysThreshold <= 0 {
		return Config{}, fmt.Errorf("days_threshold must be positive, got %d", cfg.DaysThreshold)
	}

	return cfg, nil
}

// defaultDatabasePath places the database under the user config dir,
// falling back to the working directory when that is unavailable.
func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "larder.db"
	}
	return filepath.Join(dir, "larder", "larder.db")
}
