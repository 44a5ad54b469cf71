package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the config file read when no --config flag is given.
const DefaultConfigPath = "employeedesk.yaml"

// Config holds all employeedesk configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Employee table storage
	Storage StorageConfig `yaml:"storage"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Terminal form
	UI UIConfig `yaml:"ui"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "employeedesk",
		Version: "1.0.0",

		Storage: StorageConfig{
			Driver:      DriverModernc,
			Path:        "employees.db",
			BusyTimeout: "5s",
		},

		Logging: LoggingConfig{
			Level:     "info",
			Format:    "text",
			Dir:       filepath.Join(".employeedesk", "logs"),
			DebugMode: false,
		},

		UI: UIConfig{
			Theme:       ThemeAuto,
			TableHeight: 12,
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file is not an error: defaults (plus environment overrides) are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("EMPLOYEEDESK_DB"); path != "" {
		c.Storage.Path = path
	}
	if driver := os.Getenv("EMPLOYEEDESK_DB_DRIVER"); driver != "" {
		c.Storage.Driver = strings.ToLower(strings.TrimSpace(driver))
	}
	if theme := os.Getenv("EMPLOYEEDESK_THEME"); theme != "" {
		c.UI.Theme = strings.ToLower(strings.TrimSpace(theme))
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Storage.Path) == "" {
		return fmt.Errorf("storage path not configured (set storage.path or EMPLOYEEDESK_DB)")
	}

	validDriver := false
	for _, d := range ValidDrivers {
		if c.Storage.Driver == d {
			validDriver = true
			break
		}
	}
	if !validDriver {
		return fmt.Errorf("invalid storage driver: %s (valid: %v)", c.Storage.Driver, ValidDrivers)
	}

	if _, err := parseDuration(c.Storage.BusyTimeout); err != nil {
		return fmt.Errorf("invalid storage busy_timeout %q: %w", c.Storage.BusyTimeout, err)
	}

	switch c.UI.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("invalid ui theme: %s (valid: auto, light, dark)", c.UI.Theme)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	return nil
}
