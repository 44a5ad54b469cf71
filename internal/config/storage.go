package config

import "time"

// SQLite driver names as registered with database/sql.
const (
	DriverModernc = "sqlite"  // modernc.org/sqlite, pure Go
	DriverMattn   = "sqlite3" // github.com/mattn/go-sqlite3, requires cgo
)

// ValidDrivers lists the supported storage drivers.
var ValidDrivers = []string{DriverModernc, DriverMattn}

// StorageConfig configures the employee table file.
type StorageConfig struct {
	Driver      string `yaml:"driver"`       // sqlite, sqlite3
	Path        string `yaml:"path"`         // database file, fixed for the process lifetime
	BusyTimeout string `yaml:"busy_timeout"` // e.g. "5s"
}

// GetBusyTimeout returns the busy timeout as a duration.
func (c *Config) GetBusyTimeout() time.Duration {
	d, err := parseDuration(c.Storage.BusyTimeout)
	if err != nil || d == 0 {
		return 5 * time.Second
	}
	return d
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
