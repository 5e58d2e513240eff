package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Lock     LockConfig     `yaml:"lock"`
	Boards   BoardsConfig   `yaml:"boards"`
	Events   EventsConfig   `yaml:"events"`
	Logging  LoggingConfig  `yaml:"logging"`
	Theme    Theme          `yaml:"theme"`
}

// DatabaseConfig selects the node store driver
type DatabaseConfig struct {
	// Driver is "sqlite" (default) or "pgx"
	Driver string `yaml:"driver"`
	// DSN is a file path for sqlite or a postgres URL for pgx
	DSN string `yaml:"dsn"`
}

// LockConfig selects how per-parent exclusive locks are taken
type LockConfig struct {
	// Backend is "memory" (single process, default) or "redis" (lease records)
	Backend       string        `yaml:"backend"`
	Timeout       time.Duration `yaml:"timeout"`
	LeaseTTL      time.Duration `yaml:"lease_ttl"`
	RetryInterval time.Duration `yaml:"retry_interval"`
	RedisURL      string        `yaml:"redis_url"`
}

// BoardsConfig holds list manager tunables
type BoardsConfig struct {
	DefaultGroups []string `yaml:"default_groups"`
	MaxWalkDepth  int      `yaml:"max_walk_depth"`
}

// EventsConfig controls mutation notifications
type EventsConfig struct {
	PublishRetries int `yaml:"publish_retries"`
}

// LoggingConfig controls the slog handler
type LoggingConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

const (
	DriverSQLite = "sqlite"
	DriverPgx    = "pgx"

	LockMemory = "memory"
	LockRedis  = "redis"

	maxWalkDepthLimit = 1_000_000
)

// DefaultGroupNames are attached to a board the first time it is set up
var DefaultGroupNames = []string{"Backlog", "Ready", "In Progress", "Done"}

// Default returns a config with every field set to its default
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads config from $ARBOR_CONFIG or the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		return Default(), nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path, falling back to defaults
// when the file does not exist
func LoadFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the given path, creating parent directories
func (c *Config) Save(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if explicit := os.Getenv("ARBOR_CONFIG"); explicit != "" {
		return explicit, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "arbor", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "arbor", "config.yaml"), nil
}

// DataDir returns ~/.arbor, where the sqlite database and logs live by default
func DataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".arbor"
	}
	return filepath.Join(homeDir, ".arbor")
}

// applyDefaults fills in missing configuration with defaults and clamps
// values into their accepted ranges
func (c *Config) applyDefaults() {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	if c.Database.Driver != DriverPgx {
		c.Database.Driver = DriverSQLite
	}
	if c.Database.DSN == "" && c.Database.Driver == DriverSQLite {
		c.Database.DSN = filepath.Join(DataDir(), "boards.db")
	}

	c.Lock.Backend = strings.ToLower(strings.TrimSpace(c.Lock.Backend))
	if c.Lock.Backend != LockRedis {
		c.Lock.Backend = LockMemory
	}
	if c.Lock.Timeout <= 0 {
		c.Lock.Timeout = 5 * time.Second
	}
	if c.Lock.LeaseTTL <= 0 {
		c.Lock.LeaseTTL = 30 * time.Second
	}
	// A lease shorter than the wait bound would expire under a live holder
	if c.Lock.LeaseTTL < c.Lock.Timeout {
		c.Lock.LeaseTTL = c.Lock.Timeout
	}
	if c.Lock.RetryInterval <= 0 {
		c.Lock.RetryInterval = 25 * time.Millisecond
	}
	if c.Lock.RedisURL == "" {
		c.Lock.RedisURL = "redis://localhost:6379/0"
	}

	if len(c.Boards.DefaultGroups) == 0 {
		c.Boards.DefaultGroups = append([]string(nil), DefaultGroupNames...)
	}
	if c.Boards.MaxWalkDepth <= 0 {
		c.Boards.MaxWalkDepth = 10_000
	}
	if c.Boards.MaxWalkDepth > maxWalkDepthLimit {
		c.Boards.MaxWalkDepth = maxWalkDepthLimit
	}

	if c.Events.PublishRetries <= 0 {
		c.Events.PublishRetries = 3
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Path == "" {
		c.Logging.Path = filepath.Join(DataDir(), "logs", "arbor.log")
	}

	c.Theme.ApplyDefaults()
}
