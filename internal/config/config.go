package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// DatabaseConfig selects the optional persistent store.
type DatabaseConfig struct {
	Driver string `json:"driver"` // "sqlite" or "" (disabled)
	Path   string `json:"path"`
}

// RedisConfig enables the redis-backed repldb store when Addr is set.
type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
	Prefix   string `json:"prefix,omitempty"`
}

// IdentityConfig controls connection token verification.
type IdentityConfig struct {
	PublicKey string `json:"public_key,omitempty"` // hex-encoded Ed25519 key
}

// ReplspaceConfig tunes the replspace side-channel API.
type ReplspaceConfig struct {
	TimeoutSeconds int     `json:"timeout_seconds"`
	RateLimit      float64 `json:"rate_limit"` // requests per second
	Burst          int     `json:"burst"`
}

// Config is the homeval server configuration.
type Config struct {
	ListenAddr    string          `json:"listen_addr"`
	ReplspaceAddr string          `json:"replspace_addr"` // empty disables the replspace API
	ReplDBAddr    string          `json:"repldb_addr"`    // empty disables the repldb API
	Database      DatabaseConfig  `json:"database"`
	Redis         RedisConfig     `json:"redis"`
	LogLevel      string          `json:"log_level"` // debug, info, warn, error, none
	LogPath       string          `json:"log_path"`  // empty logs to stderr
	PidFile       string          `json:"pid_file,omitempty"`
	DotReplitPath string          `json:"dotreplit_path"`
	Identity      IdentityConfig  `json:"identity"`
	Replspace     ReplspaceConfig `json:"replspace"`
}

func defaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appData := strings.TrimSpace(os.Getenv("APPDATA")); appData != "" {
			return filepath.Join(appData, "homeval")
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "AppData", "Roaming", "homeval")
	default:
		if configHome := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); configHome != "" {
			return filepath.Join(configHome, "homeval")
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".config", "homeval")
	}
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:    "0.0.0.0:8080",
		ReplspaceAddr: "127.0.0.1:8283",
		ReplDBAddr:    "127.0.0.1:0",
		LogLevel:      "info",
		DotReplitPath: ".replit",
		Replspace: ReplspaceConfig{
			TimeoutSeconds: 60,
			RateLimit:      10,
			Burst:          20,
		},
	}
}

// Load loads configuration from file. A missing file yields the defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		// Unmarshal into default config (overrides only provided fields)
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := config.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnv applies HOMEVAL_* overrides.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("HOMEVAL_ADDR"); ok {
		c.ListenAddr = v
	}
	if v, ok := lookup("HOMEVAL_REPLSPACE_ADDR"); ok {
		c.ReplspaceAddr = v
	}
	if v, ok := lookup("HOMEVAL_REPLDB_ADDR"); ok {
		c.ReplDBAddr = v
	}
	if v, ok := lookup("HOMEVAL_DB"); ok && v != "" {
		c.Database.Driver = "sqlite"
		c.Database.Path = strings.TrimPrefix(v, "sqlite://")
	}
	if v, ok := lookup("HOMEVAL_REDIS_ADDR"); ok {
		c.Redis.Addr = v
	}
	if v, ok := lookup("HOMEVAL_REDIS_DB"); ok {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HOMEVAL_REDIS_DB %q: %w", v, err)
		}
		c.Redis.DB = db
	}
	if v, ok := lookup("HOMEVAL_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	return nil
}

// Validate checks field combinations that cannot work at runtime.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "":
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("database.path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr must not be empty")
	}
	if c.Replspace.TimeoutSeconds <= 0 {
		c.Replspace.TimeoutSeconds = DefaultConfig().Replspace.TimeoutSeconds
	}
	return nil
}

// Save writes the configuration as indented JSON.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetConfigPath returns the default config file location.
func GetConfigPath() string {
	return filepath.Join(defaultConfigDir(), "config.json")
}
