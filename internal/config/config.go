package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/prokizzle/fastlane-context-mcp/internal/projectfs"
	"github.com/prokizzle/fastlane-context-mcp/internal/signals"
)

const (
	// EnvPrefix namespaces environment overrides, e.g. FASTLANE_CTX_LOGLEVEL.
	EnvPrefix = "FASTLANE_CTX"
	// ConfigFileName is the basename (without extension) of the optional
	// YAML config file.
	ConfigFileName = "fastlane-context"

	// DefaultDBPath is where analysis runs are persisted. A leading ~/ is
	// expanded by the consumer.
	DefaultDBPath = "~/.fastlane-context/fastlane-context.db"
	// DefaultCacheSize bounds the per-root analysis cache.
	DefaultCacheSize = 32
	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"
)

// Config holds the tunable settings of the analyzer. Every field can be
// set in fastlane-context.yaml or through a FASTLANE_CTX_* environment
// variable (uppercased field key, e.g. FASTLANE_CTX_MAXWALKDEPTH).
type Config struct {
	// DBPath locates the SQLite database for analysis-run history.
	DBPath string `json:"dbPath" mapstructure:"dbPath"`
	// MaxWalkDepth bounds how deep project walks descend.
	MaxWalkDepth int `json:"maxWalkDepth" mapstructure:"maxWalkDepth"`
	// ScanLimit caps how many source files the framework scan reads.
	ScanLimit int `json:"scanLimit" mapstructure:"scanLimit"`
	// SkipDirs adds directory names to the built-in walk denylist.
	SkipDirs []string `json:"skipDirs" mapstructure:"skipDirs"`
	// CacheSize is the number of project analyses kept in the LRU cache.
	CacheSize int `json:"cacheSize" mapstructure:"cacheSize"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"logLevel" mapstructure:"logLevel"`
}

// DefaultConfig returns the configuration used when no file or
// environment overrides are present.
func DefaultConfig() *Config {
	return &Config{
		DBPath:       DefaultDBPath,
		MaxWalkDepth: projectfs.DefaultMaxDepth,
		ScanLimit:    signals.DefaultScanLimit,
		SkipDirs:     []string{},
		CacheSize:    DefaultCacheSize,
		LogLevel:     DefaultLogLevel,
	}
}

// Load resolves configuration from, in increasing precedence: built-in
// defaults, an optional fastlane-context.yaml (searched in dir and in
// ~/.fastlane-context), and FASTLANE_CTX_* environment variables. A .env
// file in the working directory is loaded first so fastlane-style
// projects can keep overrides next to their lanes; existing environment
// variables are never clobbered by it.
func Load(dir string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".fastlane-context"))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file falls back to defaults and environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dbPath", DefaultDBPath)
	v.SetDefault("maxWalkDepth", projectfs.DefaultMaxDepth)
	v.SetDefault("scanLimit", signals.DefaultScanLimit)
	v.SetDefault("skipDirs", []string{})
	v.SetDefault("cacheSize", DefaultCacheSize)
	v.SetDefault("logLevel", DefaultLogLevel)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return &ConfigError{Field: "dbPath", Message: "must not be empty"}
	}
	if c.MaxWalkDepth <= 0 {
		return &ConfigError{Field: "maxWalkDepth", Message: "must be positive"}
	}
	if c.ScanLimit <= 0 {
		return &ConfigError{Field: "scanLimit", Message: "must be positive"}
	}
	if c.CacheSize <= 0 {
		return &ConfigError{Field: "cacheSize", Message: "must be positive"}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "logLevel", Message: "must be one of debug, info, warn, error"}
	}
	return nil
}

// SlogLevel maps the configured level onto log/slog.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
