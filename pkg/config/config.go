// Package config handles application configuration from files and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/radiocarbon-hq/radiocarbon/pkg/auth"
	"gopkg.in/yaml.v3"
)

// LogConfig is the logger configuration.
type LogConfig struct {
	// Format is the format of the logs.
	// Valid values are "json", "logfmt", and "text".
	Format string `env:"FORMAT" yaml:"format"`

	// Time format for the log `ts` field.
	// Format must be described in Golang's time format.
	TimeFormat string `env:"TIME_FORMAT" yaml:"time_format"`

	// Path to a file to write logs to.
	// If not set, logs will be written to stderr.
	Path string `env:"PATH" yaml:"path"`
}

// DBConfig is the database connection configuration.
type DBConfig struct {
	// Driver is the driver for the database.
	Driver string `env:"DRIVER" yaml:"driver"`

	// DataSource is the database data source name.
	DataSource string `env:"DATA_SOURCE" yaml:"data_source"`
}

// AuthConfig is the configuration of the login boundary.
type AuthConfig struct {
	// KeyPath is the path to the session token signing key.
	KeyPath string `env:"KEY_PATH" yaml:"key_path"`

	// Credentials is the fixed credential table logins are checked against.
	Credentials []auth.Credential `yaml:"credentials"`
}

// Config is the configuration for Radiocarbon.
type Config struct {
	// Name is the name of the workspace.
	Name string `env:"NAME" yaml:"name"`

	// Log is the logger configuration.
	Log LogConfig `envPrefix:"LOG_" yaml:"log"`

	// DB is the database configuration.
	DB DBConfig `envPrefix:"DB_" yaml:"db"`

	// Auth is the login boundary configuration.
	Auth AuthConfig `envPrefix:"AUTH_" yaml:"auth"`

	// DataPath is the path to the directory where Radiocarbon stores its
	// data.
	DataPath string `env:"DATA_PATH" yaml:"-"`
}

// Environ returns the config as a list of environment variables.
func (c *Config) Environ() []string {
	envs := []string{}
	if c == nil {
		return envs
	}

	envs = append(envs, []string{
		fmt.Sprintf("RADIOCARBON_DATA_PATH=%s", c.DataPath),
		fmt.Sprintf("RADIOCARBON_NAME=%s", c.Name),
		fmt.Sprintf("RADIOCARBON_LOG_FORMAT=%s", c.Log.Format),
		fmt.Sprintf("RADIOCARBON_LOG_TIME_FORMAT=%s", c.Log.TimeFormat),
		fmt.Sprintf("RADIOCARBON_DB_DRIVER=%s", c.DB.Driver),
		fmt.Sprintf("RADIOCARBON_DB_DATA_SOURCE=%s", c.DB.DataSource),
		fmt.Sprintf("RADIOCARBON_AUTH_KEY_PATH=%s", c.Auth.KeyPath),
	}...)

	return envs
}

// IsDebug returns true if the application is running in debug mode.
func IsDebug() bool {
	debug, _ := strconv.ParseBool(os.Getenv("RADIOCARBON_DEBUG"))
	return debug
}

// IsVerbose returns true if the application is running in verbose mode.
// Verbose mode is only enabled if debug mode is enabled.
func IsVerbose() bool {
	verbose, _ := strconv.ParseBool(os.Getenv("RADIOCARBON_VERBOSE"))
	return IsDebug() && verbose
}

// parseFile parses the given file as a configuration file.
// The file must be in YAML format.
func parseFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close() // nolint: errcheck
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	return cfg.Validate()
}

// ParseFile parses the config from the default file path.
// This also calls Validate() on the config.
func (c *Config) ParseFile() error {
	return parseFile(c, c.ConfigPath())
}

// ParseConfig parses the configuration from the given file, overriding with
// environment variables.
func ParseConfig(cfg *Config, path string) error {
	if err := parseFile(cfg, path); err != nil {
		return err
	}

	return parseEnv(cfg)
}

// parseEnv parses the environment variables as a configuration file.
func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix: "RADIOCARBON_",
	}); err != nil {
		return fmt.Errorf("parse environment variables: %w", err)
	}

	return cfg.Validate()
}

// ParseEnv parses the config from the environment variables.
// This also calls Validate() on the config.
func (c *Config) ParseEnv() error {
	return parseEnv(c)
}

// Parse parses the config from the default file path and environment
// variables. This also calls Validate() on the config.
func (c *Config) Parse() error {
	if err := c.ParseFile(); err != nil {
		return err
	}

	return c.ParseEnv()
}

// writeConfig writes the configuration to the given file.
func writeConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(newConfigFile(cfg)), 0o644) // nolint: errcheck, gosec
}

// WriteConfig writes the configuration to the default file.
func (c *Config) WriteConfig() error {
	return writeConfig(c, c.ConfigPath())
}

// DefaultDataPath returns the path to the data directory.
// It uses the RADIOCARBON_DATA_PATH environment variable if set, otherwise
// it uses "data".
func DefaultDataPath() string {
	dp := os.Getenv("RADIOCARBON_DATA_PATH")
	if dp == "" {
		dp = "data"
	}

	return dp
}

// ConfigPath returns the path to the config file.
func (c *Config) ConfigPath() string { // nolint:revive
	return filepath.Join(c.DataPath, "config.yaml")
}

// TokenPath returns the path to the persisted session token.
func (c *Config) TokenPath() string {
	return filepath.Join(c.DataPath, "session")
}

func exist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Exist returns true if the config file exists.
func (c *Config) Exist() bool {
	return exist(filepath.Join(c.DataPath, "config.yaml"))
}

// DefaultConfig returns the default Config. All the path values are relative
// to the data directory.
// Use Validate() to validate the config and ensure absolute paths.
func DefaultConfig() *Config {
	return &Config{
		Name:     "Radiocarbon",
		DataPath: DefaultDataPath(),
		DB: DBConfig{
			Driver:     "sqlite",
			DataSource: "radiocarbon.db" +
				"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)",
		},
		Auth: AuthConfig{
			KeyPath:     filepath.Join("auth", "radiocarbon_token_ed25519"),
			Credentials: auth.DefaultCredentials(),
		},
		Log: LogConfig{
			Format:     "text",
			TimeFormat: "2006-01-02 15:04:05",
		},
	}
}

// Validate validates the configuration and ensures path values are absolute.
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}

	// Use absolute paths
	if !filepath.IsAbs(c.DataPath) {
		dp, err := filepath.Abs(c.DataPath)
		if err != nil {
			return err
		}
		c.DataPath = dp
	}

	if c.Auth.KeyPath != "" && !filepath.IsAbs(c.Auth.KeyPath) {
		c.Auth.KeyPath = filepath.Join(c.DataPath, c.Auth.KeyPath)
	}

	if strings.HasPrefix(c.DB.Driver, "sqlite") && !filepath.IsAbs(c.DB.DataSource) {
		c.DB.DataSource = filepath.Join(c.DataPath, c.DB.DataSource)
	}

	return nil
}
