// Package config handles loading and saving IntelliProject configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix prefixes every environment override, e.g. INTELLIPROJECT_ENDPOINT.
	EnvPrefix = "INTELLIPROJECT"
	// FileName is the config file created by init.
	FileName = "config.yaml"
)

// Config holds all configuration for IntelliProject.
type Config struct {
	AppName  string        `yaml:"app_name" mapstructure:"app_name"`
	Version  string        `yaml:"version" mapstructure:"version"`
	Endpoint string        `yaml:"endpoint" mapstructure:"endpoint"` // Generate endpoint used by the UI and generate command
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`   // Client timeout, 0 for none
	Verbose  bool          `yaml:"verbose" mapstructure:"verbose"`
	LogFile  string        `yaml:"log_file" mapstructure:"log_file"` // Debug log written by the TUI when verbose
	Server   ServerConfig  `yaml:"server" mapstructure:"server"`
}

// ServerConfig holds settings for the reference backend.
type ServerConfig struct {
	Host           string        `yaml:"host" mapstructure:"host"`
	Port           int           `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string      `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	RequestTimeout time.Duration `yaml:"request_timeout" mapstructure:"request_timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		AppName:  "IntelliProject",
		Version:  "1.0.0",
		Endpoint: "http://127.0.0.1:8000/api/v1/generate",
		Timeout:  60 * time.Second,
		LogFile:  "debug.log",
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           8000,
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
			RequestTimeout: 60 * time.Second,
		},
	}
}

// SetDefaults registers the built-in configuration on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("app_name", d.AppName)
	v.SetDefault("version", d.Version)
	v.SetDefault("endpoint", d.Endpoint)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.allowed_origins", d.Server.AllowedOrigins)
	v.SetDefault("server.request_timeout", d.Server.RequestTimeout)
}

// Setup prepares v to read configuration: defaults, environment overrides,
// and the config file if one exists. file may be empty, in which case
// FileName is searched for in dir.
func Setup(v *viper.Viper, file, dir string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		if file == "" && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	return nil
}

// Load decodes the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	// Env values are a comma-separated string; depending on the decode path
	// they arrive whole, split on commas, or split on whitespace.
	cfg.Server.AllowedOrigins = splitList(strings.Join(cfg.Server.AllowedOrigins, ","))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout: %s", c.Timeout)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	return nil
}

// Addr returns the listen address of the reference backend.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Save writes cfg as YAML to path.
func Save(path string, cfg Config) error {
	out, err := yaml.Marshal(&fileConfig{
		AppName:  cfg.AppName,
		Version:  cfg.Version,
		Endpoint: cfg.Endpoint,
		Timeout:  cfg.Timeout.String(),
		Verbose:  cfg.Verbose,
		LogFile:  cfg.LogFile,
		Server: fileServerConfig{
			Host:           cfg.Server.Host,
			Port:           cfg.Server.Port,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			RequestTimeout: cfg.Server.RequestTimeout.String(),
		},
	})
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileConfig is the on-disk layout; durations are written in their
// human-readable form.
type fileConfig struct {
	AppName  string           `yaml:"app_name"`
	Version  string           `yaml:"version"`
	Endpoint string           `yaml:"endpoint"`
	Timeout  string           `yaml:"timeout"`
	Verbose  bool             `yaml:"verbose"`
	LogFile  string           `yaml:"log_file"`
	Server   fileServerConfig `yaml:"server"`
}

type fileServerConfig struct {
	Host           string   `yaml:"host"`
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	RequestTimeout string   `yaml:"request_timeout"`
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "intelliproject"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
