// Package config loads stripclean settings from defaults, an optional TOML
// file and STRIPCLEAN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"greg-hacke/stripclean/meta"
)

// EnvPrefix prefixes environment overrides, e.g. STRIPCLEAN_SERVER_PORT
const EnvPrefix = "STRIPCLEAN"

type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Log            LogConfig            `mapstructure:"log"`
	Clean          CleanConfig          `mapstructure:"clean"`
	Classification ClassificationConfig `mapstructure:"classification"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	MaxUploadMB     int           `mapstructure:"max_upload_mb"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
	RateLimit       float64       `mapstructure:"rate_limit"` // requests per second per client, 0 disables
	RateBurst       int           `mapstructure:"rate_burst"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // console or json
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

type CleanConfig struct {
	JPEGQuality int `mapstructure:"jpeg_quality"`
}

// ClassificationConfig holds the tag-name markers for each threat level
type ClassificationConfig struct {
	Critical []string `mapstructure:"critical"`
	Warning  []string `mapstructure:"warning"`
}

// SetDefaults registers every key with its default value
func SetDefaults(v *viper.Viper) {
	// -- Server --
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.max_upload_mb", 32)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.rate_limit", 0.0)
	v.SetDefault("server.rate_burst", 20)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "10s")

	// -- Log --
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age", 30)
	v.SetDefault("log.compress", true)

	// -- Clean --
	v.SetDefault("clean.jpeg_quality", 95)

	// -- Classification --
	policy := meta.DefaultPolicy()
	v.SetDefault("classification.critical", policy.Critical)
	v.SetDefault("classification.warning", policy.Warning)
}

// New returns a viper instance with defaults and environment binding set up
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load unmarshals and validates the configuration held by v
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// LoadFile reads path, or searches the usual locations for stripclean.toml
// when path is empty. A missing file in the search locations is not an error.
// It returns the file actually used, if any.
func LoadFile(path string) (*Config, string, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("stripclean")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "stripclean"))
		}
		v.AddConfigPath("/etc/stripclean")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg, err := Load(v)
	if err != nil {
		return nil, "", err
	}
	return cfg, v.ConfigFileUsed(), nil
}

// Validate checks the configuration for sane values
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535")
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server.max_upload_mb must be a positive integer")
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must not be negative")
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst <= 0 {
		return fmt.Errorf("server.rate_burst must be a positive integer when rate limiting is enabled")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be one of: console, json")
	}
	if c.Clean.JPEGQuality < 1 || c.Clean.JPEGQuality > 100 {
		return fmt.Errorf("clean.jpeg_quality must be between 1 and 100")
	}
	for _, markers := range [][]string{c.Classification.Critical, c.Classification.Warning} {
		for _, m := range markers {
			// An empty marker would match every tag
			if m == "" {
				return fmt.Errorf("classification markers must not be empty")
			}
		}
	}
	return nil
}

// Addr is the listen address
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// MaxUploadBytes is the request body limit in bytes
func (s ServerConfig) MaxUploadBytes() int64 {
	return int64(s.MaxUploadMB) << 20
}

// Policy builds the classification policy. The slices are copied so the
// policy shares nothing with the configuration.
func (c *Config) Policy() meta.Policy {
	return meta.Policy{
		Critical: append([]string(nil), c.Classification.Critical...),
		Warning:  append([]string(nil), c.Classification.Warning...),
	}
}
