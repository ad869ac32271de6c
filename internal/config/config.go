// Package config loads and exposes ItemStore configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config provides read access to configuration values.
type Config struct {
	v *viper.Viper
}

// New wraps an existing Viper instance.
func New(v *viper.Viper) *Config {
	return &Config{v: v}
}

// Load reads configuration from an optional YAML file and the environment.
// Environment variables use the ITEMSTORE_ prefix with dots replaced by
// underscores (e.g. ITEMSTORE_DATABASE_PATH).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("database.path", "itemstore.db")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("ITEMSTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	return New(v), nil
}

// GetString returns the string value for the key.
func (c *Config) GetString(key string) string { return c.v.GetString(key) }

// GetInt returns the int value for the key.
func (c *Config) GetInt(key string) int { return c.v.GetInt(key) }

// GetBool returns the bool value for the key.
func (c *Config) GetBool(key string) bool { return c.v.GetBool(key) }

// GetDuration returns the duration value for the key.
func (c *Config) GetDuration(key string) time.Duration { return c.v.GetDuration(key) }

// IsSet reports whether the key has a value.
func (c *Config) IsSet(key string) bool { return c.v.IsSet(key) }

// Sub returns the configuration subtree under the key, or nil if the key
// is absent.
func (c *Config) Sub(key string) *Config {
	sub := c.v.Sub(key)
	if sub == nil {
		return nil
	}
	return New(sub)
}
