package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port          int    `mapstructure:"port"           validate:"required,gt=0,lt=65536"`
	LogLevel      string `mapstructure:"log_level"      validate:"required,oneof=debug info warn error"`
	AllowedOrigin string `mapstructure:"allowed_origin" validate:"required"`
}

// DatabaseConfig contains all database-related configuration settings.
// An empty URL selects the in-process store.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url"                       validate:"omitempty,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gte=1"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=0"`
}

// Durable reports whether a database connection target is configured.
func (c DatabaseConfig) Durable() bool {
	return c.URL != ""
}

// ConnMaxLifetime returns the connection lifetime as a duration.
func (c DatabaseConfig) ConnMaxLifetime() time.Duration {
	return time.Duration(c.ConnMaxLifetimeMinutes) * time.Minute
}

// ClassifierConfig contains settings for the remote task classifier.
// An empty URL means only the local keyword rules are used.
type ClassifierConfig struct {
	URL       string `mapstructure:"url"        validate:"omitempty,url"`
	TimeoutMS int    `mapstructure:"timeout_ms" validate:"gt=0"`
}

// Timeout returns the remote call timeout as a duration.
func (c ClassifierConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}
