package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	POS         POSConfig      `mapstructure:"pos"`
	Seed        SeedConfig     `mapstructure:"seed"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver             string        `mapstructure:"driver"`
	Host               string        `mapstructure:"host"`
	Port               string        `mapstructure:"port"`
	Username           string        `mapstructure:"username"`
	Password           string        `mapstructure:"password"`
	Database           string        `mapstructure:"database"`
	SSLMode            string        `mapstructure:"sslMode"`
	DSN                string        `mapstructure:"dsn"`
	MaxOpenConns       int           `mapstructure:"maxOpenConns"`
	MaxIdleConns       int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime    time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime    time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout       time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts      int           `mapstructure:"retryAttempts"`
	RetryDelay         time.Duration `mapstructure:"retryDelay"`         // seconds
	SlowQueryThreshold time.Duration `mapstructure:"slowQueryThreshold"` // milliseconds
	IsolationLevel     string        `mapstructure:"isolationLevel"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// POSConfig contains register behaviour settings
type POSConfig struct {
	Timezone            string        `mapstructure:"timezone"`
	DefaultOperatorCode string        `mapstructure:"defaultOperatorCode"`
	DefaultStoreCode    string        `mapstructure:"defaultStoreCode"`
	DefaultTerminalCode string        `mapstructure:"defaultTerminalCode"`
	RequestTimeout      time.Duration `mapstructure:"requestTimeout"` // seconds
}

// SeedConfig controls start-up data
type SeedConfig struct {
	SampleProducts bool `mapstructure:"sampleProducts"`
}

var validDrivers = map[string]bool{
	"postgres": true,
	"mysql":    true,
	"sqlite":   true,
}

// Validate reports every missing or inconsistent setting at once
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}

	for _, origin := range c.Server.AllowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			problems = append(problems, fmt.Sprintf("server.allowedOrigins entry %q must be \"*\" or an http(s) origin", origin))
		}
	}

	if !validDrivers[c.Database.Driver] {
		problems = append(problems, fmt.Sprintf("database.driver %q is not one of postgres, mysql, sqlite", c.Database.Driver))
	}
	if c.Database.DSN == "" && c.Database.Driver != "sqlite" {
		if c.Database.Host == "" {
			problems = append(problems, "database.host (POS_DB_HOST)")
		}
		if c.Database.Username == "" {
			problems = append(problems, "database.username (POS_DB_USERNAME)")
		}
		if c.Database.Database == "" {
			problems = append(problems, "database.database (POS_DB_NAME)")
		}
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		problems = append(problems, "database.maxIdleConns must not exceed database.maxOpenConns")
	}

	if _, err := time.LoadLocation(c.POS.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("pos.timezone %q: %v", c.POS.Timezone, err))
	}
	if len(c.POS.DefaultOperatorCode) > 10 || len(c.POS.DefaultStoreCode) > 5 || len(c.POS.DefaultTerminalCode) > 3 {
		problems = append(problems, "pos default codes exceed 10/5/3 characters")
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

// Location resolves the configured register timezone
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.POS.Timezone)
}
