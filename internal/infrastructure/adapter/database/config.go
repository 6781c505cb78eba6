package database

import (
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config represents database configuration
type Config struct {
	Driver             string
	Host               string
	Port               int
	Username           string
	Password           string
	Database           string
	SSLMode            string
	DSN                string // overrides the fields above when set
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	QueryTimeout       time.Duration
	LogLevel           string
	RetryAttempts      int
	RetryDelay         time.Duration
	SlowQueryThreshold time.Duration
	IsolationLevel     string
}

// DefaultConfig returns a Config with default values.
// Credentials are never defaulted.
func DefaultConfig() *Config {
	return &Config{
		Driver:             DriverPostgres,
		Port:               5432,
		SSLMode:            "disable",
		MaxOpenConns:       15,
		MaxIdleConns:       5,
		ConnMaxLifetime:    time.Hour,
		ConnMaxIdleTime:    10 * time.Minute,
		QueryTimeout:       10 * time.Second,
		LogLevel:           "warn",
		RetryAttempts:      3,
		RetryDelay:         time.Second,
		SlowQueryThreshold: 200 * time.Millisecond,
		IsolationLevel:     "read_committed",
	}
}

var isolationLevels = map[string]sql.IsolationLevel{
	"":                 sql.LevelDefault,
	"read_uncommitted": sql.LevelReadUncommitted,
	"read_committed":   sql.LevelReadCommitted,
	"repeatable_read":  sql.LevelRepeatableRead,
	"serializable":     sql.LevelSerializable,
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPostgres, DriverMySQL:
		if c.DSN == "" {
			if c.Host == "" {
				return errors.New("database host is required")
			}
			if c.Port <= 0 || c.Port > 65535 {
				return fmt.Errorf("invalid port number: %d", c.Port)
			}
			if c.Username == "" {
				return errors.New("database username is required")
			}
			if c.Database == "" {
				return errors.New("database name is required")
			}
		}
	case DriverSQLite:
		if c.DSN == "" && c.Database == "" {
			return errors.New("sqlite requires a dsn or a database file")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.Driver == DriverPostgres {
		validSSLModes := map[string]bool{
			"disable":     true,
			"require":     true,
			"verify-ca":   true,
			"verify-full": true,
			"prefer":      true,
		}
		if !validSSLModes[c.SSLMode] {
			return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
		}
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be positive, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts must be non-negative, got: %d", c.RetryAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative, got: %s", c.RetryDelay)
	}
	if _, ok := isolationLevels[c.IsolationLevel]; !ok {
		return fmt.Errorf("invalid isolation level: %s", c.IsolationLevel)
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"debug":  true,
		"info":   true,
		"warn":   true,
		"error":  true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

// TxOptions returns the options every unit of work begins with.
// SQLite only supports its default level, so it always gets nil.
func (c *Config) TxOptions() *sql.TxOptions {
	level := isolationLevels[c.IsolationLevel]
	if c.Driver == DriverSQLite || level == sql.LevelDefault {
		return nil
	}
	return &sql.TxOptions{Isolation: level}
}

// ConnectionString returns the driver specific data source name
func (c *Config) ConnectionString() string {
	if c.DSN != "" {
		return c.DSN
	}

	switch c.Driver {
	case DriverMySQL:
		return c.mysqlDSN()
	case DriverSQLite:
		return "file:" + c.Database + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	default:
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
		)
	}
}

func (c *Config) mysqlDSN() string {
	cfg := gomysql.NewConfig()
	cfg.User = c.Username
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	cfg.DBName = c.Database
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	// Report matched rather than changed rows so no-op updates are not mistaken for misses
	cfg.ClientFoundRows = true
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	switch strings.ToLower(c.SSLMode) {
	case "require", "verify-ca":
		cfg.TLSConfig = "skip-verify"
	case "verify-full":
		cfg.TLSConfig = "true"
	case "prefer":
		cfg.TLSConfig = "preferred"
	}
	return cfg.FormatDSN()
}

// SafeTarget describes the connection target without credentials, for logs
func (c *Config) SafeTarget() string {
	if c.Driver == DriverSQLite {
		if c.Database != "" {
			return c.Database
		}
		return "sqlite"
	}
	if c.DSN != "" {
		return c.Driver + " (dsn)"
	}
	return fmt.Sprintf("%s@%s:%d/%s", c.Username, c.Host, c.Port, c.Database)
}
