package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "POS"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Values already present in the environment win over .env
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	processDurations(&config)

	return &config, nil
}

func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 15) // pool of 5 plus 10 overflow
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 60) // minutes
	v.SetDefault("database.connMaxIdleTime", 10) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)           // seconds
	v.SetDefault("database.slowQueryThreshold", 200) // milliseconds
	v.SetDefault("database.isolationLevel", "read_committed")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("pos.timezone", "Local")
	v.SetDefault("pos.defaultOperatorCode", "9999999999")
	v.SetDefault("pos.defaultStoreCode", "30")
	v.SetDefault("pos.defaultTerminalCode", "90")
	v.SetDefault("pos.requestTimeout", 10) // seconds

	v.SetDefault("seed.sampleProducts", false)
}

// getEnvironment determines the environment from POS_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the short, documented variable names onto config keys
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"POS_DB_DRIVER":      "database.driver",
		"POS_DB_HOST":        "database.host",
		"POS_DB_PORT":        "database.port",
		"POS_DB_USERNAME":    "database.username",
		"POS_DB_PASSWORD":    "database.password",
		"POS_DB_NAME":        "database.database",
		"POS_DB_SSL_MODE":    "database.sslMode",
		"POS_DB_DSN":         "database.dsn",
		"POS_SERVER_HOST":    "server.host",
		"POS_LOGGER_LEVEL":   "logger.level",
		"POS_TIMEZONE":       "pos.timezone",
		"POS_DEFAULT_STORE":  "pos.defaultStoreCode",
		"POS_DEFAULT_POS_NO": "pos.defaultTerminalCode",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"POS_SERVER_PORT":                  "server.port",
		"POS_DB_MAX_OPEN_CONNS":            "database.maxOpenConns",
		"POS_DB_MAX_IDLE_CONNS":            "database.maxIdleConns",
		"POS_DB_CONN_MAX_LIFETIME_MINUTES": "database.connMaxLifetime",
		"POS_DB_RETRY_ATTEMPTS":            "database.retryAttempts",
	}
	for env, key := range intOverrides {
		if value := getEnvInt(env, -1); value >= 0 {
			v.Set(key, value)
		}
	}

	if seed := os.Getenv("POS_SEED_SAMPLE_PRODUCTS"); seed != "" {
		if enabled, err := strconv.ParseBool(seed); err == nil {
			v.Set("seed.sampleProducts", enabled)
		}
	}
}

func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations scales bare numbers to their documented unit.
// Values written with a unit ("30s", "1h") decode to at least a millisecond and are kept.
func processDurations(config *Config) {
	config.Server.ReadTimeout = scale(config.Server.ReadTimeout, time.Second)
	config.Server.WriteTimeout = scale(config.Server.WriteTimeout, time.Second)
	config.Server.IdleTimeout = scale(config.Server.IdleTimeout, time.Second)
	config.Server.ReadHeaderTimeout = scale(config.Server.ReadHeaderTimeout, time.Second)
	config.Server.ShutdownTimeout = scale(config.Server.ShutdownTimeout, time.Second)

	config.Database.ConnMaxLifetime = scale(config.Database.ConnMaxLifetime, time.Minute)
	config.Database.ConnMaxIdleTime = scale(config.Database.ConnMaxIdleTime, time.Minute)
	config.Database.QueryTimeout = scale(config.Database.QueryTimeout, time.Second)
	config.Database.RetryDelay = scale(config.Database.RetryDelay, time.Second)
	config.Database.SlowQueryThreshold = scale(config.Database.SlowQueryThreshold, time.Millisecond)

	config.POS.RequestTimeout = scale(config.POS.RequestTimeout, time.Second)
}

func scale(d, unit time.Duration) time.Duration {
	if d > 0 && d < time.Millisecond {
		return d * unit
	}
	return d
}
