package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Dialector selects the GORM dialector for the configured driver
func (c *Config) Dialector() (gorm.Dialector, error) {
	dsn := c.ConnectionString()

	switch c.Driver {
	case DriverPostgres:
		return postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: false,
		}), nil
	case DriverMySQL:
		return mysql.New(mysql.Config{
			DSN:                       dsn,
			DefaultStringSize:         255,
			SkipInitializeWithVersion: false,
		}), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.Driver)
	}
}
