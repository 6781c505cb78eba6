// Package databasetest provides a migrated in-memory SQLite database for tests.
package databasetest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/database"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/logger"
	"gorm.io/gorm"
)

var dbCounter atomic.Int64

// TestDB bundles a connected manager with the clock its repositories read
type TestDB struct {
	Manager *database.Manager
	Config  *database.Config
	DB      *gorm.DB
	Clock   *Clock
	Logger  coreport.Logger
}

// New connects to a fresh private in-memory database, migrates it and closes it
// when the test ends. The clock starts at start and runs in start's location.
func New(t testing.TB, start time.Time) *TestDB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	config := database.DefaultConfig()
	config.Driver = database.DriverSQLite
	config.DSN = fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", name, dbCounter.Add(1))
	// One connection keeps the in-memory database alive and serializes writers
	config.MaxOpenConns = 1
	config.MaxIdleConns = 1
	config.ConnMaxLifetime = 0
	config.ConnMaxIdleTime = 0
	config.RetryAttempts = 1
	config.LogLevel = "silent"
	config.IsolationLevel = ""

	clock := NewClock(start)
	log := logger.NewNoopLogger()

	manager := database.NewManager(config, log, clock)
	db, err := manager.Connect(context.Background())
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDB{
		Manager: manager,
		Config:  config,
		DB:      db,
		Clock:   clock,
		Logger:  log,
	}
}

// Count returns the number of rows in table, optionally filtered by a where clause
func (db *TestDB) Count(t testing.TB, table string, where ...any) int64 {
	t.Helper()

	query := db.DB.Table(table)
	if len(where) > 0 {
		query = query.Where(where[0], where[1:]...)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return count
}

// Clock is a TimeProvider whose time only moves when told to
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

var _ coreport.TimeProvider = (*Clock)(nil)

// NewClock creates a clock reading start
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Set moves the clock to t
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Since(t time.Time) coreport.Duration {
	return coreport.Duration(c.Now().Sub(t))
}

func (c *Clock) WithTimeout(ctx context.Context, timeout coreport.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

func (c *Clock) Location() *time.Location {
	return c.Now().Location()
}

func (c *Clock) StartOfDay(t time.Time) time.Time {
	t = t.In(c.Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.Location())
}
