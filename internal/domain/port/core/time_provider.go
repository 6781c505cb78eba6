package core

import (
	"context"
	"time"
)

// Duration is a domain-specific wrapper around time.Duration
type Duration time.Duration

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider abstracts the clock and the register's notion of a calendar day.
// Every timestamp it returns is expressed in Location().
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
	WithTimeout(ctx context.Context, timeout Duration) (context.Context, context.CancelFunc)
	// Location is the zone used for day boundaries and hour-of-day bucketing
	Location() *time.Location
	// StartOfDay returns midnight of t's calendar day in Location()
	StartOfDay(t time.Time) time.Time
}
