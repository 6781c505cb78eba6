package time

import (
	"context"
	"time"

	"github.com/kondo-pos/pos-backend/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the wall clock,
// reporting every instant in a fixed register location
type RealTimeProvider struct {
	loc *time.Location
}

// NewRealTimeProvider creates a time provider for loc; nil means time.Local
func NewRealTimeProvider(loc *time.Location) core.TimeProvider {
	if loc == nil {
		loc = time.Local
	}
	return &RealTimeProvider{loc: loc}
}

// Now returns the current time in the register location
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().In(p.loc)
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// Location returns the register location
func (p *RealTimeProvider) Location() *time.Location {
	return p.loc
}

// StartOfDay returns midnight of t's calendar day in the register location
func (p *RealTimeProvider) StartOfDay(t time.Time) time.Time {
	local := t.In(p.loc)
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, p.loc)
}
