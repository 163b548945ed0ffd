package time

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-library/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider is an implementation of domain.CurrentTimeProvider using the standard time package.
// Times are reported in the library's location, which decides what "today" means for a loan.
type CurrentTimeProvider struct {
	loc *time.Location
}

// NewCurrentTimeProvider creates a CurrentTimeProvider reporting times in loc.
func NewCurrentTimeProvider(loc *time.Location) CurrentTimeProvider {
	return CurrentTimeProvider{loc: loc}
}

// Now returns the current time.
func (ts CurrentTimeProvider) Now() time.Time {
	if ts.loc == nil {
		return time.Now()
	}
	return time.Now().In(ts.loc)
}

// InitCurrentTimeProvider initializes the CurrentTimeProvider and registers it in the dependency container.
type InitCurrentTimeProvider struct {
	TimeZone string `config:"LIBRARY_TIMEZONE" default:"UTC"`
}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (its InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	loc, err := time.LoadLocation(its.TimeZone)
	if err != nil {
		return ctx, fmt.Errorf("invalid LIBRARY_TIMEZONE %q: %w", its.TimeZone, err)
	}
	depend.Register[domain.CurrentTimeProvider](NewCurrentTimeProvider(loc))
	return ctx, nil
}
