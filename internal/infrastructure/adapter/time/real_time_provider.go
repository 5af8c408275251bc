package time

import (
	"time"

	"github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface against the system
// clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
