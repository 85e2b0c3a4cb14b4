package geoip

import (
	"context"
	"time"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/api/metrics"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/ports"
)

// Instrumented decorates an IPLocator with lookup latency metrics.
type Instrumented struct {
	inner ports.IPLocator
}

// NewInstrumented wraps inner with Prometheus instrumentation.
func NewInstrumented(inner ports.IPLocator) *Instrumented {
	return &Instrumented{inner: inner}
}

func (i *Instrumented) Locate(ctx context.Context, ip string) (domain.Coordinate, error) {
	start := time.Now()
	coord, err := i.inner.Locate(ctx, ip)
	result := "hit"
	if err != nil {
		result = "miss"
	}
	metrics.IPLookupDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
	return coord, err
}
