package geoip

import (
	"context"
	"errors"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
)

var errDisabled = errors.New("geoip: lookup disabled")

// Disabled is an IPLocator that always reports "unavailable", for
// deployments that trade the IP cross-check for a tighter latency budget.
type Disabled struct{}

func (Disabled) Locate(context.Context, string) (domain.Coordinate, error) {
	return domain.Coordinate{}, errDisabled
}
