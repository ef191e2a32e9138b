package interfaces

import (
	"context"
	"retifica_xpto/internal/domain/entities"
)

// IPricingResolver turns an unpriced service candidate into labor hours and
// an hourly rate.
//
// Implementations fall back to DefaultLaborHours/DefaultLaborRate when a
// template has no price entry, so Resolve only errors on infrastructure
// failures.

const (
	DefaultLaborHours = 1.0
	DefaultLaborRate  = 50.0
)

type IPricingResolver interface {
	Resolve(ctx context.Context, candidate entities.ServiceCandidate) (laborHours, laborRate float64, err error)
}
