package cmd

import (
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/pkg/timex"
)

// CompositionRoot wires the application's query handlers from configuration.
type CompositionRoot struct {
	clock timex.Clock
}

// NewCompositionRoot builds the root with the system clock. Tests swap the
// clock through NewCompositionRootWithClock to pin estimate arithmetic.
func NewCompositionRoot(_ Config) CompositionRoot {
	return NewCompositionRootWithClock(timex.SystemClock)
}

// NewCompositionRootWithClock builds the root around an explicit clock.
func NewCompositionRootWithClock(clock timex.Clock) CompositionRoot {
	return CompositionRoot{clock: clock}
}

// CreateComputeParcelsQueryHandler builds the parcel computation handler.
func (c CompositionRoot) CreateComputeParcelsQueryHandler() queries.ComputeParcelsQueryHandler {
	return queries.NewComputeParcelsQueryHandler(c.clock)
}
