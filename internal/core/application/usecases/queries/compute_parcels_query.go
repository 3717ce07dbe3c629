package queries

import (
	"errors"

	"parcels/internal/core/domain/model/order"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/guard"
)

var (
	ErrComputeParcelsQueryIsNotConstructed = errors.New(
		"ComputeParcelsQuery must be created via NewComputeParcelsQuery constructor",
	)
)

// ComputeParcelsQuery asks for an order snapshot's parcels: the delivered and
// pending item groups the tracking UI renders. The order is a read-only
// snapshot owned by the caller for the duration of the computation.
//
// Example:
//
//	query, err := NewComputeParcelsQuery(snapshot, parcel.CriteriaPatch{})
//	if err != nil {
//	    return err
//	}
//
//	handler := NewComputeParcelsQueryHandler(timex.SystemClock)
//	parcels, err := handler.Handle(query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order splits into %d parcels\n", len(parcels))
type ComputeParcelsQuery struct {
	order order.Order
	patch parcel.CriteriaPatch
	guard guard.ConstructorGuard
}

// NewComputeParcelsQuery creates the query. The patch is a partial criteria
// override merged over parcel.DefaultCriteria at handling time; a zero patch
// keeps the defaults.
func NewComputeParcelsQuery(o order.Order, patch parcel.CriteriaPatch) (ComputeParcelsQuery, error) {
	return ComputeParcelsQuery{
		order: o,
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrComputeParcelsQueryIsNotConstructed if validation fails.
func (q ComputeParcelsQuery) Validate() error {
	return q.guard.Validate(ErrComputeParcelsQueryIsNotConstructed)
}

// Order returns the order snapshot under computation.
func (q ComputeParcelsQuery) Order() order.Order {
	return q.order
}

// Criteria returns the effective grouping criteria: the defaults with the
// caller's partial override applied. Constructed fresh per call so no
// process-wide default can drift.
func (q ComputeParcelsQuery) Criteria() parcel.Criteria {
	return parcel.DefaultCriteria().Merge(q.patch)
}
