package queries

import (
	"parcels/internal/core/domain/model/order"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/shipping"
	"parcels/internal/core/domain/services"
	"parcels/internal/pkg/timex"
)

// ComputeParcelsQueryHandler runs the full decomposition pipeline:
//
//	reconcile changes → split delivered/pending → hydrate logistics →
//	group into parcels
//
// Delivered parcels come first in the result, then pending parcels, each set
// in first-encountered order. The handler is stateless apart from its clock
// and safe for concurrent use over independent orders.
type ComputeParcelsQueryHandler struct {
	matcher    services.ScheduledDeliveryMatcher
	reconciler services.ChangeReconciler
	splitter   services.DeliverySplitter
	hydrator   services.LogisticsHydrator
	grouper    services.ParcelGrouper
}

// NewComputeParcelsQueryHandler creates a handler. The clock feeds
// shipping-estimate comparisons during grouping; nil falls back to the
// system clock.
func NewComputeParcelsQueryHandler(clock timex.Clock) ComputeParcelsQueryHandler {
	matcher := services.NewScheduledDeliveryMatcher()
	return ComputeParcelsQueryHandler{
		matcher:    matcher,
		reconciler: services.NewChangeReconciler(),
		splitter:   services.NewDeliverySplitter(),
		hydrator:   services.NewLogisticsHydrator(matcher),
		grouper:    services.NewParcelGrouper(matcher, clock),
	}
}

// Handle computes the parcels for the query's order snapshot. Malformed or
// missing pieces of the snapshot never fail the computation: absent
// collections default to empty and unmatched lookups propagate as absent
// parcel fields.
func (h ComputeParcelsQueryHandler) Handle(query ComputeParcelsQuery) ([]*parcel.Parcel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o := query.Order()
	criteria := query.Criteria()

	items := order.WithPositions(o.Items)
	manifests := order.TagManifestPositions(o.Packages())

	items = h.reconciler.Reconcile(items, o.Changes())

	split := h.splitter.Split(items, manifests)
	if split == nil {
		return []*parcel.Parcel{}, nil
	}

	delivered := h.hydrate(split.Delivered, o)
	pending := h.hydrate(split.Pending, o)

	parcels := h.grouper.GroupByPackage(delivered, criteria)
	parcels = append(parcels, h.grouper.GroupByCriteria(pending, criteria)...)
	return parcels, nil
}

func (h ComputeParcelsQueryHandler) hydrate(
	occurrences []parcel.Occurrence, o order.Order,
) []parcel.Occurrence {
	hydrated := make([]parcel.Occurrence, len(occurrences))
	for i, occ := range occurrences {
		hydrated[i] = h.hydrator.Hydrate(occ, o.Logistics(), o.SelectedAddresses(), shipping.SlaRef{})
	}
	return hydrated
}
