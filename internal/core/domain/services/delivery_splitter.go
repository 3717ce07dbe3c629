package services

import (
	"parcels/internal/core/domain/model/order"
	"parcels/internal/core/domain/model/parcel"
)

// DeliverySplit is the outcome of partitioning item quantity against the
// dispatched package manifests. Delivered occurrences carry their originating
// manifest; pending occurrences carry none.
type DeliverySplit struct {
	Delivered []parcel.Occurrence
	Pending   []parcel.Occurrence
}

// DeliverySplitter partitions each reconciled item's quantity into the part
// already covered by dispatched packages and the part still pending.
//
// For every item position the quantities across all delivered occurrences
// plus the pending occurrence sum to the item's reconciled quantity; nothing
// is created or destroyed by the split.
type DeliverySplitter struct{}

// NewDeliverySplitter creates a DeliverySplitter.
func NewDeliverySplitter() DeliverySplitter {
	return DeliverySplitter{}
}

// Split partitions items against the package manifests.
//
// For each item:
//   - no manifest references its position: the whole item becomes one
//     pending occurrence
//   - manifests claim less than its quantity: one pending occurrence holds
//     the remainder
//   - each referencing manifest yields one delivered occurrence carrying the
//     claimed quantity, so one item can span several shipments
//
// Split returns nil, not an empty result, when items is empty: there is
// nothing to split and callers must branch explicitly on that.
func (s DeliverySplitter) Split(items []order.Item, manifests []order.PackageManifest) *DeliverySplit {
	if len(items) == 0 {
		return nil
	}

	split := &DeliverySplit{}
	for _, item := range items {
		matching := referencingManifests(manifests, item.Position)
		if len(matching) == 0 {
			split.Pending = append(split.Pending, parcel.Occurrence{Item: item})
			continue
		}

		claimed := 0
		for _, manifest := range matching {
			claimed += manifest.QuantityFor(item.Position)
		}
		if claimed < item.Quantity {
			split.Pending = append(split.Pending, parcel.Occurrence{
				Item: item.WithQuantity(item.Quantity - claimed),
			})
		}

		for _, manifest := range matching {
			split.Delivered = append(split.Delivered, parcel.Occurrence{
				Item:    item.WithQuantity(manifest.QuantityFor(item.Position)),
				Package: manifest,
			})
		}
	}
	return split
}

// referencingManifests returns pointers to the manifests claiming any
// quantity of the given item position, in manifest order.
func referencingManifests(manifests []order.PackageManifest, itemPosition int) []*order.PackageManifest {
	var matching []*order.PackageManifest
	for i := range manifests {
		if manifests[i].References(itemPosition) {
			matching = append(matching, &manifests[i])
		}
	}
	return matching
}
