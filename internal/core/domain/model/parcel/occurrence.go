package parcel

import (
	"time"

	"parcels/internal/core/domain/model/order"
	"parcels/internal/core/domain/model/shipping"
)

// Occurrence is one item quantity unit or sub-quantity in flight through the
// pipeline: the item, the manifest it came from when already shipped, and the
// logistics fields hydration resolved for it. Occurrences are ephemeral; the
// grouping fold consumes them and they never outlive one computation.
//
// Pointer fields distinguish "not resolved" from "resolved as empty": an
// occurrence with no chosen SLA legitimately carries nil SLA-derived fields.
type Occurrence struct {
	Item order.Item

	// Package is the originating manifest for delivered occurrences, nil for
	// pending ones.
	Package *order.PackageManifest

	SLAs          []shipping.SLA
	SelectedSLA   *shipping.SLA
	SelectedSLAID *string

	Address         *shipping.Address
	DeliveryChannel *string

	ShippingEstimate     *string
	ShippingEstimateDate *time.Time

	DeliveryWindow           *shipping.DeliveryWindow
	AvailableDeliveryWindows []shipping.DeliveryWindow

	DeliveryIDs        []shipping.DeliveryID
	PickupFriendlyName *string
}

// IsDelivered reports whether the occurrence was drawn from a dispatched
// package manifest.
func (o Occurrence) IsDelivered() bool {
	return o.Package != nil
}

// SLAIDsKey is the order-preserving concatenation of the occurrence's SLA
// option IDs, used as the slaOptions equivalence key.
func (o Occurrence) SLAIDsKey() string {
	return slaIDsKey(o.SLAs)
}

func slaIDsKey(slas []shipping.SLA) string {
	key := ""
	for _, sla := range slas {
		key += sla.ID
	}
	return key
}

// HasScheduledOption reports whether any of the occurrence's SLA options
// carries available delivery windows.
func (o Occurrence) HasScheduledOption() bool {
	for _, sla := range o.SLAs {
		if len(sla.AvailableDeliveryWindows) > 0 {
			return true
		}
	}
	return false
}
