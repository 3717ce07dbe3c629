package order

import "parcels/internal/core/domain/model/shipping"

// Order is the raw fulfillment snapshot the parcel computation reads. All
// nested attachments are optional; the accessors below default absent
// collections to empty so the pipeline never branches on nil attachments.
type Order struct {
	Items             []Item             `json:"items"`
	PackageAttachment *PackageAttachment `json:"packageAttachment"`
	ShippingData      *shipping.Data     `json:"shippingData"`
	ChangesAttachment *ChangesAttachment `json:"changesAttachment"`

	// IsCheckedIn marks an order picked up in person at a store; the
	// check-in pickup point identifies where. Both are classification
	// inputs for callers layering on top of the parcel output.
	IsCheckedIn            bool   `json:"isCheckedIn"`
	CheckedInPickupPointID string `json:"checkedInPickupPointId"`
}

// Packages returns the dispatched-shipment manifests, or an empty slice when
// the order carries no package attachment.
func (o Order) Packages() []PackageManifest {
	if o.PackageAttachment == nil {
		return nil
	}
	return o.PackageAttachment.Packages
}

// Changes returns the post-purchase change events, or an empty slice when the
// order carries no changes attachment.
func (o Order) Changes() []ChangeEvent {
	if o.ChangesAttachment == nil {
		return nil
	}
	return o.ChangesAttachment.ChangesData
}

// Logistics returns the per-item logistics entries, or an empty slice when
// the order carries no shipping data.
func (o Order) Logistics() []shipping.LogisticsEntry {
	if o.ShippingData == nil {
		return nil
	}
	return o.ShippingData.LogisticsInfo
}

// SelectedAddresses returns the addresses chosen for the order, or an empty
// slice when the order carries no shipping data.
func (o Order) SelectedAddresses() []shipping.Address {
	if o.ShippingData == nil {
		return nil
	}
	return o.ShippingData.SelectedAddresses
}
