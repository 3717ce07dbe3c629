package parcel

import (
	"time"

	"github.com/google/uuid"

	"parcels/internal/core/domain/model/order"
	"parcels/internal/core/domain/model/shipping"
)

// Parcel is one coherent, displayable group of items sharing fulfillment and
// shipping characteristics. Delivered parcels carry the originating package
// manifest; pending parcels carry the shipping characteristics their grouping
// criteria recorded.
//
// Optional fields are pointers so consumers can tell "not computed" (the
// governing criterion was disabled) from "computed as empty". ID is a fresh
// UUID per parcel so renderers can key tracking rows stably within one
// computation.
type Parcel struct {
	ID uuid.UUID `json:"id"`

	Items   []order.Item           `json:"items"`
	Package *order.PackageManifest `json:"package,omitempty"`

	SLAs          []shipping.SLA `json:"slas"`
	SelectedSLA   *shipping.SLA  `json:"selectedSla,omitempty"`
	SelectedSLAID *string        `json:"selectedSlaId,omitempty"`

	// SelectedSLAType is the type tag parcels group on under the
	// type-based criterion; absent when that criterion is disabled.
	SelectedSLAType *shipping.SLAType `json:"selectedSlaType,omitempty"`

	Seller          *string           `json:"seller,omitempty"`
	Address         *shipping.Address `json:"address,omitempty"`
	DeliveryChannel *string           `json:"deliveryChannel,omitempty"`

	ShippingEstimate     *string    `json:"shippingEstimate,omitempty"`
	ShippingEstimateDate *time.Time `json:"shippingEstimateDate,omitempty"`

	DeliveryWindow           *shipping.DeliveryWindow  `json:"deliveryWindow,omitempty"`
	AvailableDeliveryWindows []shipping.DeliveryWindow `json:"availableDeliveryWindows,omitempty"`

	DeliveryIDs        []shipping.DeliveryID `json:"deliveryIds,omitempty"`
	PickupFriendlyName *string               `json:"pickupFriendlyName,omitempty"`

	Price        *int64 `json:"price,omitempty"`
	ListPrice    *int64 `json:"listPrice,omitempty"`
	SellingPrice *int64 `json:"sellingPrice,omitempty"`
}

// NewParcel allocates an empty parcel with a fresh identity.
func NewParcel() *Parcel {
	return &Parcel{ID: uuid.New()}
}

// IsDelivered reports whether the parcel represents an already dispatched
// shipment.
func (p *Parcel) IsDelivered() bool {
	return p.Package != nil
}

// TotalQuantity sums the quantities of every item in the parcel.
func (p *Parcel) TotalQuantity() int {
	total := 0
	for _, item := range p.Items {
		total += item.Quantity
	}
	return total
}

// SLAIDsKey is the order-preserving concatenation of the parcel's SLA option
// IDs, compared against occurrences under the slaOptions criterion.
func (p *Parcel) SLAIDsKey() string {
	return slaIDsKey(p.SLAs)
}
