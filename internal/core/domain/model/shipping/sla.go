package shipping

import "time"

// Delivery channel codes carried by SLAs and logistics entries.
const (
	ChannelDelivery      = "delivery"
	ChannelPickupInStore = "pickup-in-store"
)

// IsPickup reports whether the channel routes through a pickup point.
func IsPickup(channel string) bool {
	return channel == ChannelPickupInStore
}

// IsDelivery reports whether the channel routes to a customer address.
func IsDelivery(channel string) bool {
	return channel == ChannelDelivery
}

// PickupStoreInfo describes the pickup point behind a pickup-in-store SLA.
type PickupStoreInfo struct {
	IsPickupStore bool     `json:"isPickupStore"`
	FriendlyName  string   `json:"friendlyName"`
	Address       *Address `json:"address"`
}

// SLA is one selectable shipping option for a logistics entry: a carrier,
// speed, price, and channel bundle. Schedulable SLAs additionally offer
// delivery windows.
type SLA struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ShippingEstimate string `json:"shippingEstimate"`
	// ShippingEstimateDate is the carrier's absolute promise, when known.
	// Estimate comparisons prefer it over re-deriving from the estimate
	// string.
	ShippingEstimateDate *time.Time `json:"shippingEstimateDate"`

	DeliveryChannel string           `json:"deliveryChannel"`
	PickupStoreInfo *PickupStoreInfo `json:"pickupStoreInfo"`

	Price        int64 `json:"price"`
	ListPrice    int64 `json:"listPrice"`
	Tax          int64 `json:"tax"`
	SellingPrice int64 `json:"sellingPrice"`

	// DeliveryWindow is the slot chosen for this SLA, when one was picked.
	DeliveryWindow *DeliveryWindow `json:"deliveryWindow"`
	// AvailableDeliveryWindows are the slots the SLA offers; non-empty means
	// the SLA is schedulable.
	AvailableDeliveryWindows []DeliveryWindow `json:"availableDeliveryWindows"`
}

// IsPickup reports whether the SLA hands the parcel over at a pickup store.
func (s SLA) IsPickup() bool {
	return IsPickup(s.DeliveryChannel) ||
		(s.PickupStoreInfo != nil && s.PickupStoreInfo.IsPickupStore)
}

// IsScheduled reports whether the SLA carries scheduled-delivery windows,
// either offered or already chosen.
func (s SLA) IsScheduled() bool {
	return len(s.AvailableDeliveryWindows) > 0 || s.DeliveryWindow != nil
}

// SLAType tags an SLA for type-based grouping.
type SLAType string

const (
	SLATypeStandard      SLAType = "standard"
	SLATypeScheduled     SLAType = "scheduled"
	SLATypePickupInStore SLAType = "pickup-in-store"
)

// TypeOf classifies an SLA. Pickup wins over scheduled: a schedulable pickup
// option is still rendered as a pickup. A nil SLA classifies as standard so
// occurrences with no chosen option group together rather than failing.
func TypeOf(sla *SLA) SLAType {
	switch {
	case sla == nil:
		return SLATypeStandard
	case sla.IsPickup():
		return SLATypePickupInStore
	case sla.IsScheduled():
		return SLATypeScheduled
	default:
		return SLATypeStandard
	}
}

// FindSLA returns the SLA with the given ID, or nil when the ID is empty or
// unknown. A miss is a legitimate state: the caller may not have chosen a
// shipping option yet.
func FindSLA(slas []SLA, slaID string) *SLA {
	if slaID == "" {
		return nil
	}
	for i := range slas {
		if slas[i].ID == slaID {
			return &slas[i]
		}
	}
	return nil
}

// SlaRef references an SLA either by bare ID or as a full object. It is
// resolved once at the API boundary instead of letting both shapes leak
// through the pipeline.
type SlaRef struct {
	id  string
	sla *SLA
}

// SlaRefID references an SLA by ID, to be resolved against a logistics
// entry's options.
func SlaRefID(id string) SlaRef {
	return SlaRef{id: id}
}

// SlaRefObject references an SLA directly; resolution returns the object
// as-is without consulting the entry's options.
func SlaRefObject(sla *SLA) SlaRef {
	return SlaRef{sla: sla}
}

// IsZero reports whether the reference points at nothing.
func (r SlaRef) IsZero() bool {
	return r.id == "" && r.sla == nil
}

// Resolve returns the referenced SLA: the object when one was given, else the
// entry option matching the ID, else nil.
func (r SlaRef) Resolve(options []SLA) *SLA {
	if r.sla != nil {
		return r.sla
	}
	return FindSLA(options, r.id)
}
