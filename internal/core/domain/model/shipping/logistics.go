package shipping

import "time"

// DeliveryID links a logistics entry to the warehouse and courier fulfilling
// it. Pass-through metadata; the computation carries it onto parcels
// untouched.
type DeliveryID struct {
	CourierID   string `json:"courierId"`
	CourierName string `json:"courierName"`
	WarehouseID string `json:"warehouseId"`
	DockID      string `json:"dockId"`
	Quantity    int    `json:"quantity"`
}

// LogisticsEntry is the per-item shipping selection record: which address,
// SLA, and channel were chosen for the item at ItemPosition, plus the full
// option list the choice was made from.
//
// The entry-level ShippingEstimate, ShippingEstimateDate, and DeliveryWindow
// fields, when set, take precedence over the selected SLA's during hydration.
type LogisticsEntry struct {
	ItemPosition int `json:"itemIndex"`

	AddressID               string `json:"addressId"`
	SelectedSLAID           string `json:"selectedSla"`
	SelectedDeliveryChannel string `json:"selectedDeliveryChannel"`

	SLAs []SLA `json:"slas"`

	ShippingEstimate     string     `json:"shippingEstimate"`
	ShippingEstimateDate *time.Time `json:"shippingEstimateDate"`

	DeliveryWindow           *DeliveryWindow  `json:"deliveryWindow"`
	AvailableDeliveryWindows []DeliveryWindow `json:"availableDeliveryWindows"`

	DeliveryIDs []DeliveryID `json:"deliveryIds"`
}

// SelectedSLA resolves the entry's chosen SLA against its option list.
// Returns nil when nothing is selected or the selection matches no option.
func (e LogisticsEntry) SelectedSLA() *SLA {
	return FindSLA(e.SLAs, e.SelectedSLAID)
}

// FindEntry returns the logistics entry for the item at the given position,
// or nil when the table has none.
func FindEntry(entries []LogisticsEntry, itemPosition int) *LogisticsEntry {
	for i := range entries {
		if entries[i].ItemPosition == itemPosition {
			return &entries[i]
		}
	}
	return nil
}

// Data is the shipping attachment of an order snapshot.
type Data struct {
	LogisticsInfo     []LogisticsEntry `json:"logisticsInfo"`
	SelectedAddresses []Address        `json:"selectedAddresses"`
}
