package services

import (
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/shipping"
)

// LogisticsHydrator enriches an occurrence with the shipping selection made
// for its item position: the chosen SLA, address, channel, estimate, and
// delivery window from the order's logistics table.
//
// Resolution preferences:
//   - estimate and estimate date stored directly on the entry win over the
//     selected SLA's
//   - the entry's explicitly selected channel wins over the SLA's
//   - pickup SLAs resolve to the pickup store's address, everything else to
//     the order's selected address by ID
//
// An occurrence with no selected SLA is a legitimate state, not an error:
// SLA-derived fields stay absent and the entry's own stored estimate, if
// any, is used verbatim.
type LogisticsHydrator struct {
	matcher ScheduledDeliveryMatcher
}

// NewLogisticsHydrator creates a LogisticsHydrator using the given matcher
// for window-aware lookups.
func NewLogisticsHydrator(matcher ScheduledDeliveryMatcher) LogisticsHydrator {
	return LogisticsHydrator{matcher: matcher}
}

// Hydrate resolves the logistics fields for one occurrence. The entry is
// looked up by the occurrence item's position; ref, when non-zero, supplies
// an explicit SLA used when the entry's own selection resolves to nothing.
// A position with no logistics entry leaves the occurrence untouched.
func (h LogisticsHydrator) Hydrate(
	occ parcel.Occurrence,
	entries []shipping.LogisticsEntry,
	addresses []shipping.Address,
	ref shipping.SlaRef,
) parcel.Occurrence {
	entry := shipping.FindEntry(entries, occ.Item.Position)
	if entry == nil {
		return occ
	}

	selected := entry.SelectedSLA()
	if selected == nil && !ref.IsZero() {
		selected = ref.Resolve(entry.SLAs)
	}

	occ.SLAs = entry.SLAs
	occ.DeliveryIDs = entry.DeliveryIDs

	occ.ShippingEstimate = nonEmpty(entry.ShippingEstimate)
	occ.ShippingEstimateDate = entry.ShippingEstimateDate

	if entry.SelectedDeliveryChannel != "" {
		occ.DeliveryChannel = ptr(entry.SelectedDeliveryChannel)
	}

	if selected == nil {
		// No chosen shipping option: the entry's own stored estimate (set
		// above) is all the occurrence gets.
		occ.Address = shipping.FindAddress(addresses, entry.AddressID)
		return occ
	}

	occ.SelectedSLA = selected
	occ.SelectedSLAID = ptr(selected.ID)

	if occ.ShippingEstimate == nil {
		occ.ShippingEstimate = nonEmpty(selected.ShippingEstimate)
	}
	if occ.ShippingEstimateDate == nil {
		occ.ShippingEstimateDate = selected.ShippingEstimateDate
	}
	if occ.DeliveryChannel == nil {
		occ.DeliveryChannel = ptr(selected.DeliveryChannel)
	}

	occ.DeliveryWindow = h.selectedWindow(selected, entry)
	occ.AvailableDeliveryWindows = selected.AvailableDeliveryWindows

	if selected.IsPickup() && selected.PickupStoreInfo != nil {
		occ.Address = selected.PickupStoreInfo.Address
		occ.PickupFriendlyName = ptr(selected.PickupStoreInfo.FriendlyName)
	} else {
		occ.Address = shipping.FindAddress(addresses, entry.AddressID)
	}

	return occ
}

// selectedWindow returns the delivery window attributed to the selected SLA:
// the SLA's own chosen window, or the entry's chosen window when the SLA
// offers that slot.
func (h LogisticsHydrator) selectedWindow(
	selected *shipping.SLA, entry *shipping.LogisticsEntry,
) *shipping.DeliveryWindow {
	if selected.DeliveryWindow != nil {
		return selected.DeliveryWindow
	}
	if entry.DeliveryWindow == nil {
		return nil
	}
	return h.matcher.SelectWindow(selected.AvailableDeliveryWindows, *entry.DeliveryWindow)
}

// nonEmpty returns a pointer to s, or nil when s is empty.
func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ptr[T any](v T) *T {
	return &v
}
