package services

import (
	"parcels/internal/core/domain/model/order"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/shipping"
	"parcels/internal/pkg/timex"
)

// ParcelGrouper folds hydrated occurrences into parcels. Two equivalence
// policies exist:
//
//   - same-package: delivered occurrences merge iff they originate from the
//     same package manifest position, nothing else matters
//   - criteria: pending occurrences join the first existing parcel passing
//     every enabled criterion test, in parcel creation order
//
// Grouping is a strict partition: every occurrence lands in exactly one
// parcel, and parcels appear in first-encountered order of their first
// occurrence. The fold threads criteria and the clock explicitly; nothing is
// captured from ambient state.
type ParcelGrouper struct {
	matcher ScheduledDeliveryMatcher
	clock   timex.Clock
}

// NewParcelGrouper creates a ParcelGrouper. The clock feeds shipping-estimate
// duration comparisons; a nil clock falls back to the system clock.
func NewParcelGrouper(matcher ScheduledDeliveryMatcher, clock timex.Clock) ParcelGrouper {
	if clock == nil {
		clock = timex.SystemClock
	}
	return ParcelGrouper{matcher: matcher, clock: clock}
}

// GroupByPackage folds delivered occurrences into one parcel per originating
// package manifest. Criteria never split a shipment that physically left in
// one box; they only gate which descriptive fields the parcels carry.
func (g ParcelGrouper) GroupByPackage(
	occurrences []parcel.Occurrence, criteria parcel.Criteria,
) []*parcel.Parcel {
	return g.fold(occurrences, criteria, g.samePackage)
}

// GroupByCriteria folds pending occurrences into parcels under the enabled
// criteria, first match wins.
func (g ParcelGrouper) GroupByCriteria(
	occurrences []parcel.Occurrence, criteria parcel.Criteria,
) []*parcel.Parcel {
	return g.fold(occurrences, criteria, g.matchesCriteria)
}

// matchFunc decides whether an occurrence belongs to an existing parcel.
type matchFunc func(*parcel.Parcel, parcel.Occurrence, parcel.Criteria) bool

// fold is the accumulator loop shared by both policies: scan existing parcels
// in creation order, merge into the first match, create a new parcel when
// none matches.
func (g ParcelGrouper) fold(
	occurrences []parcel.Occurrence, criteria parcel.Criteria, match matchFunc,
) []*parcel.Parcel {
	parcels := make([]*parcel.Parcel, 0, len(occurrences))
	for _, occ := range occurrences {
		merged := false
		for _, p := range parcels {
			if match(p, occ, criteria) {
				g.merge(p, occ, criteria)
				merged = true
				break
			}
		}
		if !merged {
			parcels = append(parcels, g.create(occ, criteria))
		}
	}
	return parcels
}

// samePackage is the delivered-occurrence policy: same manifest position,
// nothing else.
func (g ParcelGrouper) samePackage(p *parcel.Parcel, occ parcel.Occurrence, _ parcel.Criteria) bool {
	return p.Package != nil && occ.Package != nil && p.Package.Position == occ.Package.Position
}

// matchesCriteria is the pending-occurrence policy: every enabled criterion
// must pass. When GroupBySelectedSLAType is enabled, the SLA type tag is the
// sole determinant and no other test runs.
func (g ParcelGrouper) matchesCriteria(p *parcel.Parcel, occ parcel.Occurrence, criteria parcel.Criteria) bool {
	if criteria.GroupBySelectedSLAType {
		return p.SelectedSLAType != nil && *p.SelectedSLAType == shipping.TypeOf(occ.SelectedSLA)
	}

	if criteria.ShippingEstimate && criteria.SelectedSLA &&
		!stringPtrEqual(p.ShippingEstimate, occ.ShippingEstimate) {
		return false
	}
	if criteria.SLAOptions && p.SLAIDsKey() != occ.SLAIDsKey() {
		return false
	}
	if criteria.Seller && (p.Seller == nil || *p.Seller != occ.Item.Seller) {
		return false
	}
	if criteria.SelectedSLA {
		if !stringPtrEqual(p.SelectedSLAID, occ.SelectedSLAID) {
			return false
		}
		if deliveryWindowsDiffer(p.DeliveryWindow, occ.DeliveryWindow) {
			return false
		}
	}
	if criteria.DeliveryChannel && !stringPtrEqual(p.DeliveryChannel, occ.DeliveryChannel) {
		return false
	}
	if criteria.GroupByAvailableDeliveryWindows && occ.HasScheduledOption() {
		resolved := g.matcher.ResolveAvailableWindows(occ.SelectedSLA, occ.SLAs)
		if !g.matcher.WindowSetsEqual(p.AvailableDeliveryWindows, resolved) {
			return false
		}
	}
	return true
}

// deliveryWindowsDiffer flags two windows as incompatible for grouping.
// Presence must agree, and two present windows only count as different when
// both bounds differ: a window sharing either bound with the parcel's is
// treated as the same slot.
// TODO: confirm whether a single differing bound should also split parcels.
func deliveryWindowsDiffer(a, b *shipping.DeliveryWindow) bool {
	if (a == nil) != (b == nil) {
		return true
	}
	if a == nil {
		return false
	}
	return !a.StartDateUTC.Equal(b.StartDateUTC) && !a.EndDateUTC.Equal(b.EndDateUTC)
}

// create opens a new parcel around the occurrence. Every criterion-gated
// field is set only when its governing flag is enabled, and stays absent
// otherwise so consumers can tell "not computed" from "computed as empty".
func (g ParcelGrouper) create(occ parcel.Occurrence, criteria parcel.Criteria) *parcel.Parcel {
	p := parcel.NewParcel()
	p.Items = []order.Item{occ.Item}
	p.Package = occ.Package
	p.SLAs = occ.SLAs
	p.DeliveryIDs = occ.DeliveryIDs

	if criteria.Seller {
		p.Seller = &occ.Item.Seller
	}
	if criteria.DeliveryChannel {
		p.DeliveryChannel = occ.DeliveryChannel
	}
	if criteria.SelectedSLA {
		p.SelectedSLA = occ.SelectedSLA
		p.SelectedSLAID = occ.SelectedSLAID
		p.Address = occ.Address
		p.ShippingEstimate = occ.ShippingEstimate
		p.ShippingEstimateDate = occ.ShippingEstimateDate
		p.DeliveryWindow = occ.DeliveryWindow
		p.PickupFriendlyName = occ.PickupFriendlyName
		g.accumulatePrices(p, occ)
	}
	if criteria.GroupByAvailableDeliveryWindows {
		p.AvailableDeliveryWindows = g.matcher.ResolveAvailableWindows(occ.SelectedSLA, occ.SLAs)
	}
	if criteria.GroupBySelectedSLAType {
		// Recorded independently of the selectedSla flag: the type test
		// must hold even when the SLA object itself is not captured.
		slaType := shipping.TypeOf(occ.SelectedSLA)
		p.SelectedSLAType = &slaType
	}
	return p
}

// merge folds the occurrence into an existing parcel.
func (g ParcelGrouper) merge(p *parcel.Parcel, occ parcel.Occurrence, criteria parcel.Criteria) {
	p.Items = append(p.Items, occ.Item)

	if criteria.SelectedSLA {
		g.keepLaterEstimate(p, occ)
		g.accumulatePrices(p, occ)
	}
	if !criteria.SLAOptions {
		// Without the slaOptions criterion the grouping cannot tell option
		// sets apart, so merged occurrences contribute their options as-is,
		// duplicates included.
		p.SLAs = append(p.SLAs, occ.SLAs...)
	}
}

// keepLaterEstimate moves the parcel's shipping estimate to the later of the
// two promises. Resolved dates are compared when both sides carry one;
// otherwise the estimate strings are compared by their computed duration.
func (g ParcelGrouper) keepLaterEstimate(p *parcel.Parcel, occ parcel.Occurrence) {
	if p.ShippingEstimateDate != nil && occ.ShippingEstimateDate != nil {
		if occ.ShippingEstimateDate.After(*p.ShippingEstimateDate) {
			p.ShippingEstimate = occ.ShippingEstimate
			p.ShippingEstimateDate = occ.ShippingEstimateDate
		}
		return
	}

	current := int64(0)
	if p.ShippingEstimate != nil {
		current = timex.EstimateToSeconds(*p.ShippingEstimate, g.clock)
	}
	candidate := int64(0)
	if occ.ShippingEstimate != nil {
		candidate = timex.EstimateToSeconds(*occ.ShippingEstimate, g.clock)
	}
	if candidate > current {
		p.ShippingEstimate = occ.ShippingEstimate
		p.ShippingEstimateDate = occ.ShippingEstimateDate
	}
}

// accumulatePrices adds the occurrence's selected-SLA prices, plus the
// scheduled-delivery-window surcharge when a slot was chosen, onto the
// parcel's running totals.
func (g ParcelGrouper) accumulatePrices(p *parcel.Parcel, occ parcel.Occurrence) {
	if occ.SelectedSLA == nil {
		return
	}

	price := occ.SelectedSLA.Price
	listPrice := occ.SelectedSLA.ListPrice
	sellingPrice := occ.SelectedSLA.SellingPrice
	if occ.DeliveryWindow != nil {
		price += occ.DeliveryWindow.Price
		listPrice += occ.DeliveryWindow.ListPrice
		sellingPrice += occ.DeliveryWindow.Price
	}

	addTo(&p.Price, price)
	addTo(&p.ListPrice, listPrice)
	addTo(&p.SellingPrice, sellingPrice)
}

func addTo(total **int64, amount int64) {
	if *total == nil {
		v := amount
		*total = &v
		return
	}
	**total += amount
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
