package services

import "parcels/internal/core/domain/model/shipping"

// ScheduledDeliveryMatcher is a domain service answering questions about
// delivery-window collections: window equality, membership, selection, and
// which SLA option carries scheduled-delivery slots. It has no state and no
// dependencies; both the hydrator and the grouper consult it for
// window-aware lookups.
type ScheduledDeliveryMatcher struct{}

// NewScheduledDeliveryMatcher creates a ScheduledDeliveryMatcher.
func NewScheduledDeliveryMatcher() ScheduledDeliveryMatcher {
	return ScheduledDeliveryMatcher{}
}

// WindowsEqual reports whether two possibly absent windows match. Two absent
// windows match; an absent window never matches a present one; two present
// windows match on all five fields.
func (m ScheduledDeliveryMatcher) WindowsEqual(a, b *shipping.DeliveryWindow) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// WindowSetsEqual reports whether two window sets have the same length and
// are pairwise positionally equal.
func (m ScheduledDeliveryMatcher) WindowSetsEqual(a, b []shipping.DeliveryWindow) bool {
	return shipping.WindowSetsEqual(a, b)
}

// SelectWindow returns the first window in the set equal to target, or nil
// when the set offers no such slot.
func (m ScheduledDeliveryMatcher) SelectWindow(
	windows []shipping.DeliveryWindow, target shipping.DeliveryWindow,
) *shipping.DeliveryWindow {
	for i := range windows {
		if windows[i].Equal(target) {
			return &windows[i]
		}
	}
	return nil
}

// HasWindow reports whether the set offers a slot equal to target.
func (m ScheduledDeliveryMatcher) HasWindow(
	windows []shipping.DeliveryWindow, target shipping.DeliveryWindow,
) bool {
	return m.SelectWindow(windows, target) != nil
}

// FirstScheduledSLA returns the first SLA option offering delivery windows,
// or nil when none is schedulable. This is the fallback used when an
// occurrence has window-bearing options but no directly selected SLA.
func (m ScheduledDeliveryMatcher) FirstScheduledSLA(slas []shipping.SLA) *shipping.SLA {
	for i := range slas {
		if len(slas[i].AvailableDeliveryWindows) > 0 {
			return &slas[i]
		}
	}
	return nil
}

// ResolveAvailableWindows returns the available-window set attributed to an
// occurrence: the selected SLA's windows when it carries any, otherwise the
// windows of the first schedulable option.
func (m ScheduledDeliveryMatcher) ResolveAvailableWindows(
	selected *shipping.SLA, options []shipping.SLA,
) []shipping.DeliveryWindow {
	if selected != nil && len(selected.AvailableDeliveryWindows) > 0 {
		return selected.AvailableDeliveryWindows
	}
	if scheduled := m.FirstScheduledSLA(options); scheduled != nil {
		return scheduled.AvailableDeliveryWindows
	}
	return nil
}
