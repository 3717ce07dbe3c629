package shipping

import "time"

// DeliveryWindow is a scheduled time slot with its own pricing, offered by a
// schedulable SLA. Prices are in the order's minor currency unit.
type DeliveryWindow struct {
	StartDateUTC time.Time `json:"startDateUtc"`
	EndDateUTC   time.Time `json:"endDateUtc"`
	Price        int64     `json:"price"`
	ListPrice    int64     `json:"listPrice"`
	Tax          int64     `json:"tax"`
}

// Equal reports whether two windows match on all five fields. Timestamps are
// compared with time.Time.Equal, so equal instants in different locations
// still match.
func (w DeliveryWindow) Equal(other DeliveryWindow) bool {
	return w.StartDateUTC.Equal(other.StartDateUTC) &&
		w.EndDateUTC.Equal(other.EndDateUTC) &&
		w.Price == other.Price &&
		w.ListPrice == other.ListPrice &&
		w.Tax == other.Tax
}

// WindowSetsEqual reports whether two window sets have the same length and
// are pairwise positionally equal. Order matters: the same windows in a
// different sequence are a different set.
func WindowSetsEqual(a, b []DeliveryWindow) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
