package parcel

// Criteria is the set of equivalence dimensions controlling how pending
// occurrences merge into parcels. Each flag both enables its grouping test
// and gates whether the corresponding parcel fields are computed at all.
type Criteria struct {
	// SLAOptions groups by the identical, order-sensitive full set of SLA
	// IDs. When disabled, merged occurrences instead append their options
	// onto the parcel's list.
	SLAOptions bool

	// SelectedSLA groups by the chosen SLA ID. It also gates the price,
	// estimate, window, address, and pickup-name fields on parcels.
	SelectedSLA bool

	// Seller groups by marketplace seller.
	Seller bool

	// ShippingEstimate, together with SelectedSLA, requires identical
	// shipping-estimate strings.
	ShippingEstimate bool

	// DeliveryChannel groups by delivery channel.
	DeliveryChannel bool

	// GroupBySelectedSLAType short-circuits every other test: occurrences
	// group solely by their SLA's type tag (pickup, scheduled, standard).
	// It gates the SelectedSLAType field on parcels.
	GroupBySelectedSLAType bool

	// GroupByAvailableDeliveryWindows additionally requires the occurrence's
	// available-window set to equal the parcel's recorded set. Only
	// evaluated when the occurrence carries a window-bearing SLA option.
	GroupByAvailableDeliveryWindows bool
}

// DefaultCriteria is the baseline every computation starts from. Constructed
// fresh per call; there is no process-wide mutable default.
func DefaultCriteria() Criteria {
	return Criteria{
		SLAOptions:       false,
		SelectedSLA:      true,
		Seller:           true,
		ShippingEstimate: true,
		DeliveryChannel:  true,
	}
}

// CriteriaPatch is a partial criteria override. Nil fields keep the value
// being patched; set fields replace it.
type CriteriaPatch struct {
	SLAOptions                      *bool
	SelectedSLA                     *bool
	Seller                          *bool
	ShippingEstimate                *bool
	DeliveryChannel                 *bool
	GroupBySelectedSLAType          *bool
	GroupByAvailableDeliveryWindows *bool
}

// Merge returns the criteria with the patch applied. The receiver is left
// untouched.
func (c Criteria) Merge(patch CriteriaPatch) Criteria {
	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&c.SLAOptions, patch.SLAOptions)
	apply(&c.SelectedSLA, patch.SelectedSLA)
	apply(&c.Seller, patch.Seller)
	apply(&c.ShippingEstimate, patch.ShippingEstimate)
	apply(&c.DeliveryChannel, patch.DeliveryChannel)
	apply(&c.GroupBySelectedSLAType, patch.GroupBySelectedSLAType)
	apply(&c.GroupByAvailableDeliveryWindows, patch.GroupByAvailableDeliveryWindows)
	return c
}
