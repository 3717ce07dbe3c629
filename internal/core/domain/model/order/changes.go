package order

// ChangeEvent records one post-purchase order change: items added to the
// order and items removed from it. Removed quantities are matched to original
// items by ID and subtracted during reconciliation.
type ChangeEvent struct {
	ItemsAdded   []Item `json:"itemsAdded"`
	ItemsRemoved []Item `json:"itemsRemoved"`
}

// ChangesAttachment wraps the list of change events attached to an order.
type ChangesAttachment struct {
	ChangesData []ChangeEvent `json:"changesData"`
}
