package order

// Item is one line of the order. Position is a stable index into the order's
// item list, assigned once at ingestion and preserved through every later
// transformation; package manifests and logistics entries reference items by
// this position, never by slice index.
type Item struct {
	// ID identifies the catalog item. Change events match items by ID.
	ID string `json:"id"`

	// Quantity is the ordered amount. Items in the snapshot carry a positive
	// quantity; reconciliation drops any item whose quantity falls to zero
	// or below.
	Quantity int `json:"quantity"`

	// Seller identifies the marketplace seller fulfilling the item.
	Seller string `json:"seller"`

	// Position is the item's index in the order's item list at ingestion.
	Position int `json:"position"`
}

// WithQuantity returns a copy of the item carrying the given quantity.
// The receiver is left untouched.
func (i Item) WithQuantity(quantity int) Item {
	i.Quantity = quantity
	return i
}

// WithPositions returns a copy of items with Position assigned from each
// item's index in the list. This is the single ingestion point where positions
// are fixed; every later stage preserves them.
func WithPositions(items []Item) []Item {
	tagged := make([]Item, len(items))
	for i, item := range items {
		item.Position = i
		tagged[i] = item
	}
	return tagged
}
