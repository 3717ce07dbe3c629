package services

import "parcels/internal/core/domain/model/order"

// ChangeReconciler applies post-purchase order changes to the item list,
// folding additive and subtractive quantity deltas onto each item.
//
// Business rules:
//   - Deltas match items by ID, never by position
//   - Added quantities apply before removed quantities, in event order
//   - Items whose quantity falls to zero or below are dropped entirely
//   - Deltas referencing unknown IDs produce no change and no error
type ChangeReconciler struct{}

// NewChangeReconciler creates a ChangeReconciler.
func NewChangeReconciler() ChangeReconciler {
	return ChangeReconciler{}
}

// Reconcile returns the item list with every change event applied. When
// either items or changes is empty the original slice is returned unchanged,
// not a copy; callers rely on that identity to skip reallocation on the
// common change-free path. Reconcile never fails.
func (r ChangeReconciler) Reconcile(items []order.Item, changes []order.ChangeEvent) []order.Item {
	if len(items) == 0 || len(changes) == 0 {
		return items
	}

	deltas := flattenDeltas(changes)

	reconciled := make([]order.Item, 0, len(items))
	for _, item := range items {
		quantity := item.Quantity
		for _, delta := range deltas {
			if delta.ID == item.ID {
				quantity += delta.Quantity
			}
		}
		if quantity <= 0 {
			continue
		}
		reconciled = append(reconciled, item.WithQuantity(quantity))
	}
	return reconciled
}

// flattenDeltas turns the change events into a single delta list: all added
// items first, then all removed items with negated quantities, each group in
// event order.
func flattenDeltas(changes []order.ChangeEvent) []order.Item {
	var deltas []order.Item
	for _, change := range changes {
		deltas = append(deltas, change.ItemsAdded...)
	}
	for _, change := range changes {
		for _, removed := range change.ItemsRemoved {
			deltas = append(deltas, removed.WithQuantity(-removed.Quantity))
		}
	}
	return deltas
}
