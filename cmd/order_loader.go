package cmd

import (
	"encoding/json"
	"os"

	"parcels/internal/core/domain/model/order"
	"parcels/internal/pkg/errs"
)

// LoadOrder reads an order snapshot from the JSON file at path.
//
// Returns errs.ValueIsRequiredError when path is empty,
// errs.ObjectNotFoundError when the file cannot be read, and
// errs.ValueIsInvalidError when its contents are not a valid snapshot.
func LoadOrder(path string) (order.Order, error) {
	if path == "" {
		return order.Order{}, errs.NewValueIsRequiredError("ORDER_FILE")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return order.Order{}, errs.NewObjectNotFoundErrorWithCause("ORDER_FILE", path, err)
	}

	var snapshot order.Order
	if err = json.Unmarshal(raw, &snapshot); err != nil {
		return order.Order{}, errs.NewValueIsInvalidErrorWithCause("ORDER_FILE", err)
	}
	return snapshot, nil
}
