package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// guarded object was not built through its constructor and no specific error
// was supplied. It guarantees validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard enforces that value objects and queries are only created
// through their designated constructor functions. Embedding a ConstructorGuard
// in a struct lets Validate distinguish a properly constructed instance from a
// zero value, which keeps domain invariants intact without exposing fields.
//
// Example usage:
//
//	var ErrWindowNotConstructed = errors.New("DeliveryWindow must be created via NewDeliveryWindow")
//
//	type DeliveryWindow struct {
//	    start time.Time
//	    end   time.Time
//	    guard guard.ConstructorGuard
//	}
//
//	func NewDeliveryWindow(start, end time.Time) (DeliveryWindow, error) {
//	    if end.Before(start) {
//	        return DeliveryWindow{}, errors.New("window ends before it starts")
//	    }
//	    return DeliveryWindow{start: start, end: end, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (w DeliveryWindow) Validate() error {
//	    return w.guard.Validate(ErrWindowNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly
// constructed. Call it inside the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object went through its constructor.
//
// Returns:
//   - nil if the object was properly constructed
//   - validationError if the object is a zero value
//   - ErrDefaultConstructorGuard if validationError is nil and the object is a zero value
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
