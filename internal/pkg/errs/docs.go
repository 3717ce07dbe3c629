// Package errs provides standardized error types for the parcels library.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the module.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() formatting that flattens newlines
//   - Unwrap() to the sentinel for errors.Is classification
//
// The parcel computation itself is defensive and never fails on malformed
// order data; these types are used at construction boundaries (queries,
// configuration) where a caller mistake deserves a typed answer.
package errs
