// Package order holds the read-only order snapshot the parcel computation
// consumes: the ordered items, the post-purchase change events, and the
// package manifests of shipments already dispatched.
//
// Everything in this package is caller-owned input. The computation never
// mutates a snapshot; transformations always allocate new values, so
// concurrent computations over independent orders need no synchronization.
package order
