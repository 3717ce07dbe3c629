// Package parcel defines the output side of the computation: hydrated item
// occurrences, the parcels they group into, and the criteria controlling the
// grouping equivalence.
package parcel
