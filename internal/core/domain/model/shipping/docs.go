// Package shipping models the logistics side of an order snapshot: shipping
// options (SLAs), scheduled delivery windows, per-item logistics entries, and
// addresses. These are the inputs the hydrator resolves against and the
// grouping criteria compare.
package shipping
