// Package services provides the domain services of the parcel computation:
// the stages that turn a raw order snapshot into displayable parcels.
//
// The package includes:
//   - ScheduledDeliveryMatcher: pure predicates over delivery-window collections
//   - ChangeReconciler: applies post-purchase quantity deltas to the item list
//   - DeliverySplitter: partitions item quantity into delivered and pending occurrences
//   - LogisticsHydrator: resolves each occurrence's shipping option, address, and windows
//   - ParcelGrouper: folds hydrated occurrences into parcels under an equivalence policy
//
// Every service is stateless and side-effect free; inputs are never mutated
// and all results are newly allocated per call.
package services
