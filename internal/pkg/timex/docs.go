// Package timex implements the time collaborators of the parcel computation:
// the shipping-estimate duration resolver and the business-day to calendar-day
// converter. The converter depends on wall-clock time, which is the only
// source of non-determinism in the module, so it is threaded through an
// injectable Clock.
package timex
