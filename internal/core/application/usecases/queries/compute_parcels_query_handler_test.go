package queries_test

import (
	"testing"
	"time"

	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/order"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/shipping"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var handlerClock = func() time.Time {
	return time.Date(2023, time.March, 6, 10, 0, 0, 0, time.UTC)
}

// entryFor builds a logistics entry for the item at position with a standard
// two-option SLA list and the given selection.
func entryFor(position int, selectedSLA string) shipping.LogisticsEntry {
	return shipping.LogisticsEntry{
		ItemPosition:            position,
		SelectedSLAID:           selectedSLA,
		SelectedDeliveryChannel: shipping.ChannelDelivery,
		SLAs: []shipping.SLA{
			{ID: "normal", ShippingEstimate: "3bd", DeliveryChannel: shipping.ChannelDelivery, Price: 1000},
			{ID: "express", ShippingEstimate: "1bd", DeliveryChannel: shipping.ChannelDelivery, Price: 2500},
		},
	}
}

func snapshot(items []order.Item, entries []shipping.LogisticsEntry) order.Order {
	return order.Order{
		Items:        items,
		ShippingData: &shipping.Data{LogisticsInfo: entries},
	}
}

func handle(t *testing.T, o order.Order, patch parcel.CriteriaPatch) []*parcel.Parcel {
	t.Helper()
	query, err := queries.NewComputeParcelsQuery(o, patch)
	require.NoError(t, err)

	parcels, err := queries.NewComputeParcelsQueryHandler(handlerClock).Handle(query)
	require.NoError(t, err)
	return parcels
}

func totalQuantity(parcels []*parcel.Parcel) int {
	total := 0
	for _, p := range parcels {
		total += p.TotalQuantity()
	}
	return total
}

func TestComputeParcelsQueryHandler_Handle(t *testing.T) {
	handler := queries.NewComputeParcelsQueryHandler(handlerClock)

	t.Run("rejects a query built without the constructor", func(t *testing.T) {
		var query queries.ComputeParcelsQuery

		_, err := handler.Handle(query)

		assert.ErrorIs(t, err, queries.ErrComputeParcelsQueryIsNotConstructed)
	})

	t.Run("empty order computes to an empty, non-nil result", func(t *testing.T) {
		parcels := handle(t, order.Order{}, parcel.CriteriaPatch{})

		require.NotNil(t, parcels)
		assert.Empty(t, parcels)
	})

	t.Run("identical pending items collapse into one hydrated parcel", func(t *testing.T) {
		o := snapshot(
			[]order.Item{
				{ID: "shirt", Quantity: 1, Seller: "acme"},
				{ID: "mug", Quantity: 1, Seller: "acme"},
			},
			[]shipping.LogisticsEntry{entryFor(0, "normal"), entryFor(1, "normal")},
		)

		parcels := handle(t, o, parcel.CriteriaPatch{})

		require.Len(t, parcels, 1)
		p := parcels[0]
		assert.False(t, p.IsDelivered())
		assert.Equal(t, 2, p.TotalQuantity())
		require.NotNil(t, p.SelectedSLAID)
		assert.Equal(t, "normal", *p.SelectedSLAID)
		require.NotNil(t, p.ShippingEstimate)
		assert.Equal(t, "3bd", *p.ShippingEstimate)
		require.NotNil(t, p.DeliveryChannel)
		assert.Equal(t, shipping.ChannelDelivery, *p.DeliveryChannel)
		require.NotNil(t, p.Seller)
		assert.Equal(t, "acme", *p.Seller)
		require.NotNil(t, p.Price)
		assert.Equal(t, int64(2000), *p.Price)
	})

	t.Run("different selected slas keep pending items apart", func(t *testing.T) {
		o := snapshot(
			[]order.Item{
				{ID: "shirt", Quantity: 1, Seller: "acme"},
				{ID: "mug", Quantity: 1, Seller: "acme"},
			},
			[]shipping.LogisticsEntry{entryFor(0, "normal"), entryFor(1, "express")},
		)

		parcels := handle(t, o, parcel.CriteriaPatch{})

		assert.Len(t, parcels, 2)
	})

	t.Run("delivered quantities split out per package, delivered first", func(t *testing.T) {
		o := snapshot(
			[]order.Item{{ID: "shirt", Quantity: 3, Seller: "acme"}},
			[]shipping.LogisticsEntry{entryFor(0, "normal")},
		)
		o.PackageAttachment = &order.PackageAttachment{Packages: []order.PackageManifest{
			{
				Contents:       []order.PackageContent{{ItemPosition: 0, Quantity: 1}},
				TrackingNumber: "TN-1",
			},
			{
				Contents:       []order.PackageContent{{ItemPosition: 0, Quantity: 1}},
				TrackingNumber: "TN-2",
			},
		}}

		parcels := handle(t, o, parcel.CriteriaPatch{})

		require.Len(t, parcels, 3)
		assert.True(t, parcels[0].IsDelivered())
		assert.Equal(t, "TN-1", parcels[0].Package.TrackingNumber)
		assert.True(t, parcels[1].IsDelivered())
		assert.Equal(t, "TN-2", parcels[1].Package.TrackingNumber)
		assert.False(t, parcels[2].IsDelivered())
		for _, p := range parcels {
			assert.Equal(t, 1, p.TotalQuantity())
		}
	})

	t.Run("total quantity is conserved across the decomposition", func(t *testing.T) {
		o := snapshot(
			[]order.Item{
				{ID: "shirt", Quantity: 2, Seller: "acme"},
				{ID: "mug", Quantity: 1, Seller: "other"},
			},
			[]shipping.LogisticsEntry{entryFor(0, "normal"), entryFor(1, "normal")},
		)
		o.PackageAttachment = &order.PackageAttachment{Packages: []order.PackageManifest{
			{Contents: []order.PackageContent{{ItemPosition: 0, Quantity: 1}}},
		}}

		parcels := handle(t, o, parcel.CriteriaPatch{})

		assert.Equal(t, 3, totalQuantity(parcels))
	})

	t.Run("removing an item's full quantity removes its parcels", func(t *testing.T) {
		o := snapshot(
			[]order.Item{{ID: "shirt", Quantity: 2, Seller: "acme"}},
			[]shipping.LogisticsEntry{entryFor(0, "normal")},
		)
		o.ChangesAttachment = &order.ChangesAttachment{ChangesData: []order.ChangeEvent{
			{ItemsRemoved: []order.Item{{ID: "shirt", Quantity: 2}}},
		}}

		parcels := handle(t, o, parcel.CriteriaPatch{})

		assert.Empty(t, parcels)
	})

	t.Run("offsetting changes leave the output unchanged", func(t *testing.T) {
		items := []order.Item{{ID: "shirt", Quantity: 2, Seller: "acme"}}
		entries := []shipping.LogisticsEntry{entryFor(0, "normal")}

		plain := snapshot(items, entries)
		noop := snapshot(items, entries)
		noop.ChangesAttachment = &order.ChangesAttachment{ChangesData: []order.ChangeEvent{
			{
				ItemsAdded:   []order.Item{{ID: "shirt", Quantity: 1}},
				ItemsRemoved: []order.Item{{ID: "shirt", Quantity: 1}},
			},
		}}

		want := handle(t, plain, parcel.CriteriaPatch{})
		got := handle(t, noop, parcel.CriteriaPatch{})

		require.Len(t, got, len(want))
		for i := range want {
			assert.Empty(t, cmp.Diff(want[i].Items, got[i].Items))
		}
	})

	t.Run("quantity added by a change shows up in the parcels", func(t *testing.T) {
		o := snapshot(
			[]order.Item{{ID: "shirt", Quantity: 1, Seller: "acme"}},
			[]shipping.LogisticsEntry{entryFor(0, "normal")},
		)
		o.ChangesAttachment = &order.ChangesAttachment{ChangesData: []order.ChangeEvent{
			{ItemsAdded: []order.Item{{ID: "shirt", Quantity: 2}}},
		}}

		parcels := handle(t, o, parcel.CriteriaPatch{})

		require.Len(t, parcels, 1)
		assert.Equal(t, 3, parcels[0].TotalQuantity())
	})

	t.Run("criteria patch reaches the grouping", func(t *testing.T) {
		o := snapshot(
			[]order.Item{{ID: "shirt", Quantity: 1, Seller: "acme"}},
			[]shipping.LogisticsEntry{entryFor(0, "normal")},
		)

		parcels := handle(t, o, parcel.CriteriaPatch{Seller: boolPtr(false)})

		require.Len(t, parcels, 1)
		assert.Nil(t, parcels[0].Seller)
	})
}
