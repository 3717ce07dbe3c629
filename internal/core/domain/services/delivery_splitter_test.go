package services_test

import (
	"testing"

	"parcels/internal/core/domain/model/order"
	"parcels/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliverySplitter_Split(t *testing.T) {
	splitter := services.NewDeliverySplitter()

	t.Run("empty items yield nil, not an empty result", func(t *testing.T) {
		assert.Nil(t, splitter.Split(nil, nil))
		assert.Nil(t, splitter.Split([]order.Item{}, []order.PackageManifest{{}}))
	})

	t.Run("item with no referencing package is wholly pending", func(t *testing.T) {
		items := []order.Item{{ID: "shirt", Quantity: 3, Position: 0}}

		split := splitter.Split(items, nil)

		require.NotNil(t, split)
		assert.Empty(t, split.Delivered)
		require.Len(t, split.Pending, 1)
		assert.Equal(t, 3, split.Pending[0].Item.Quantity)
		assert.Nil(t, split.Pending[0].Package)
	})

	t.Run("quantity split across two shipments leaves the remainder pending", func(t *testing.T) {
		items := []order.Item{{ID: "shirt", Quantity: 3, Position: 0}}
		manifests := []order.PackageManifest{
			{Position: 0, Contents: []order.PackageContent{{ItemPosition: 0, Quantity: 1}}},
			{Position: 1, Contents: []order.PackageContent{{ItemPosition: 0, Quantity: 1}}},
		}

		split := splitter.Split(items, manifests)

		require.NotNil(t, split)
		require.Len(t, split.Delivered, 2)
		require.Len(t, split.Pending, 1)

		assert.Equal(t, 1, split.Delivered[0].Item.Quantity)
		assert.Equal(t, 0, split.Delivered[0].Package.Position)
		assert.Equal(t, 1, split.Delivered[1].Item.Quantity)
		assert.Equal(t, 1, split.Delivered[1].Package.Position)
		assert.Equal(t, 1, split.Pending[0].Item.Quantity)

		total := split.Pending[0].Item.Quantity
		for _, occ := range split.Delivered {
			total += occ.Item.Quantity
		}
		assert.Equal(t, 3, total, "split conserves quantity")
	})

	t.Run("fully shipped item has no pending occurrence", func(t *testing.T) {
		items := []order.Item{{ID: "mug", Quantity: 2, Position: 0}}
		manifests := []order.PackageManifest{
			{Position: 0, Contents: []order.PackageContent{{ItemPosition: 0, Quantity: 2}}},
		}

		split := splitter.Split(items, manifests)

		require.NotNil(t, split)
		assert.Empty(t, split.Pending)
		require.Len(t, split.Delivered, 1)
		assert.Equal(t, 2, split.Delivered[0].Item.Quantity)
	})

	t.Run("manifests only claim the positions they reference", func(t *testing.T) {
		items := []order.Item{
			{ID: "shirt", Quantity: 1, Position: 0},
			{ID: "mug", Quantity: 1, Position: 1},
		}
		manifests := []order.PackageManifest{
			{Position: 0, Contents: []order.PackageContent{{ItemPosition: 1, Quantity: 1}}},
		}

		split := splitter.Split(items, manifests)

		require.NotNil(t, split)
		require.Len(t, split.Pending, 1)
		assert.Equal(t, "shirt", split.Pending[0].Item.ID)
		require.Len(t, split.Delivered, 1)
		assert.Equal(t, "mug", split.Delivered[0].Item.ID)
	})

	t.Run("one manifest can cover several items", func(t *testing.T) {
		items := []order.Item{
			{ID: "shirt", Quantity: 1, Position: 0},
			{ID: "mug", Quantity: 2, Position: 1},
		}
		manifests := []order.PackageManifest{
			{Position: 0, Contents: []order.PackageContent{
				{ItemPosition: 0, Quantity: 1},
				{ItemPosition: 1, Quantity: 2},
			}},
		}

		split := splitter.Split(items, manifests)

		require.NotNil(t, split)
		assert.Empty(t, split.Pending)
		require.Len(t, split.Delivered, 2)
		assert.Equal(t, split.Delivered[0].Package.Position, split.Delivered[1].Package.Position)
	})
}
