package queries_test

import (
	"testing"

	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/order"
	"parcels/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestNewComputeParcelsQuery(t *testing.T) {
	t.Run("constructed query is valid", func(t *testing.T) {
		query, err := queries.NewComputeParcelsQuery(order.Order{}, parcel.CriteriaPatch{})
		require.NoError(t, err)
		assert.NoError(t, query.Validate())
	})

	t.Run("zero-value query fails validation", func(t *testing.T) {
		var query queries.ComputeParcelsQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrComputeParcelsQueryIsNotConstructed)
	})
}

func TestComputeParcelsQuery_Criteria(t *testing.T) {
	t.Run("zero patch keeps the defaults", func(t *testing.T) {
		query, err := queries.NewComputeParcelsQuery(order.Order{}, parcel.CriteriaPatch{})
		require.NoError(t, err)

		assert.Equal(t, parcel.DefaultCriteria(), query.Criteria())
	})

	t.Run("patch overrides only the fields it sets", func(t *testing.T) {
		query, err := queries.NewComputeParcelsQuery(order.Order{}, parcel.CriteriaPatch{
			SLAOptions: boolPtr(true),
			Seller:     boolPtr(false),
		})
		require.NoError(t, err)

		criteria := query.Criteria()
		assert.True(t, criteria.SLAOptions)
		assert.False(t, criteria.Seller)
		assert.True(t, criteria.SelectedSLA, "untouched fields keep their defaults")
		assert.True(t, criteria.DeliveryChannel)
	})
}
