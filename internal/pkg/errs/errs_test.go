package errs_test

import (
	"errors"
	"testing"

	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("slaId", "express-1d")

		assert.Equal(t, "slaId", err.ParamName)
		assert.Equal(t, "express-1d", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: express-1d", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("logistics table is empty")
		err := errs.NewObjectNotFoundErrorWithCause("itemPosition", "3", cause)

		assert.Equal(t, "itemPosition", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: itemPosition, ID is: 3 (cause: logistics table is empty)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("shippingEstimate")

		assert.Equal(t, "shippingEstimate", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: shippingEstimate", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown unit suffix")
		err := errs.NewValueIsInvalidErrorWithCause("shippingEstimate", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: shippingEstimate (cause: unknown unit suffix)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", -2, 1, 100)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -2, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, "value is invalid: -2 is quantity, min value is 1, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("order")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "value is required: order", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("empty configuration")
		err := errs.NewValueIsRequiredErrorWithCause("orderFile", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: orderFile (cause: empty configuration)", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("slaId", "x"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("estimate"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("quantity", 0, 1, 10), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("order"), errs.ErrValueIsRequired)
	})
}
