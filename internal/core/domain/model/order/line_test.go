package order_test

import (
	"testing"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/order"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDetail(t *testing.T, size order.Size, count int) order.SizeDetail {
	t.Helper()
	d, err := order.NewSizeDetail(size, count)
	require.NoError(t, err)
	return d
}

func TestParseSize(t *testing.T) {
	for _, name := range []string{"Small", "Medium", "Large"} {
		s, err := order.ParseSize(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
	}

	_, err := order.ParseSize("XL")
	require.Error(t, err)
	assert.Equal(t, "size", firstKey(errs.Fields(err)))
}

func TestNewSizeDetail(t *testing.T) {
	t.Run("should accept bounds", func(t *testing.T) {
		low := mustDetail(t, order.Small, order.MinCount)
		high := mustDetail(t, order.Large, order.MaxCount)

		assert.Equal(t, 1, low.Count())
		assert.Equal(t, order.Large, high.Size())
	})

	t.Run("should reject zero count", func(t *testing.T) {
		_, err := order.NewSizeDetail(order.Small, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, "must be between 1 and 32767", errs.Fields(err)["count"])
	})

	t.Run("should report size and count together", func(t *testing.T) {
		_, err := order.NewSizeDetail(order.UnknownSize, -3)

		fields := errs.Fields(err)
		assert.Contains(t, fields, "size")
		assert.Contains(t, fields, "count")
	})
}

func TestNewLine(t *testing.T) {
	pizzaID := kernel.NewUUID()

	t.Run("should keep details in order", func(t *testing.T) {
		details := []order.SizeDetail{mustDetail(t, order.Large, 2), mustDetail(t, order.Small, 1)}

		line, err := order.NewLine(kernel.NewUUID(), pizzaID, details)

		require.NoError(t, err)
		assert.True(t, line.PizzaID().IsEqual(pizzaID))
		assert.Equal(t, details, line.Details())
	})

	t.Run("should reject empty details", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), pizzaID, nil)

		require.ErrorIs(t, err, order.ErrEmpty)
		assert.Equal(t, map[string]string{"details": "empty"}, errs.Fields(err))
	})

	t.Run("should reject repeated size", func(t *testing.T) {
		details := []order.SizeDetail{mustDetail(t, order.Medium, 2), mustDetail(t, order.Medium, 5)}

		_, err := order.NewLine(kernel.NewUUID(), pizzaID, details)

		require.ErrorIs(t, err, order.ErrDuplicateSize)
		assert.Equal(t, map[string]string{"details": "duplicate size"}, errs.Fields(err))
	})

	t.Run("should reject zero pizza id", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), kernel.UUID{}, []order.SizeDetail{mustDetail(t, order.Small, 1)})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestCheckPizzas(t *testing.T) {
	require.ErrorIs(t, order.CheckPizzasPresent(0), order.ErrEmpty)
	require.NoError(t, order.CheckPizzasPresent(1))

	a, b := kernel.NewUUID(), kernel.NewUUID()
	require.NoError(t, order.CheckPizzasDistinct([]kernel.UUID{a, b}))

	err := order.CheckPizzasDistinct([]kernel.UUID{a, b, a})
	require.ErrorIs(t, err, order.ErrDuplicateID)
	assert.Equal(t, map[string]string{"pizzas": "duplicate id"}, errs.Fields(err))
}

func firstKey(m map[string]string) string {
	for k := range m {
		return k
	}
	return ""
}
