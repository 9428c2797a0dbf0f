package queries_test

import (
	"testing"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/application/usecases/queries"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/order"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("should build an unfiltered query", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery()

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Nil(t, q.Status())
		assert.Nil(t, q.CustomerID())
	})

	t.Run("should combine status and customer filters", func(t *testing.T) {
		customerID := kernel.NewUUID()

		q, err := queries.NewListOrdersQuery(queries.WithStatus("Delivering"), queries.WithCustomer(customerID.String()))

		require.NoError(t, err)
		require.NotNil(t, q.Status())
		assert.Equal(t, order.Delivering, *q.Status())
		require.NotNil(t, q.CustomerID())
		assert.True(t, q.CustomerID().IsEqual(customerID))
	})

	t.Run("should report every malformed filter", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(queries.WithStatus("Lost"), queries.WithCustomer("abc"))

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		fields := errs.Fields(err)
		assert.Contains(t, fields, "status")
		assert.Equal(t, "enter a valid UUID", fields["customer"])
	})

	t.Run("should reject a zero value query", func(t *testing.T) {
		assert.Error(t, queries.ListOrdersQuery{}.Validate())
	})
}
