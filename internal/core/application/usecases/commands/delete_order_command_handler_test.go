package commands_test

import (
	"testing"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/application/usecases/commands"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/order"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should delete in any status and record the discard", func(t *testing.T) {
		ctx := t.Context()
		f := newReplaceFixture(t, order.Delivered)
		cmd, err := commands.NewDeleteOrderCommand(f.order.ID())
		require.NoError(t, err)

		uow := newMockUoW()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.Orders.On("GetForUpdate", ctx, f.order.ID()).Return(f.order, nil).Once(),
			uow.Orders.On("Delete", ctx, mock.MatchedBy(func(o *order.Order) bool {
				events := o.DomainEvents()
				return len(events) == 1 && events[0].EventName() == order.DiscardedEventName
			})).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewDeleteOrderCommandHandler(orderFactory{uow}, clock)

		require.NoError(t, h.Handle(ctx, cmd))
		uow.AssertAll(t)
	})

	t.Run("should report unknown orders", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewDeleteOrderCommand(id)

		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.Orders.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewDeleteOrderCommandHandler(orderFactory{uow}, clock)
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.False(t, errs.IsValidation(err))
		uow.AssertAll(t)
	})

	t.Run("zero command is rejected", func(t *testing.T) {
		h := commands.NewDeleteOrderCommandHandler(orderFactory{newMockUoW()}, clock)

		require.ErrorIs(t, h.Handle(t.Context(), commands.DeleteOrderCommand{}),
			commands.ErrDeleteOrderCommandIsNotConstructed)
	})
}
