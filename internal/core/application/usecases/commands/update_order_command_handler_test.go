package commands_test

import (
	"testing"
	"time"

	"fleetboard/internal/core/application/usecases/commands"
	"fleetboard/internal/core/domain/model/kernel"
	"fleetboard/internal/core/domain/model/order"
	"fleetboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderCommandHandler_Handle_UpdatesFields(t *testing.T) {
	ctx := t.Context()
	testOrder := pendingOrder(t)

	newName := "Jane Smith"
	newDetails := "Call on arrival"
	cmd, err := commands.NewUpdateOrderCommand(testOrder.ID(), &newName, nil, nil, &newDetails, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, newName, updated.CustomerName())
	assert.Equal(t, "+15550100", updated.CustomerPhone()) // untouched
	require.NotNil(t, updated.OrderDetails())
	assert.Equal(t, newDetails, *updated.OrderDetails())
	assert.Equal(t, order.Pending, updated.Status())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_StatusStampsMilestone(t *testing.T) {
	ctx := t.Context()
	testOrder := pendingOrder(t)

	status := order.InTransit
	cmd, err := commands.NewUpdateOrderCommand(testOrder.ID(), nil, nil, nil, nil, &status)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.InTransit, updated.Status())
	assert.NotNil(t, updated.InTransitAt())
	assert.Nil(t, updated.AssignedAt()) // only the matching milestone is stamped
	assert.Nil(t, updated.DeliveredAt())
}

func TestUpdateOrderCommandHandler_Handle_BackwardsStatusKeepsMilestones(t *testing.T) {
	ctx := t.Context()

	testOrder := pendingOrder(t)
	deliveredAt := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, testOrder.ChangeStatus(order.Delivered, deliveredAt))

	status := order.Pending
	cmd, err := commands.NewUpdateOrderCommand(testOrder.ID(), nil, nil, nil, nil, &status)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, updated.Status())
	// Milestones survive backwards transitions.
	require.NotNil(t, updated.DeliveredAt())
	assert.Equal(t, deliveredAt, *updated.DeliveredAt())
}

func TestUpdateOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	name := "Jane Smith"
	cmd, err := commands.NewUpdateOrderCommand(orderID, &name, nil, nil, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestNewUpdateOrderCommand_InvalidStatus(t *testing.T) {
	status := order.Status("SHIPPED")

	_, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), nil, nil, nil, nil, &status)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdateOrderCommand_PresentFieldsValidated(t *testing.T) {
	empty := ""

	_, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), &empty, nil, nil, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewUpdateOrderCommand_AllNilFieldsIsValid(t *testing.T) {
	cmd, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), nil, nil, nil, nil, nil)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Nil(t, cmd.CustomerName())
	assert.Nil(t, cmd.Status())
}
