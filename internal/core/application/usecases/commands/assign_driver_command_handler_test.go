package commands_test

import (
	"errors"
	"testing"
	"time"

	"fleetboard/internal/core/application/usecases/commands"
	"fleetboard/internal/core/domain/model/driver"
	"fleetboard/internal/core/domain/model/kernel"
	"fleetboard/internal/core/domain/model/order"
	"fleetboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()

	point, err := kernel.NewGeoPoint(40.7128, -74.0060)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), "John Doe", "+15550100", "123 Main St", nil, point, time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func availableDriver(t *testing.T) *driver.Driver {
	t.Helper()

	d, err := driver.NewDriver(kernel.NewUUID(), "Alice Johnson", true, time.Now().UTC())
	require.NoError(t, err)
	return d
}

func TestAssignDriverCommandHandler_Handle_InitialAssignment(t *testing.T) {
	ctx := t.Context()

	testOrder := pendingOrder(t)
	testDriver := availableDriver(t)

	cmd, err := commands.NewAssignDriverCommand(testOrder.ID(), testDriver.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, order.Assigned, updated.Status())
	require.NotNil(t, updated.Driver())
	assert.True(t, updated.Driver().IsEqual(testDriver.ID()))
	assert.NotNil(t, updated.AssignedAt())

	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_Reassignment(t *testing.T) {
	ctx := t.Context()

	firstDriver := availableDriver(t)
	testOrder := pendingOrder(t)
	assignedAt := time.Now().UTC().Add(-10 * time.Minute)
	require.NoError(t, testOrder.AssignDriver(firstDriver.ID(), assignedAt))

	secondDriver, err := driver.NewDriver(kernel.NewUUID(), "Marcus Webb", true, time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewAssignDriverCommand(testOrder.ID(), secondDriver.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, secondDriver.ID()).Return(secondDriver, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// Driver swapped, status and milestone untouched.
	require.NotNil(t, updated.Driver())
	assert.True(t, updated.Driver().IsEqual(secondDriver.ID()))
	assert.Equal(t, order.Assigned, updated.Status())
	require.NotNil(t, updated.AssignedAt())
	assert.Equal(t, assignedAt, *updated.AssignedAt())
}

func TestAssignDriverCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignDriverCommand(orderID, kernel.NewUUID())
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

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "DriverRepository")
}

func TestAssignDriverCommandHandler_Handle_DriverNotFound(t *testing.T) {
	ctx := t.Context()

	testOrder := pendingOrder(t)
	driverID := kernel.NewUUID()

	cmd, err := commands.NewAssignDriverCommand(testOrder.ID(), driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverID).
			Return(nil, errs.NewObjectNotFoundError("driver", driverID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_DriverUnavailable(t *testing.T) {
	ctx := t.Context()

	testOrder := pendingOrder(t)
	busyDriver, err := driver.NewDriver(kernel.NewUUID(), "Omar Hassan", false, time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewAssignDriverCommand(testOrder.ID(), busyDriver.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, busyDriver.ID()).Return(busyDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStateConflict)
	assert.Contains(t, err.Error(), "driver is unavailable")
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_OrderDelivered(t *testing.T) {
	ctx := t.Context()

	testOrder := pendingOrder(t)
	require.NoError(t, testOrder.ChangeStatus(order.Delivered, time.Now().UTC()))

	testDriver := availableDriver(t)

	cmd, err := commands.NewAssignDriverCommand(testOrder.ID(), testDriver.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStateConflict)
	assert.Contains(t, err.Error(), "already delivered")
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()

	testOrder := pendingOrder(t)
	testDriver := availableDriver(t)

	cmd, err := commands.NewAssignDriverCommand(testOrder.ID(), testDriver.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).
			Return(errors.New("update error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "update error")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignDriverCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignDriverCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewAssignDriverCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignDriverCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
