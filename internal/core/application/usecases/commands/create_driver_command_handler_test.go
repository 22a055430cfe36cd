package commands_test

import (
	"strings"
	"testing"

	"fleetboard/internal/core/application/usecases/commands"
	"fleetboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDriverCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateDriverCommand("Alice Johnson", true)

	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", cmd.Name())
	assert.True(t, cmd.Available())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateDriverCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateDriverCommand("", true)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateDriverCommand_NameTooLong(t *testing.T) {
	_, err := commands.NewCreateDriverCommand(strings.Repeat("a", 256), true)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateDriverCommand("Alice Johnson", false)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDriverCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Alice Johnson", created.Name())
	assert.False(t, created.IsAvailable())
	assert.NoError(t, created.ID().Validate())

	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateDriverCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateDriverCommand{} // not constructed properly

	factory := new(MockDriverUoWFactory)
	handler := commands.NewCreateDriverCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateDriverCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
