package commands

import (
	"context"
	"time"

	"fleetboard/internal/core/domain/model/order"
	"fleetboard/internal/pkg/errs"
)

// AssignDriverCommandHandler links a driver to an order.
//
// Checks run in a fixed sequence so the caller always gets the most specific
// failure: order existence, driver existence, driver availability, then the
// delivered guard on the order itself. A first assignment moves the order to
// ASSIGNED and stamps assignedAt; assigning over an existing driver swaps the
// driver reference and leaves status and timestamps alone.
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory UoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{uowFactory: uowFactory}
}

// Handle performs the assignment and returns the updated order.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	assignee, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if !assignee.IsAvailable() {
		return nil, errs.NewStateConflictError("assign driver", "driver is unavailable")
	}

	if err = aggregate.AssignDriver(assignee.ID(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
