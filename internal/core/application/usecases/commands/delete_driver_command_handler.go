package commands

import "context"

// DeleteDriverCommandHandler removes a driver from the fleet. Orders that
// reference the driver keep their status and milestone timestamps but lose
// the driver link; both writes happen in one transaction so no order ever
// points at a missing driver.
type DeleteDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteDriverCommandHandler creates a handler for driver removal.
func NewDeleteDriverCommandHandler(uowFactory UoWFactory) DeleteDriverCommandHandler {
	return DeleteDriverCommandHandler{uowFactory: uowFactory}
}

// Handle clears the driver from all orders, then deletes the driver.
func (h DeleteDriverCommandHandler) Handle(ctx context.Context, cmd DeleteDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	// Existence check first so a missing driver reports not found before
	// any orders are touched.
	if _, err := driverRepo.Get(ctx, cmd.DriverID()); err != nil {
		return err
	}

	if err := uow.OrderRepository().ClearDriver(ctx, cmd.DriverID()); err != nil {
		return err
	}

	if err := driverRepo.Delete(ctx, cmd.DriverID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
