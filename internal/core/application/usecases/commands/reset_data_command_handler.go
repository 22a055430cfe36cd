package commands

import (
	"context"
	"time"

	"fleetboard/internal/core/domain/services"
	"fleetboard/internal/pkg/errs"
)

// ResetDataResult reports how many rows a reset created.
type ResetDataResult struct {
	DriversCreated int
	OrdersCreated  int
}

// ResetDataCommandHandler wipes all orders and drivers and repopulates the
// database from the demo data generator. Wipe, generation, and inserts run
// in a single transaction: a failed reset leaves the previous data intact.
type ResetDataCommandHandler struct {
	uowFactory UoWFactory
	generator  *services.DemoDataGenerator
}

// NewResetDataCommandHandler creates a handler for the demo data reset.
func NewResetDataCommandHandler(
	uowFactory UoWFactory, generator *services.DemoDataGenerator,
) (ResetDataCommandHandler, error) {
	if uowFactory == nil {
		return ResetDataCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if generator == nil {
		return ResetDataCommandHandler{}, errs.NewValueIsRequiredError("generator")
	}

	return ResetDataCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
	}, nil
}

// Handle replaces the entire data set and returns the created row counts.
// Drivers are inserted before orders so every order's driver reference
// already exists when the order row lands.
func (h ResetDataCommandHandler) Handle(ctx context.Context, cmd ResetDataCommand) (ResetDataResult, error) {
	if err := cmd.Validate(); err != nil {
		return ResetDataResult{}, err
	}

	dataSet, err := h.generator.Generate(time.Now().UTC())
	if err != nil {
		return ResetDataResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ResetDataResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()

	if err := orderRepo.DeleteAll(ctx); err != nil {
		return ResetDataResult{}, err
	}
	if err := driverRepo.DeleteAll(ctx); err != nil {
		return ResetDataResult{}, err
	}

	for _, d := range dataSet.Drivers {
		if err := driverRepo.Add(ctx, d); err != nil {
			return ResetDataResult{}, err
		}
	}
	for _, o := range dataSet.Orders {
		if err := orderRepo.Add(ctx, o); err != nil {
			return ResetDataResult{}, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return ResetDataResult{}, err
	}

	return ResetDataResult{
		DriversCreated: len(dataSet.Drivers),
		OrdersCreated:  len(dataSet.Orders),
	}, nil
}
