package commands

import (
	"context"
	"time"

	"fleetboard/internal/core/domain/model/kernel"
	"fleetboard/internal/core/domain/model/order"
	"fleetboard/internal/core/ports"
)

// CreateOrderCommandHandler creates new orders. The delivery address is
// geocoded through the static address table; unknown addresses resolve to the
// default center coordinate, so geocoding never blocks creation. The status
// of a fresh order is always PENDING regardless of anything the caller sent.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	geocoder   ports.Geocoder
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, geocoder ports.Geocoder) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
	}
}

// Handle geocodes the address, builds the aggregate, and persists it.
// Returns the created order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	location := h.geocoder.Geocode(cmd.DeliveryAddress())

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.DeliveryAddress(),
		cmd.OrderDetails(),
		location,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
