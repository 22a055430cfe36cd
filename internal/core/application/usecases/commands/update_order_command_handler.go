package commands

import (
	"context"
	"time"

	"fleetboard/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies partial updates to an order.
//
// When the update carries a status, the aggregate stamps the milestone
// timestamp matching the new value with the current time, even when the
// milestone was already set. Any status value can be written at any time;
// the dashboard relies on the permissive path to correct mistakes.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for partial order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle loads the order, applies the present fields, and persists the
// result. Returns the updated order.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	if name := cmd.CustomerName(); name != nil {
		if err = aggregate.UpdateCustomerName(*name); err != nil {
			return nil, err
		}
	}
	if phone := cmd.CustomerPhone(); phone != nil {
		if err = aggregate.UpdateCustomerPhone(*phone); err != nil {
			return nil, err
		}
	}
	if address := cmd.DeliveryAddress(); address != nil {
		if err = aggregate.UpdateDeliveryAddress(*address); err != nil {
			return nil, err
		}
	}
	if details := cmd.OrderDetails(); details != nil {
		if err = aggregate.UpdateOrderDetails(details); err != nil {
			return nil, err
		}
	}
	if status := cmd.Status(); status != nil {
		if err = aggregate.ChangeStatus(*status, time.Now().UTC()); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
