package commands

import (
	"errors"

	"fleetboard/internal/core/domain/model/kernel"
	"fleetboard/internal/core/domain/model/order"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an order. Nil fields are
// absent and left untouched; present fields are validated up front with the
// order package's validators. A present status triggers the milestone
// re-stamp side effect in the handler.
type UpdateOrderCommand struct {
	orderID         kernel.UUID
	customerName    *string
	customerPhone   *string
	deliveryAddress *string
	orderDetails    *string
	status          *order.Status

	isConstructed bool
}

// NewUpdateOrderCommand creates a partial-update command. Every present field
// is validated; an all-nil update is legal and leaves the order unchanged.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	customerName, customerPhone, deliveryAddress, orderDetails *string,
	status *order.Status,
) (UpdateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	var errList []error
	if customerName != nil {
		errList = append(errList, order.ValidateCustomerName(*customerName))
	}
	if customerPhone != nil {
		errList = append(errList, order.ValidateCustomerPhone(*customerPhone))
	}
	if deliveryAddress != nil {
		errList = append(errList, order.ValidateDeliveryAddress(*deliveryAddress))
	}
	if orderDetails != nil {
		errList = append(errList, order.ValidateOrderDetails(orderDetails))
	}
	if status != nil {
		errList = append(errList, status.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID:         orderID,
		customerName:    customerName,
		customerPhone:   customerPhone,
		deliveryAddress: deliveryAddress,
		orderDetails:    orderDetails,
		status:          status,
		isConstructed:   true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	if !c.isConstructed {
		return ErrUpdateOrderCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the target order's identifier.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the replacement name, nil when absent.
func (c UpdateOrderCommand) CustomerName() *string {
	return c.customerName
}

// CustomerPhone returns the replacement phone, nil when absent.
func (c UpdateOrderCommand) CustomerPhone() *string {
	return c.customerPhone
}

// DeliveryAddress returns the replacement address, nil when absent.
func (c UpdateOrderCommand) DeliveryAddress() *string {
	return c.deliveryAddress
}

// OrderDetails returns the replacement details, nil when absent.
func (c UpdateOrderCommand) OrderDetails() *string {
	return c.orderDetails
}

// Status returns the replacement status, nil when absent.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}
