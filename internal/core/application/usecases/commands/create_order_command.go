package commands

import (
	"errors"

	"fleetboard/internal/core/domain/model/order"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new delivery order.
// Field validation (required fields, length limits) reuses the order
// package's validators, so bad input is rejected before any transaction
// is opened.
type CreateOrderCommand struct {
	customerName    string
	customerPhone   string
	deliveryAddress string
	orderDetails    *string

	isConstructed bool
}

// NewCreateOrderCommand creates a command to register a new delivery order.
func NewCreateOrderCommand(
	customerName, customerPhone, deliveryAddress string,
	orderDetails *string,
) (CreateOrderCommand, error) {
	if err := errors.Join(
		order.ValidateCustomerName(customerName),
		order.ValidateCustomerPhone(customerPhone),
		order.ValidateDeliveryAddress(deliveryAddress),
		order.ValidateOrderDetails(orderDetails),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		customerName:    customerName,
		customerPhone:   customerPhone,
		deliveryAddress: deliveryAddress,
		orderDetails:    orderDetails,
		isConstructed:   true,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	if !c.isConstructed {
		return ErrCreateOrderCommandIsNotConstructed
	}
	return nil
}

// CustomerName returns the customer's display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the customer's contact phone.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// DeliveryAddress returns the destination address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// OrderDetails returns the optional free-text details, nil when absent.
func (c CreateOrderCommand) OrderDetails() *string {
	return c.orderDetails
}
