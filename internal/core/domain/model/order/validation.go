package order

import "fleetboard/internal/pkg/errs"

// Field validators shared by the aggregate and the command layer, so input
// is rejected with the same errors before a transaction is ever opened.

// ValidateCustomerName checks the customer name requirement and length limit.
func ValidateCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if len(name) > maxCustomerNameLen {
		return errs.NewValueIsOutOfRangeError("customerName length", len(name), 1, maxCustomerNameLen)
	}
	return nil
}

// ValidateCustomerPhone checks the customer phone requirement and length limit.
func ValidateCustomerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	if len(phone) > maxCustomerPhoneLen {
		return errs.NewValueIsOutOfRangeError("customerPhone length", len(phone), 1, maxCustomerPhoneLen)
	}
	return nil
}

// ValidateDeliveryAddress checks the delivery address requirement and length limit.
func ValidateDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	if len(address) > maxDeliveryAddressLen {
		return errs.NewValueIsOutOfRangeError("deliveryAddress length", len(address), 1, maxDeliveryAddressLen)
	}
	return nil
}

// ValidateOrderDetails checks the optional details length limit.
func ValidateOrderDetails(details *string) error {
	if details != nil && len(*details) > maxOrderDetailsLen {
		return errs.NewValueIsOutOfRangeError("orderDetails length", len(*details), 0, maxOrderDetailsLen)
	}
	return nil
}
