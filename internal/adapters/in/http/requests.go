package http

// Request bodies. Pointer fields distinguish "absent" from "present but
// empty" on the partial-update routes.

type createOrderRequest struct {
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	DeliveryAddress string  `json:"deliveryAddress"`
	OrderDetails    *string `json:"orderDetails"`
}

type updateOrderRequest struct {
	CustomerName    *string `json:"customerName"`
	CustomerPhone   *string `json:"customerPhone"`
	DeliveryAddress *string `json:"deliveryAddress"`
	OrderDetails    *string `json:"orderDetails"`
	Status          *string `json:"status"`
}

type assignDriverRequest struct {
	DriverID string `json:"driverId"`
}

type createDriverRequest struct {
	Name      string `json:"name"`
	Available *bool  `json:"available"` // nil defaults to true
}

type updateDriverRequest struct {
	Name      *string `json:"name"`
	Available *bool   `json:"available"`
}
