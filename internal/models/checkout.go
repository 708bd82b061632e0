package models

import "time"

type Customer struct {
	Nombre    string `json:"nombre" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Telefono  string `json:"telefono" validate:"required"`
	Direccion string `json:"direccion" validate:"required"`
}

type CheckoutRequest struct {
	Cliente    Customer `json:"cliente"`
	MetodoPago string   `json:"metodoPago" validate:"required,oneof=tarjeta paypal transferencia"`
}

type CheckoutSummary struct {
	Cantidad int     `json:"cantidad"`
	Subtotal float64 `json:"subtotal"`
	Envio    float64 `json:"envio"`
	Total    float64 `json:"total"`
}

// Order is what the checkout hands to the payment processor.
type Order struct {
	NumeroPedido string          `json:"numeroPedido"`
	Cliente      Customer        `json:"cliente"`
	MetodoPago   string          `json:"metodoPago"`
	Productos    []CartEntry     `json:"productos"`
	Totales      CheckoutSummary `json:"totales"`
	Fecha        time.Time       `json:"fecha"`
}

type PaymentResult struct {
	Provider  string `json:"provider"`
	Reference string `json:"reference,omitempty"`
}

type OrderConfirmation struct {
	Order
	Pago PaymentResult `json:"pago"`
}
