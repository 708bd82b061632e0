package models

// CartEntry is one cart line. Precio is the price at the time the product was
// added and is never refreshed from the catalog.
type CartEntry struct {
	ID       int64   `json:"id"`
	Nombre   string  `json:"nombre"`
	Precio   float64 `json:"precio"`
	Cantidad int     `json:"cantidad"`
}

func (e CartEntry) Subtotal() float64 {
	return e.Precio * float64(e.Cantidad)
}

// Cart keeps entries in insertion order with at most one entry per product id.
type Cart struct {
	Entries []CartEntry `json:"entries"`
}

type CartLine struct {
	CartEntry
	Subtotal float64 `json:"subtotal"`
}

type CartSummary struct {
	Lines         []CartLine `json:"lines"`
	CantidadTotal int        `json:"cantidadTotal"`
	MontoTotal    float64    `json:"montoTotal"`
}

type AddToCartRequest struct {
	ID     int64   `json:"id" validate:"required,gt=0"`
	Nombre string  `json:"nombre" validate:"required"`
	Precio float64 `json:"precio" validate:"finite,gt=0"`
}

type ChangeQuantityRequest struct {
	Delta int `json:"delta" validate:"oneof=-1 1"`
}
