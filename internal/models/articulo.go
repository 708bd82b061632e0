package models

// Articulo is the catalog entity served by the articulos API.
type Articulo struct {
	ID     int64   `json:"id"`
	Nombre string  `json:"nombre"`
	Precio float64 `json:"precio"`
}

// ArticuloInput is the body sent on create and update. ID is only read from
// the path or form and never serialised.
type ArticuloInput struct {
	ID     *int64  `json:"-"`
	Nombre string  `json:"nombre" validate:"required,articulo_nombre,min=2,max=100"`
	Precio float64 `json:"precio" validate:"finite,gt=0"`
}

func (in *ArticuloInput) IsCreate() bool {
	return in.ID == nil
}
