package models

// PriceBucket is a price filter option. Valor is either "min-max" or "min+".
type PriceBucket struct {
	Valor string `json:"valor"`
	Texto string `json:"texto"`
}
