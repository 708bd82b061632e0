// Package pricing derives the storefront price filter options from the
// current catalog and evaluates a selected option against a price.
package pricing

import (
	"fmt"
	"math"
	"slices"

	"github.com/aaravmahajanofficial/tienda/internal/models"
)

const (
	// At or below either threshold the distribution is too thin for quartiles.
	minPricesForQuartiles = 4
	minSpreadForQuartiles = 100
)

// Buckets returns the price filter options for prices. The input does not
// need to be sorted and is not modified.
func Buckets(prices []float64) []models.PriceBucket {

	if len(prices) == 0 {
		return nil
	}

	sorted := slices.Clone(prices)
	slices.Sort(sorted)

	minimo := int(math.Floor(sorted[0]))
	maximo := int(math.Ceil(sorted[len(sorted)-1]))

	if len(sorted) < minPricesForQuartiles || maximo-minimo <= minSpreadForQuartiles {
		return simpleBuckets(maximo)
	}

	return quartileBuckets(sorted, maximo)
}

func simpleBuckets(maximo int) []models.PriceBucket {
	mitad := int(math.Floor(float64(maximo) / 2))

	return []models.PriceBucket{
		hasta(mitad),
		between(mitad, maximo),
		open(maximo),
	}
}

func quartileBuckets(sorted []float64, maximo int) []models.PriceBucket {

	breakpoints := []int{
		0,
		floorTen(Quartile(sorted, 0.25)),
		floorTen(Quartile(sorted, 0.5)),
		floorTen(Quartile(sorted, 0.75)),
		ceilTen(float64(maximo)),
	}

	buckets := make([]models.PriceBucket, 0, len(breakpoints))

	for i := 1; i < len(breakpoints); i++ {
		lo, hi := breakpoints[i-1], breakpoints[i]
		switch {
		case hi <= lo: // zero-width
		case i == 1:
			buckets = append(buckets, hasta(hi))
		default:
			buckets = append(buckets, between(lo, hi))
		}
	}

	return append(buckets, open(breakpoints[len(breakpoints)-1]))
}

// Quartile interpolates linearly between the order statistics around
// q*(n-1) of an ascending slice.
func Quartile(sorted []float64, q float64) float64 {

	if len(sorted) == 0 {
		return 0
	}

	indice := float64(len(sorted)-1) * q
	inferior := int(math.Floor(indice))
	superior := int(math.Ceil(indice))

	if inferior == superior {
		return sorted[inferior]
	}

	return sorted[inferior]*(float64(superior)-indice) + sorted[superior]*(indice-float64(inferior))
}

func floorTen(v float64) int {
	return int(math.Floor(v/10)) * 10
}

func ceilTen(v float64) int {
	return int(math.Ceil(v/10)) * 10
}

func hasta(hi int) models.PriceBucket {
	return models.PriceBucket{
		Valor: fmt.Sprintf("0-%d", hi),
		Texto: fmt.Sprintf("Hasta $%d", hi),
	}
}

func between(lo, hi int) models.PriceBucket {
	return models.PriceBucket{
		Valor: fmt.Sprintf("%d-%d", lo, hi),
		Texto: fmt.Sprintf("$%d - $%d", lo, hi),
	}
}

func open(lo int) models.PriceBucket {
	return models.PriceBucket{
		Valor: fmt.Sprintf("%d+", lo),
		Texto: fmt.Sprintf("Más de $%d", lo),
	}
}
