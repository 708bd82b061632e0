package pricing

import (
	"strconv"
	"strings"
)

// Range is a parsed bucket value.
type Range struct {
	Min     float64
	Max     float64
	OpenEnd bool
}

// ParseRange reads "min-max" or "min+". ok is false for anything else,
// including the empty "all prices" selection.
func ParseRange(valor string) (Range, bool) {

	valor = strings.TrimSpace(valor)

	if lo, hi, found := strings.Cut(valor, "-"); found {
		minimo, errMin := strconv.ParseFloat(lo, 64)
		maximo, errMax := strconv.ParseFloat(hi, 64)
		if errMin != nil || errMax != nil {
			return Range{}, false
		}
		return Range{Min: minimo, Max: maximo}, true
	}

	if lo, found := strings.CutSuffix(valor, "+"); found {
		minimo, err := strconv.ParseFloat(lo, 64)
		if err != nil {
			return Range{}, false
		}
		return Range{Min: minimo, OpenEnd: true}, true
	}

	return Range{}, false
}

// Contains is inclusive on both ends for closed ranges and exclusive on the
// lower end for open ones.
func (r Range) Contains(precio float64) bool {
	if r.OpenEnd {
		return precio > r.Min
	}
	return precio >= r.Min && precio <= r.Max
}
