package models

// CatalogState tells the storefront which panel to show.
type CatalogState string

const (
	CatalogLoaded          CatalogState = "loaded"
	CatalogEmpty           CatalogState = "empty"
	CatalogConnectionError CatalogState = "connection_error"
	CatalogNoMatches       CatalogState = "no_matches"
)

// StoreCatalog is the filtered product grid plus the filter options built
// from the unfiltered list.
type StoreCatalog struct {
	Estado    CatalogState  `json:"estado"`
	Productos []Articulo    `json:"productos"`
	Rangos    []PriceBucket `json:"rangos"`
	Total     int           `json:"total"`
}

// CatalogResult is what an admin write returns: the refreshed list when it
// could be loaded.
type CatalogResult struct {
	Articulos []Articulo `json:"articulos"`
	Notice    *Notice    `json:"-"`
}
