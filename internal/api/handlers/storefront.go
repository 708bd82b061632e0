package handlers

import (
	"net/http"
	"strconv"

	service "github.com/aaravmahajanofficial/tienda/internal/services"
	"github.com/aaravmahajanofficial/tienda/internal/utils/response"
)

type StorefrontHandler struct {
	store service.StorefrontService
}

func NewStorefrontHandler(store service.StorefrontService) *StorefrontHandler {
	return &StorefrontHandler{store: store}
}

// Products godoc
// @Summary Filter the cached catalog
// @Description Filters the cached catalog. Upstream is called on the first request or when reload is true. Price buckets are computed from the unfiltered list.
// @Tags store
// @Produce json
// @Param q query string false "Case-insensitive name search"
// @Param precio query string false "Bucket value, min-max or min+"
// @Param reload query bool false "Reload the catalog from upstream"
// @Success 200 {object} response.APIResponse{data=models.StoreCatalog}
// @Failure 503 {object} response.APIResponse{data=models.StoreCatalog}
// @Router /store/products [get]
func (h *StorefrontHandler) Products() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		query := r.URL.Query()

		reload, _ := strconv.ParseBool(query.Get("reload"))

		view, err := h.store.Products(r.Context(), query.Get("q"), query.Get("precio"), reload)
		if err != nil {
			response.ErrorWithData(w, err, view)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

// Buckets godoc
// @Summary Price buckets from the last successful load
// @Tags store
// @Produce json
// @Success 200 {object} response.APIResponse{data=[]models.PriceBucket}
// @Router /store/buckets [get]
func (h *StorefrontHandler) Buckets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.store.Buckets())
	}
}
