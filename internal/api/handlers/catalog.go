package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/tienda/internal/api/middleware"
	"github.com/aaravmahajanofficial/tienda/internal/models"
	service "github.com/aaravmahajanofficial/tienda/internal/services"
	"github.com/aaravmahajanofficial/tienda/internal/utils"
	"github.com/aaravmahajanofficial/tienda/internal/utils/response"
)

type CatalogHandler struct {
	catalog service.CatalogService
}

func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List godoc
// @Summary List articulos
// @Tags admin
// @Produce json
// @Success 200 {object} response.APIResponse{data=[]models.Articulo}
// @Failure 502 {object} response.APIResponse
// @Failure 503 {object} response.APIResponse
// @Router /admin/articulos [get]
func (h *CatalogHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		items, err := h.catalog.List(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, items)
	}
}

// Get godoc
// @Summary Load one articulo for editing
// @Tags admin
// @Produce json
// @Param id path int true "Articulo ID"
// @Success 200 {object} response.APIResponse{data=models.Articulo}
// @Failure 404 {object} response.APIResponse
// @Router /admin/articulos/{id} [get]
func (h *CatalogHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		item, err := h.catalog.Edit(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, item)
	}
}

// Create godoc
// @Summary Create an articulo
// @Tags admin
// @Accept json
// @Produce json
// @Param articulo body models.ArticuloInput true "Nombre and precio"
// @Success 201 {object} response.APIResponse{data=[]models.Articulo}
// @Failure 400 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /admin/articulos [post]
func (h *CatalogHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var in models.ArticuloInput
		if !utils.ParseAndValidate(r, w, &in, nil) {
			return
		}

		h.save(w, r, in, http.StatusCreated)
	}
}

// Update godoc
// @Summary Update an articulo
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Articulo ID"
// @Param articulo body models.ArticuloInput true "Nombre and precio"
// @Success 200 {object} response.APIResponse{data=[]models.Articulo}
// @Failure 400 {object} response.APIResponse
// @Router /admin/articulos/{id} [put]
func (h *CatalogHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var in models.ArticuloInput
		if !utils.ParseAndValidate(r, w, &in, nil) {
			return
		}
		in.ID = &id

		h.save(w, r, in, http.StatusOK)
	}
}

func (h *CatalogHandler) save(w http.ResponseWriter, r *http.Request, in models.ArticuloInput, status int) {

	result, err := h.catalog.Save(r.Context(), in)
	if err != nil {
		response.Error(w, err)
		return
	}

	middleware.LoggerFromContext(r.Context()).Info("Articulo saved via admin API", slog.String("nombre", in.Nombre))
	response.SuccessWithNotice(w, status, result.Articulos, result.Notice)
}

// Delete godoc
// @Summary Delete an articulo
// @Description Without confirm=true nothing is deleted and CONFIRMATION_REQUIRED is returned.
// @Tags admin
// @Produce json
// @Param id path int true "Articulo ID"
// @Param confirm query bool false "User accepted the prompt"
// @Success 200 {object} response.APIResponse{data=[]models.Articulo}
// @Failure 400 {object} response.APIResponse
// @Router /admin/articulos/{id} [delete]
func (h *CatalogHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		result, err := h.catalog.Delete(r.Context(), id, service.Confirmed(utils.Confirmed(r)))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.SuccessWithNotice(w, http.StatusOK, result.Articulos, result.Notice)
	}
}
