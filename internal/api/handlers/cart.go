package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/tienda/internal/api/middleware"
	"github.com/aaravmahajanofficial/tienda/internal/cart"
	"github.com/aaravmahajanofficial/tienda/internal/models"
	"github.com/aaravmahajanofficial/tienda/internal/utils"
	"github.com/aaravmahajanofficial/tienda/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	carts     *cart.Engine
	validator *validator.Validate
}

func NewCartHandler(carts *cart.Engine, validate *validator.Validate) *CartHandler {
	return &CartHandler{carts: carts, validator: validate}
}

// GetCart godoc
// @Summary Cart of the session
// @Tags cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session"
// @Success 200 {object} response.APIResponse{data=models.CartSummary}
// @Router /store/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.carts.Summary(r.Context(), middleware.SessionFromRequest(r)))
	}
}

// AddItem godoc
// @Summary Add a product, or one more of it
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session"
// @Param item body models.AddToCartRequest true "Product as displayed"
// @Success 200 {object} response.APIResponse{data=models.CartSummary}
// @Failure 400 {object} response.APIResponse
// @Router /store/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.AddToCartRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		summary, notice := h.carts.Add(r.Context(), middleware.SessionFromRequest(r), models.Articulo{
			ID:     req.ID,
			Nombre: req.Nombre,
			Precio: req.Precio,
		})

		response.SuccessWithNotice(w, http.StatusOK, summary, notice)
	}
}

// UpdateQuantity godoc
// @Summary Change a line's quantity by one
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session"
// @Param id path int true "Product ID"
// @Param change body models.ChangeQuantityRequest true "delta of 1 or -1"
// @Success 200 {object} response.APIResponse{data=models.CartSummary}
// @Router /store/cart/items/{id} [patch]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.ChangeQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		summary, notice := h.carts.ChangeQuantity(r.Context(), middleware.SessionFromRequest(r), id, req.Delta)

		response.SuccessWithNotice(w, http.StatusOK, summary, notice)
	}
}

// RemoveItem godoc
// @Summary Remove a line
// @Tags cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session"
// @Param id path int true "Product ID"
// @Success 200 {object} response.APIResponse{data=models.CartSummary}
// @Router /store/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		summary, notice := h.carts.Remove(r.Context(), middleware.SessionFromRequest(r), id)

		response.SuccessWithNotice(w, http.StatusOK, summary, notice)
	}
}

// Clear godoc
// @Summary Empty the cart
// @Tags cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session"
// @Param confirm query bool false "User accepted the prompt"
// @Success 200 {object} response.APIResponse{data=models.CartSummary}
// @Failure 400 {object} response.APIResponse
// @Router /store/cart [delete]
func (h *CartHandler) Clear() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		summary, notice, err := h.carts.Clear(r.Context(), middleware.SessionFromRequest(r), utils.Confirmed(r))
		if err != nil {
			response.ErrorWithData(w, err, summary)
			return
		}

		response.SuccessWithNotice(w, http.StatusOK, summary, notice)
	}
}
