package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/tienda/internal/api/middleware"
	"github.com/aaravmahajanofficial/tienda/internal/models"
	service "github.com/aaravmahajanofficial/tienda/internal/services"
	"github.com/aaravmahajanofficial/tienda/internal/utils"
	"github.com/aaravmahajanofficial/tienda/internal/utils/response"
)

type CheckoutHandler struct {
	checkout service.CheckoutService
}

func NewCheckoutHandler(checkout service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Summary godoc
// @Summary Review the order totals with shipping
// @Tags checkout
// @Produce json
// @Param X-Cart-Session header string false "Cart session"
// @Success 200 {object} response.APIResponse{data=models.CheckoutSummary}
// @Failure 400 {object} response.APIResponse
// @Router /store/checkout/summary [post]
func (h *CheckoutHandler) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		summary, err := h.checkout.Review(r.Context(), middleware.SessionFromRequest(r))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

// Confirm godoc
// @Summary Place the order
// @Description Waits out the processing delay, charges the order and empties the cart.
// @Tags checkout
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session"
// @Param order body models.CheckoutRequest true "Customer and payment method"
// @Success 201 {object} response.APIResponse{data=models.OrderConfirmation}
// @Failure 400 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /store/checkout/confirm [post]
func (h *CheckoutHandler) Confirm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, nil) {
			return
		}

		confirmation, notice, err := h.checkout.Confirm(r.Context(), middleware.SessionFromRequest(r), req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.SuccessWithNotice(w, http.StatusCreated, confirmation, notice)
	}
}
