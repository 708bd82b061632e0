package handlers

import "net/http"

// Handlers groups everything mounted under /api/v1.
type Handlers struct {
	Catalog    *CatalogHandler
	Storefront *StorefrontHandler
	Cart       *CartHandler
	Checkout   *CheckoutHandler
}

func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/admin/articulos", h.Catalog.List())
	mux.HandleFunc("POST /api/v1/admin/articulos", h.Catalog.Create())
	mux.HandleFunc("GET /api/v1/admin/articulos/{id}", h.Catalog.Get())
	mux.HandleFunc("PUT /api/v1/admin/articulos/{id}", h.Catalog.Update())
	mux.HandleFunc("DELETE /api/v1/admin/articulos/{id}", h.Catalog.Delete())

	mux.HandleFunc("GET /api/v1/store/products", h.Storefront.Products())
	mux.HandleFunc("GET /api/v1/store/buckets", h.Storefront.Buckets())

	mux.HandleFunc("GET /api/v1/store/cart", h.Cart.GetCart())
	mux.HandleFunc("DELETE /api/v1/store/cart", h.Cart.Clear())
	mux.HandleFunc("POST /api/v1/store/cart/items", h.Cart.AddItem())
	mux.HandleFunc("PATCH /api/v1/store/cart/items/{id}", h.Cart.UpdateQuantity())
	mux.HandleFunc("DELETE /api/v1/store/cart/items/{id}", h.Cart.RemoveItem())

	mux.HandleFunc("POST /api/v1/store/checkout/summary", h.Checkout.Summary())
	mux.HandleFunc("POST /api/v1/store/checkout/confirm", h.Checkout.Confirm())
}
