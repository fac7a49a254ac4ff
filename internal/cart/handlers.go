package cart

import (
	"encoding/json"
	"net/http"

	"github.com/khadar-dev/backend-suuq/internal/common"
	"github.com/khadar-dev/backend-suuq/internal/obs"
	"github.com/khadar-dev/backend-suuq/internal/pricing"
	"github.com/khadar-dev/backend-suuq/internal/rates"
)

// Handler wires the pricing engine and cart validator to HTTP.
type Handler struct {
	Engine    *pricing.Engine
	Validator *Validator
}

// QuoteRequest is the payload for cart pricing previews. Location,
// promo code and payment method are all optional; the engine resolves
// unknown values through the documented fallbacks.
type QuoteRequest struct {
	Items         []pricing.Item `json:"items"`
	Location      rates.Location `json:"location"`
	PromoCode     string         `json:"promoCode"`
	PaymentMethod rates.MethodID `json:"paymentMethod"`
}

// Quote returns the full pricing breakdown plus cart-summary figures.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	if h.Engine == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "pricing engine not configured", nil)
		return
	}
	var payload QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	summary := h.Engine.CartSummary(payload.Items, payload.Location, payload.PromoCode)
	if payload.PaymentMethod != "" {
		summary.Totals = h.Engine.ComputeTotal(payload.Items, payload.Location, payload.PromoCode, payload.PaymentMethod)
		summary.HasFreeShipping = summary.Totals.Shipping == 0
	}
	if obs.QuoteTotal != nil {
		obs.QuoteTotal.WithLabelValues(string(payload.Location)).Inc()
	}
	common.JSON(w, http.StatusOK, common.Data(summary))
}

// Validate runs the cart validator and reports every violation at once.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	if h.Validator == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "cart validator not configured", nil)
		return
	}
	var payload struct {
		Items []pricing.Item `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	result := h.Validator.Validate(payload.Items)
	if !result.Valid && obs.ValidationFailureTotal != nil {
		obs.ValidationFailureTotal.WithLabelValues("cart").Add(float64(len(result.Errors)))
	}
	common.JSON(w, http.StatusOK, common.Data(result))
}
