package rates

import (
	"net/http"

	"github.com/khadar-dev/backend-suuq/internal/common"
)

// Handler exposes the read-only rate catalogs over HTTP.
type Handler struct {
	Table *Table
}

// ShippingOptions lists the shipping options for the location in the
// query string. Unknown or missing locations get the international list.
func (h *Handler) ShippingOptions(w http.ResponseWriter, r *http.Request) {
	if h.Table == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "rate table not configured", nil)
		return
	}
	loc := Location(r.URL.Query().Get("location"))
	common.JSON(w, http.StatusOK, common.Data(h.Table.ShippingOptionsFor(loc)))
}

// PaymentMethods lists the payment-method catalog including fee rates
// and required-field schemas so the form can render itself.
func (h *Handler) PaymentMethods(w http.ResponseWriter, _ *http.Request) {
	if h.Table == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "rate table not configured", nil)
		return
	}
	common.JSON(w, http.StatusOK, common.Data(h.Table.PaymentMethods()))
}
