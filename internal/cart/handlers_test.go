package cart_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khadar-dev/backend-suuq/internal/cart"
	"github.com/khadar-dev/backend-suuq/internal/pricing"
	"github.com/khadar-dev/backend-suuq/internal/rates"
)

func newHandler() *cart.Handler {
	engine := pricing.NewEngine(rates.Default())
	return &cart.Handler{Engine: engine, Validator: cart.NewValidator(engine)}
}

func post(t *testing.T, handler http.HandlerFunc, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestQuoteEndpoint(t *testing.T) {
	h := newHandler()
	rec := post(t, h.Quote, "/api/v1/cart/quote", cart.QuoteRequest{
		Items:         []pricing.Item{{ProductID: "p1", Title: "Widget", UnitPrice: 2500, Qty: 3}},
		Location:      rates.LocationSomalia,
		PromoCode:     "WELCOME10",
		PaymentMethod: rates.MethodCashOnDelivery,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data pricing.Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, pricing.Money(7500), resp.Data.Subtotal)
	require.Equal(t, pricing.Money(7500), resp.Data.Total)
	require.Equal(t, 3, resp.Data.ItemCount)
	require.True(t, resp.Data.HasFreeShipping)
	require.Equal(t, pricing.Money(0), resp.Data.FreeShippingRemaining)
}

func TestQuoteEndpointEmptyCart(t *testing.T) {
	h := newHandler()
	rec := post(t, h.Quote, "/api/v1/cart/quote", cart.QuoteRequest{Location: rates.LocationKenya})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data pricing.Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, pricing.Money(0), resp.Data.Subtotal)
	require.Equal(t, pricing.Money(5000), resp.Data.FreeShippingRemaining)
}

func TestValidateEndpoint(t *testing.T) {
	h := newHandler()
	rec := post(t, h.Validate, "/api/v1/cart/validate", map[string]any{
		"items": []pricing.Item{{ProductID: "p1", Title: "Sticker", UnitPrice: 300, Qty: 1}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data cart.Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Data.Valid)
	require.Contains(t, resp.Data.Errors, "Minimum order value is $10")
}

func TestQuoteBadPayload(t *testing.T) {
	h := newHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/quote", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	h.Quote(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
