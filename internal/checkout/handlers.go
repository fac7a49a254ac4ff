package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/khadar-dev/backend-suuq/internal/common"
	"github.com/khadar-dev/backend-suuq/internal/obs"
)

type Handler struct {
	Svc *Service
}

// Checkout accepts a full submission, validates it and returns the built
// order summary. Validation failures surface as 422 with every error.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "checkout service not configured", nil)
		return
	}
	var payload Input
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	summary, err := h.Svc.Create(payload)
	if err != nil {
		if obs.CheckoutTotal != nil {
			obs.CheckoutTotal.WithLabelValues("rejected").Inc()
		}
		h.writeError(w, err)
		return
	}
	if obs.CheckoutTotal != nil {
		obs.CheckoutTotal.WithLabelValues("accepted").Inc()
	}
	common.JSON(w, http.StatusCreated, common.Data(summary))
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if err == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unknown error", nil)
		return
	}
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusBadRequest
		}
		code := appErr.Code
		if code == "" {
			code = "BAD_REQUEST"
		}
		common.JSONError(w, status, code, appErr.Message, appErr.Details)
		return
	}
	common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
}
