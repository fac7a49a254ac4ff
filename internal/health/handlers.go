package health

import (
	"encoding/json"
	"net/http"
)

// Checker reports whether the static catalogs the service depends on are
// usable. The rate table implements this.
type Checker interface {
	Healthy() error
}

// Handler exposes HTTP handlers for health endpoints.
type Handler struct {
	Checker Checker
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness based on the catalog probe. With no external
// dependencies this only catches a misconfigured rate table.
func (h Handler) Ready(w http.ResponseWriter, _ *http.Request) {
	status := map[string]string{"rates": "ok"}
	code := http.StatusOK
	if h.Checker == nil {
		status["rates"] = "not configured"
		code = http.StatusServiceUnavailable
	} else if err := h.Checker.Healthy(); err != nil {
		status["rates"] = err.Error()
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(status)
}
