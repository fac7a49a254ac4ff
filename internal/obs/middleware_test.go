package obs_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/khadar-dev/backend-suuq/internal/obs"
)

func TestHTTPObsRecordsRouteLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := obs.NewHTTPMetrics("suuq_test", nil, reg)

	r := chi.NewRouter()
	r.Use(obs.RoutePatternMiddleware)
	r.Use(obs.HTTPObs{Metrics: metrics}.Middleware)
	r.Get("/api/v1/payment/methods", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/payment/methods", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	count := testutil.ToFloat64(metrics.ReqTotal.WithLabelValues(http.MethodGet, "/api/v1/payment/methods", "200"))
	require.Equal(t, float64(1), count)
}

func TestStatusRecorder(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := obs.NewStatusRecorder(rec)
	sr.WriteHeader(http.StatusTeapot)
	n, err := sr.Write([]byte("short and stout"))
	require.NoError(t, err)
	require.Equal(t, 15, n)
	require.Equal(t, http.StatusTeapot, sr.Status())
	require.Equal(t, int64(15), sr.BytesWritten())
}

func TestParseBucketsCSV(t *testing.T) {
	require.Nil(t, obs.ParseBucketsCSV(""))
	require.Equal(t, []float64{5, 50, 500}, obs.ParseBucketsCSV("5, 50,500"))
	require.Equal(t, []float64{10}, obs.ParseBucketsCSV("10, nope, -3"))
}
