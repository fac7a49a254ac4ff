package main

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/khadar-dev/backend-suuq/internal/cart"
	"github.com/khadar-dev/backend-suuq/internal/checkout"
	"github.com/khadar-dev/backend-suuq/internal/config"
	"github.com/khadar-dev/backend-suuq/internal/health"
	"github.com/khadar-dev/backend-suuq/internal/obs"
	"github.com/khadar-dev/backend-suuq/internal/order"
	"github.com/khadar-dev/backend-suuq/internal/pricing"
	"github.com/khadar-dev/backend-suuq/internal/rates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	metricsEnabled := envBool("OBS_ENABLE_PROMETHEUS", true)
	obs.MustRegisterDomainMetrics(cfg.MetricsNamespace, nil)

	table := rates.Default()
	engine := &pricing.Engine{
		Rates:                 table,
		FreeShippingThreshold: pricing.Money(cfg.FreeShippingThreshold),
		BulkDiscountThreshold: pricing.Money(cfg.BulkDiscountThreshold),
	}
	cartValidator := &cart.Validator{
		Engine:       engine,
		Inventory:    cart.StaticLimit{Max: cfg.InventoryMaxQty},
		MinimumOrder: pricing.Money(cfg.MinimumOrder),
	}
	fieldValidator := checkout.NewValidator(table)
	builder := &order.Builder{Prefix: cfg.OrderNumberPrefix}

	cartHandler := &cart.Handler{Engine: engine, Validator: cartValidator}
	checkoutHandler := &checkout.Handler{Svc: &checkout.Service{
		Engine:  engine,
		Cart:    cartValidator,
		Fields:  fieldValidator,
		Builder: builder,
		Rates:   table,
	}}
	ratesHandler := &rates.Handler{Table: table}

	var httpMetrics *obs.HTTPMetrics
	if metricsEnabled {
		buckets := obs.ParseBucketsCSV(envOrDefault("OBS_METRICS_BUCKETS_MS", ""))
		httpMetrics = obs.NewHTTPMetrics(cfg.MetricsNamespace, buckets, nil)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(obs.RoutePatternMiddleware)
	if metricsEnabled && httpMetrics != nil {
		r.Use(obs.HTTPObs{Metrics: httpMetrics}.Middleware)
	}
	r.Use(obs.RequestLogger{Logger: logger}.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins(cfg),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	healthHandler := health.Handler{Checker: table}
	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)

	r.Route("/api/v1", func(v chi.Router) {
		v.Post("/cart/quote", cartHandler.Quote)
		v.Post("/cart/validate", cartHandler.Validate)
		v.Get("/shipping/options", ratesHandler.ShippingOptions)
		v.Get("/payment/methods", ratesHandler.PaymentMethods)
		v.Post("/checkout", checkoutHandler.Checkout)
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: r,
	}

	logger.Info().Str("addr", srv.Addr).Msg("server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server exited unexpectedly")
	}
}

func allowedOrigins(cfg *config.Config) []string {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return []string{"*"}
	}
	return cfg.CORSAllowedOrigins
}

func envOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		trimmed := strings.TrimSpace(val)
		if trimmed != "" {
			return trimmed
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "1", "t", "true", "yes", "on":
			return true
		case "0", "f", "false", "no", "off":
			return false
		}
	}
	return fallback
}
