package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// QuoteTotal counts pricing quotes served, labelled by location.
	QuoteTotal *prometheus.CounterVec
	// CheckoutTotal counts checkout submissions by outcome.
	CheckoutTotal *prometheus.CounterVec
	// ValidationFailureTotal counts individual validation messages by stage.
	ValidationFailureTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific
// Prometheus collectors. Safe to call more than once.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		QuoteTotal = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_quote_total",
			Help:      "Count of cart pricing quotes served.",
		}, []string{"location"}))
		CheckoutTotal = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_total",
			Help:      "Count of checkout submissions by outcome.",
		}, []string{"result"}))
		ValidationFailureTotal = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Count of validation error messages by validation stage.",
		}, []string{"stage"}))
	})
}
