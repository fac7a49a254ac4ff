package order_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/khadar-dev/backend-suuq/internal/order"
	"github.com/khadar-dev/backend-suuq/internal/pricing"
	"github.com/khadar-dev/backend-suuq/internal/rates"
)

func fixedClock() func() time.Time {
	at := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestDeliveryEstimate(t *testing.T) {
	b := &order.Builder{Now: fixedClock()}

	opt := rates.ShippingOption{EstimatedDays: "3-5 business days"}
	require.Equal(t, "2025-03-13", b.DeliveryEstimate(opt))

	opt.EstimatedDays = "1-2 business days"
	require.Equal(t, "2025-03-11", b.DeliveryEstimate(opt))
}

func TestDeliveryEstimateUnparsableRange(t *testing.T) {
	b := &order.Builder{Now: fixedClock()}
	opt := rates.ShippingOption{EstimatedDays: "soon"}
	require.Equal(t, "2025-03-17", b.DeliveryEstimate(opt), "fallback is a week out")
}

func TestOrderNumberFormatAndUniqueness(t *testing.T) {
	b := order.NewBuilder()
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		num := b.OrderNumber()
		require.True(t, strings.HasPrefix(num, "SUUQ-"), "got %q", num)
		_, dup := seen[num]
		require.False(t, dup, "order number %q repeated", num)
		seen[num] = struct{}{}
	}
}

func TestBuild(t *testing.T) {
	b := &order.Builder{Now: fixedClock(), Prefix: "SUUQ"}

	items := []pricing.Item{
		{ProductID: "p1", Title: "Widget", UnitPrice: 2500, Qty: 3},
		{ProductID: "p2", Title: "Gadget", UnitPrice: 1000, Qty: 1},
	}
	contact := order.Contact{Email: "amina@example.com", Phone: "+252612345678"}
	shipping := order.Address{Address: "Taleex Street, Building 4", City: "Mogadishu", PostalCode: "00100", Country: "Somalia"}
	payment := order.Payment{Method: rates.MethodCashOnDelivery}
	opt := rates.ShippingOption{ID: "standard", EstimatedDays: "3-5 business days"}
	totals := pricing.Totals{Subtotal: 8500, Shipping: 500, Tax: 425, Total: 9425}

	summary := b.Build(items, contact, shipping, payment, opt, totals)

	require.Equal(t, order.StatusPending, summary.Status)
	require.Equal(t, contact, summary.Contact)
	require.Equal(t, shipping, summary.Shipping)
	require.Equal(t, payment, summary.Payment)
	require.Equal(t, totals, summary.Totals)
	require.Equal(t, "2025-03-13", summary.EstimatedDeliveryDate)
	require.Equal(t, fixedClock()(), summary.Timestamp)

	require.Len(t, summary.Items, 2)
	require.Equal(t, pricing.Money(7500), summary.Items[0].LineTotal)
	require.Equal(t, pricing.Money(1000), summary.Items[1].LineTotal)
	require.Equal(t, "Widget", summary.Items[0].Title)
}
