package pricing

import (
	"testing"

	"github.com/khadar-dev/backend-suuq/internal/rates"
)

func testEngine() *Engine {
	return NewEngine(rates.Default())
}

func TestSubtotalAdditivity(t *testing.T) {
	e := testEngine()
	items := []Item{
		{ProductID: "p1", UnitPrice: 1299, Qty: 2},
		{ProductID: "p2", UnitPrice: 500, Qty: 1},
	}
	if got := e.Subtotal(items); got != 3098 {
		t.Fatalf("expected subtotal 3098, got %d", got)
	}
}

func TestSubtotalEmptyAndZeroQty(t *testing.T) {
	e := testEngine()
	if got := e.Subtotal(nil); got != 0 {
		t.Fatalf("expected 0 for empty cart, got %d", got)
	}
	items := []Item{{ProductID: "p1", UnitPrice: 1000, Qty: 0}}
	if got := e.Subtotal(items); got != 0 {
		t.Fatalf("expected zero-qty line to contribute nothing, got %d", got)
	}
}

func TestFreeShippingThreshold(t *testing.T) {
	e := testEngine()
	if got := e.ShippingCost(4999, rates.LocationSomalia); got != 500 {
		t.Fatalf("expected shipping 500 below threshold, got %d", got)
	}
	for _, loc := range []rates.Location{rates.LocationSomalia, rates.LocationKenya, rates.LocationEthiopia, rates.LocationInternational, "Atlantis"} {
		if got := e.ShippingCost(5000, loc); got != 0 {
			t.Fatalf("expected free shipping at threshold for %s, got %d", loc, got)
		}
	}
}

func TestUnknownLocationFallsBackToInternational(t *testing.T) {
	e := testEngine()
	if got := e.ShippingCost(100, "Atlantis"); got != 1500 {
		t.Fatalf("expected international shipping rate 1500, got %d", got)
	}
	if got := e.Tax(1000, "Atlantis"); got != 100 {
		t.Fatalf("expected default 10%% tax, got %d", got)
	}
}

func TestFixedDiscountClampedAtSubtotal(t *testing.T) {
	e := testEngine()
	d := e.ApplyPromo(500, "NEWUSER")
	if d.Amount != 500 {
		t.Fatalf("expected discount clamped to 500, got %d", d.Amount)
	}
	if d.Kind != rates.PromoFixed {
		t.Fatalf("expected fixed kind, got %s", d.Kind)
	}
}

func TestUnknownPromoIsNoop(t *testing.T) {
	e := testEngine()
	d := e.ApplyPromo(10000, "BOGUS")
	if d.Amount != 0 || d.Kind != rates.PromoFixed || d.Description != "" {
		t.Fatalf("expected zero fixed discount with empty description, got %+v", d)
	}
}

func TestPromoCodeIsCaseSensitive(t *testing.T) {
	e := testEngine()
	if d := e.ApplyPromo(10000, "welcome10"); d.Amount != 0 {
		t.Fatalf("expected lowercase code to miss, got %d", d.Amount)
	}
}

func TestPaymentFeeUnknownMethod(t *testing.T) {
	e := testEngine()
	if got := e.PaymentFee(10000, "carrier_pigeon"); got != 0 {
		t.Fatalf("expected zero fee for unknown method, got %d", got)
	}
}

func TestTotalNeverNegative(t *testing.T) {
	table := rates.Default()
	// Percentage discounts are not clamped at the subtotal, so an
	// oversized rate is the one path where the clamp at zero can fire.
	table.Promotions["MEGA"] = rates.Promotion{Code: "MEGA", Kind: rates.PromoPercentage, Percent: 10.0, Description: "test promo"}
	e := NewEngine(table)
	items := []Item{{ProductID: "p1", UnitPrice: 100, Qty: 1}}
	totals := e.ComputeTotal(items, rates.LocationSomalia, "MEGA", "")
	if totals.Total != 0 {
		t.Fatalf("expected total clamped to 0, got %d", totals.Total)
	}
}

func TestComputeTotalRoundTrip(t *testing.T) {
	e := testEngine()
	items := []Item{{ProductID: "p1", Title: "Widget", UnitPrice: 2500, Qty: 3}}
	totals := e.ComputeTotal(items, rates.LocationSomalia, "WELCOME10", rates.MethodCashOnDelivery)

	if totals.Subtotal != 7500 {
		t.Fatalf("expected subtotal 7500, got %d", totals.Subtotal)
	}
	if totals.Shipping != 0 {
		t.Fatalf("expected free shipping above threshold, got %d", totals.Shipping)
	}
	if totals.Tax != 375 {
		t.Fatalf("expected tax 375, got %d", totals.Tax)
	}
	if totals.Discount != 750 {
		t.Fatalf("expected discount 750, got %d", totals.Discount)
	}
	if totals.PaymentFees != 375 {
		t.Fatalf("expected payment fee 375, got %d", totals.PaymentFees)
	}
	if totals.Total != 7500 {
		t.Fatalf("expected total 7500, got %d", totals.Total)
	}
	if totals.Promo.Description != "10% off your first order" {
		t.Fatalf("unexpected promo description %q", totals.Promo.Description)
	}
}

func TestComputeTotalPaidShipping(t *testing.T) {
	e := testEngine()
	items := []Item{{ProductID: "p1", Title: "Widget", UnitPrice: 2500, Qty: 1}}
	totals := e.ComputeTotal(items, rates.LocationSomalia, "WELCOME10", rates.MethodCashOnDelivery)

	// 2500 + 500 shipping + 125 tax + 125 fee - 250 discount
	if totals.Shipping != 500 {
		t.Fatalf("expected shipping 500, got %d", totals.Shipping)
	}
	if totals.Total != 3000 {
		t.Fatalf("expected total 3000, got %d", totals.Total)
	}
}

func TestCartSummary(t *testing.T) {
	e := testEngine()
	items := []Item{
		{ProductID: "p1", UnitPrice: 2000, Qty: 2},
		{ProductID: "p2", UnitPrice: 500, Qty: 1},
	}
	s := e.CartSummary(items, rates.LocationSomalia, "")
	if s.ItemCount != 3 {
		t.Fatalf("expected item count 3, got %d", s.ItemCount)
	}
	if s.HasFreeShipping {
		t.Fatalf("expected paid shipping at subtotal %d", s.Subtotal)
	}
	if s.FreeShippingRemaining != 500 {
		t.Fatalf("expected 500 remaining to free shipping, got %d", s.FreeShippingRemaining)
	}
	if s.EligibleForBulkDiscount {
		t.Fatalf("expected no bulk eligibility at subtotal %d", s.Subtotal)
	}

	bulk := e.CartSummary([]Item{{ProductID: "p1", UnitPrice: 5000, Qty: 2}}, rates.LocationSomalia, "")
	if !bulk.HasFreeShipping || bulk.FreeShippingRemaining != 0 || !bulk.EligibleForBulkDiscount {
		t.Fatalf("expected free shipping and bulk eligibility, got %+v", bulk)
	}
}

func TestRoundHalfAway(t *testing.T) {
	cases := []struct {
		in   float64
		want Money
	}{
		{0.4, 0},
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{-0.5, -1},
		{-1.4, -1},
	}
	for _, tc := range cases {
		if got := roundHalfAway(tc.in); got != tc.want {
			t.Fatalf("roundHalfAway(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMoneyDecimal(t *testing.T) {
	if got := Money(1050).Decimal(); got != "10.50" {
		t.Fatalf("expected 10.50, got %s", got)
	}
	if got := Money(5).Decimal(); got != "0.05" {
		t.Fatalf("expected 0.05, got %s", got)
	}
}
