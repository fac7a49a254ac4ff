package pricing

import (
	"fmt"
	"math"

	"github.com/khadar-dev/backend-suuq/internal/rates"
)

// Money represents a monetary value stored in minor units. Keeping it a
// distinct type stops raw ints and fractional rates from mixing silently.
type Money int64

// Decimal renders the value in major units with two decimals, e.g. 1050 -> "10.50".
// Display formatting beyond this belongs to the caller.
func (m Money) Decimal() string {
	return fmt.Sprintf("%d.%02d", m/100, abs(int64(m))%100)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Item describes a line item used for pricing calculation.
type Item struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	UnitPrice Money  `json:"unitPrice"`
	Qty       int    `json:"quantity"`
}

// Discount is the resolved outcome of a promo code. An unknown or absent
// code yields a zero fixed discount with an empty description.
type Discount struct {
	Amount      Money           `json:"amount"`
	Kind        rates.PromoKind `json:"kind"`
	Description string          `json:"description"`
}

// Breakdown echoes the inputs a Totals was computed from.
type Breakdown struct {
	Location      rates.Location `json:"location"`
	PromoCode     string         `json:"promoCode,omitempty"`
	PaymentMethod rates.MethodID `json:"paymentMethod,omitempty"`
}

// Totals aggregates the computed pricing components.
type Totals struct {
	Subtotal    Money     `json:"subtotal"`
	Shipping    Money     `json:"shipping"`
	Tax         Money     `json:"tax"`
	Discount    Money     `json:"discount"`
	PaymentFees Money     `json:"paymentFees"`
	Total       Money     `json:"total"`
	Promo       Discount  `json:"promo"`
	Breakdown   Breakdown `json:"breakdown"`
}

// Summary extends Totals with the cart-level figures the storefront shows
// next to the cart badge.
type Summary struct {
	Totals
	ItemCount               int   `json:"itemCount"`
	HasFreeShipping         bool  `json:"hasFreeShipping"`
	FreeShippingRemaining   Money `json:"freeShippingRemaining"`
	EligibleForBulkDiscount bool  `json:"isEligibleForBulkDiscount"`
}

// Engine computes cart totals from the injected rate table. All methods
// are pure; the engine never mutates the cart it is handed.
type Engine struct {
	Rates                 *rates.Table
	FreeShippingThreshold Money
	BulkDiscountThreshold Money
}

// NewEngine wires an engine with the default thresholds.
func NewEngine(table *rates.Table) *Engine {
	return &Engine{
		Rates:                 table,
		FreeShippingThreshold: 5000,
		BulkDiscountThreshold: 10000,
	}
}

// Subtotal sums unit price times quantity over all line items. Lines with
// a non-positive quantity contribute nothing; an empty cart yields zero.
func (e *Engine) Subtotal(items []Item) Money {
	var subtotal Money
	for _, it := range items {
		if it.Qty <= 0 {
			continue
		}
		subtotal += Money(it.Qty) * it.UnitPrice
	}
	return subtotal
}

// ShippingCost returns the flat shipping price for the location, waived
// entirely once the subtotal reaches the free-shipping threshold.
func (e *Engine) ShippingCost(subtotal Money, loc rates.Location) Money {
	if subtotal >= e.FreeShippingThreshold {
		return 0
	}
	return Money(e.Rates.ShippingPriceFor(loc))
}

// Tax applies the location's fractional rate to the raw subtotal.
func (e *Engine) Tax(subtotal Money, loc rates.Location) Money {
	return roundHalfAway(float64(subtotal) * e.Rates.TaxRateFor(loc))
}

// ApplyPromo resolves a promo code against the catalog. Percentage promos
// take their cut of the raw subtotal; fixed promos are clamped so the
// discount never exceeds the subtotal. Unknown codes are a no-op.
func (e *Engine) ApplyPromo(subtotal Money, code string) Discount {
	promo := e.Rates.Promotion(code)
	if promo == nil {
		return Discount{Kind: rates.PromoFixed}
	}
	d := Discount{Kind: promo.Kind, Description: promo.Description}
	switch promo.Kind {
	case rates.PromoPercentage:
		d.Amount = roundHalfAway(float64(subtotal) * promo.Percent)
	default:
		d.Amount = Money(promo.Amount)
		if d.Amount > subtotal {
			d.Amount = subtotal
		}
	}
	if d.Amount < 0 {
		d.Amount = 0
	}
	return d
}

// PaymentFee charges the method's fee rate on the raw subtotal. Unknown
// method ids cost nothing.
func (e *Engine) PaymentFee(subtotal Money, id rates.MethodID) Money {
	method, ok := e.Rates.PaymentMethod(id)
	if !ok {
		return 0
	}
	return roundHalfAway(float64(subtotal) * method.FeeRate)
}

// ComputeTotal composes the full breakdown. Every component derives from
// the raw subtotal, not a running total, so the parts stay independently
// additive; the composition order is fixed for reproducible rounding.
func (e *Engine) ComputeTotal(items []Item, loc rates.Location, promoCode string, methodID rates.MethodID) Totals {
	subtotal := e.Subtotal(items)
	shipping := e.ShippingCost(subtotal, loc)
	tax := e.Tax(subtotal, loc)
	promo := e.ApplyPromo(subtotal, promoCode)
	fee := e.PaymentFee(subtotal, methodID)

	total := subtotal + shipping + tax + fee - promo.Amount
	if total < 0 {
		total = 0
	}
	return Totals{
		Subtotal:    subtotal,
		Shipping:    shipping,
		Tax:         tax,
		Discount:    promo.Amount,
		PaymentFees: fee,
		Total:       total,
		Promo:       promo,
		Breakdown: Breakdown{
			Location:      loc,
			PromoCode:     promoCode,
			PaymentMethod: methodID,
		},
	}
}

// CartSummary augments the totals with the storefront cart widgets:
// item count, free-shipping progress and bulk-discount eligibility.
func (e *Engine) CartSummary(items []Item, loc rates.Location, promoCode string) Summary {
	totals := e.ComputeTotal(items, loc, promoCode, "")
	count := 0
	for _, it := range items {
		if it.Qty > 0 {
			count += it.Qty
		}
	}
	remaining := e.FreeShippingThreshold - totals.Subtotal
	if remaining < 0 {
		remaining = 0
	}
	return Summary{
		Totals:                  totals,
		ItemCount:               count,
		HasFreeShipping:         totals.Shipping == 0,
		FreeShippingRemaining:   remaining,
		EligibleForBulkDiscount: totals.Subtotal >= e.BulkDiscountThreshold,
	}
}

// roundHalfAway rounds half away from zero, matching how the storefront
// rounded derived amounts. Applied once per derived quantity; fractional
// cents are never chained.
func roundHalfAway(v float64) Money {
	if v < 0 {
		return Money(math.Ceil(v - 0.5))
	}
	return Money(math.Floor(v + 0.5))
}
