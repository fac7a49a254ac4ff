package rates

import (
	"errors"
	"strings"
)

// Location identifies a delivery region used to select shipping prices,
// tax rates and the available shipping options.
type Location string

const (
	LocationSomalia       Location = "Somalia"
	LocationKenya         Location = "Kenya"
	LocationEthiopia      Location = "Ethiopia"
	LocationInternational Location = "International"
)

// MethodID identifies a payment method in the catalog.
type MethodID string

const (
	MethodMobileMoney    MethodID = "mobile_money"
	MethodBankTransfer   MethodID = "bank_transfer"
	MethodCashOnDelivery MethodID = "cash_on_delivery"
	MethodCrypto         MethodID = "crypto"
	MethodInstallments   MethodID = "installments"
)

// PromoKind distinguishes percentage promotions from fixed-amount ones.
type PromoKind string

const (
	PromoPercentage PromoKind = "percentage"
	PromoFixed      PromoKind = "fixed"
)

// Promotion is one entry in the promo-code catalog. Percent holds a
// fraction (0 < Percent < 1) for percentage promos; Amount holds minor
// units for fixed promos. The unused field is zero.
type Promotion struct {
	Code        string    `json:"code"`
	Kind        PromoKind `json:"kind"`
	Percent     float64   `json:"percent,omitempty"`
	Amount      int64     `json:"amount,omitempty"`
	Description string    `json:"description"`
}

// ShippingOption is one deliverable service for a location. Price is in
// minor units; EstimatedDays is a display range such as "3-5 business days".
type ShippingOption struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	EstimatedDays string `json:"estimatedDays"`
	Tracking      bool   `json:"tracking"`
	Insurance     bool   `json:"insurance"`
}

// RequiredField names one extra form field a payment method needs at
// checkout, together with the label used in validation messages.
type RequiredField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// PaymentMethod describes a supported payment channel. FeeRate is a
// fraction of the order subtotal charged as a processing fee.
type PaymentMethod struct {
	ID             MethodID        `json:"id"`
	Name           string          `json:"name"`
	FeeRate        float64         `json:"feeRate"`
	RequiredFields []RequiredField `json:"requiredFields,omitempty"`
}

// Table bundles the static rate catalogs the pricing and checkout layers
// consult. It is read-only after construction; tests substitute their own
// instance instead of mutating a shared one.
type Table struct {
	ShippingPrices  map[Location]int64
	TaxRates        map[Location]float64
	DefaultTaxRate  float64
	Promotions      map[string]Promotion
	ShippingOptions map[Location][]ShippingOption
	Methods         []PaymentMethod
}

// Default returns the built-in catalog used in production.
func Default() *Table {
	return &Table{
		ShippingPrices: map[Location]int64{
			LocationSomalia:       500,
			LocationKenya:         800,
			LocationEthiopia:      800,
			LocationInternational: 1500,
		},
		TaxRates: map[Location]float64{
			LocationSomalia:       0.05,
			LocationKenya:         0.16,
			LocationEthiopia:      0.15,
			LocationInternational: 0.10,
		},
		DefaultTaxRate: 0.10,
		Promotions: map[string]Promotion{
			"WELCOME10": {Code: "WELCOME10", Kind: PromoPercentage, Percent: 0.10, Description: "10% off your first order"},
			"SUUQ20":    {Code: "SUUQ20", Kind: PromoPercentage, Percent: 0.20, Description: "20% off storewide"},
			"NEWUSER":   {Code: "NEWUSER", Kind: PromoFixed, Amount: 1000, Description: "$10 off for new customers"},
			"SAVE5":     {Code: "SAVE5", Kind: PromoFixed, Amount: 500, Description: "$5 off your order"},
		},
		ShippingOptions: map[Location][]ShippingOption{
			LocationSomalia: {
				{ID: "standard", Name: "Standard Delivery", Price: 500, EstimatedDays: "3-5 business days"},
				{ID: "express", Name: "Express Delivery", Price: 1200, EstimatedDays: "1-2 business days", Tracking: true},
			},
			LocationKenya: {
				{ID: "standard", Name: "Standard Delivery", Price: 800, EstimatedDays: "4-7 business days", Tracking: true},
				{ID: "express", Name: "Express Delivery", Price: 1800, EstimatedDays: "2-3 business days", Tracking: true, Insurance: true},
			},
			LocationEthiopia: {
				{ID: "standard", Name: "Standard Delivery", Price: 800, EstimatedDays: "4-7 business days", Tracking: true},
				{ID: "express", Name: "Express Delivery", Price: 1800, EstimatedDays: "2-3 business days", Tracking: true, Insurance: true},
			},
			LocationInternational: {
				{ID: "standard", Name: "International Standard", Price: 1500, EstimatedDays: "7-14 business days", Tracking: true, Insurance: true},
				{ID: "express", Name: "International Express", Price: 3500, EstimatedDays: "3-5 business days", Tracking: true, Insurance: true},
			},
		},
		Methods: []PaymentMethod{
			{
				ID: MethodMobileMoney, Name: "Mobile Money", FeeRate: 0.02,
				RequiredFields: []RequiredField{{Key: "phoneNumber", Label: "Mobile money phone number"}},
			},
			{
				ID: MethodBankTransfer, Name: "Bank Transfer", FeeRate: 0.015,
				RequiredFields: []RequiredField{
					{Key: "accountNumber", Label: "Account number"},
					{Key: "bankName", Label: "Bank name"},
				},
			},
			{ID: MethodCashOnDelivery, Name: "Cash on Delivery", FeeRate: 0.05},
			{
				ID: MethodCrypto, Name: "Cryptocurrency", FeeRate: 0.01,
				RequiredFields: []RequiredField{
					{Key: "walletAddress", Label: "Wallet address"},
					{Key: "currencyType", Label: "Currency type"},
				},
			},
			{
				ID: MethodInstallments, Name: "Pay in Installments", FeeRate: 0.03,
				RequiredFields: []RequiredField{{Key: "downPayment", Label: "Down payment amount"}},
			},
		},
	}
}

// Healthy verifies the table has the catalogs the fallback paths rely on.
func (t *Table) Healthy() error {
	if t == nil {
		return errors.New("rate table is nil")
	}
	if _, ok := t.ShippingPrices[LocationInternational]; !ok {
		return errors.New("missing international shipping price")
	}
	if len(t.ShippingOptions[LocationInternational]) == 0 {
		return errors.New("missing international shipping options")
	}
	if len(t.Methods) == 0 {
		return errors.New("payment method catalog is empty")
	}
	return nil
}

// ShippingPriceFor returns the flat shipping price for the location.
// Unknown locations fall back to the international rate.
func (t *Table) ShippingPriceFor(loc Location) int64 {
	if price, ok := t.ShippingPrices[loc]; ok {
		return price
	}
	return t.ShippingPrices[LocationInternational]
}

// TaxRateFor returns the fractional tax rate for the location. Unknown
// locations fall back to DefaultTaxRate.
func (t *Table) TaxRateFor(loc Location) float64 {
	if rate, ok := t.TaxRates[loc]; ok {
		return rate
	}
	return t.DefaultTaxRate
}

// Promotion resolves a promo code with a case-sensitive exact match.
// Unknown codes return nil rather than an error; the caller treats that
// as a zero discount.
func (t *Table) Promotion(code string) *Promotion {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}
	if promo, ok := t.Promotions[code]; ok {
		return &promo
	}
	return nil
}

// ShippingOptionsFor returns the shipping options available for the
// location. Unknown locations get the international list, which is
// never empty.
func (t *Table) ShippingOptionsFor(loc Location) []ShippingOption {
	if opts, ok := t.ShippingOptions[loc]; ok && len(opts) > 0 {
		return opts
	}
	return t.ShippingOptions[LocationInternational]
}

// ShippingOptionFor resolves a single option by id within a location.
func (t *Table) ShippingOptionFor(loc Location, id string) (ShippingOption, bool) {
	for _, opt := range t.ShippingOptionsFor(loc) {
		if opt.ID == id {
			return opt, true
		}
	}
	return ShippingOption{}, false
}

// PaymentMethods returns the full payment-method catalog.
func (t *Table) PaymentMethods() []PaymentMethod {
	return t.Methods
}

// PaymentMethod resolves a method by id. Unknown ids report ok=false;
// pricing treats that as a zero fee and checkout as a validation error.
func (t *Table) PaymentMethod(id MethodID) (PaymentMethod, bool) {
	for _, m := range t.Methods {
		if m.ID == id {
			return m, true
		}
	}
	return PaymentMethod{}, false
}
