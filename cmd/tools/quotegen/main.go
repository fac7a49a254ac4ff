// quotegen produces random carts and prints their pricing breakdowns.
// Useful for eyeballing rate-table changes and producing demo payloads.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/khadar-dev/backend-suuq/internal/cart"
	"github.com/khadar-dev/backend-suuq/internal/pricing"
	"github.com/khadar-dev/backend-suuq/internal/rates"
)

var locations = []rates.Location{
	rates.LocationSomalia,
	rates.LocationKenya,
	rates.LocationEthiopia,
	rates.LocationInternational,
}

var promoCodes = []string{"", "WELCOME10", "SUUQ20", "NEWUSER", "SAVE5"}

var methods = []rates.MethodID{
	rates.MethodMobileMoney,
	rates.MethodBankTransfer,
	rates.MethodCashOnDelivery,
	rates.MethodCrypto,
	rates.MethodInstallments,
}

func main() {
	count := flag.Int("n", 5, "number of carts to generate")
	seed := flag.Uint64("seed", 0, "gofakeit seed, 0 for random")
	flag.Parse()

	if *seed != 0 {
		if err := gofakeit.Seed(*seed); err != nil {
			log.Fatalf("seed faker: %v", err)
		}
	}

	table := rates.Default()
	engine := pricing.NewEngine(table)
	validator := cart.NewValidator(engine)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	for i := 0; i < *count; i++ {
		items := randomCart()
		loc := locations[gofakeit.Number(0, len(locations)-1)]
		promo := promoCodes[gofakeit.Number(0, len(promoCodes)-1)]
		method := methods[gofakeit.Number(0, len(methods)-1)]

		out := struct {
			Items      []pricing.Item  `json:"items"`
			Location   rates.Location  `json:"location"`
			PromoCode  string          `json:"promoCode,omitempty"`
			Method     rates.MethodID  `json:"paymentMethod"`
			Validation cart.Result     `json:"validation"`
			Summary    pricing.Summary `json:"summary"`
			Totals     pricing.Totals  `json:"totals"`
		}{
			Items:      items,
			Location:   loc,
			PromoCode:  promo,
			Method:     method,
			Validation: validator.Validate(items),
			Summary:    engine.CartSummary(items, loc, promo),
			Totals:     engine.ComputeTotal(items, loc, promo, method),
		}
		if err := enc.Encode(out); err != nil {
			log.Fatalf("encode quote: %v", err)
		}
	}
}

func randomCart() []pricing.Item {
	n := gofakeit.Number(1, 4)
	items := make([]pricing.Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, pricing.Item{
			ProductID: fmt.Sprintf("p-%s", gofakeit.DigitN(6)),
			Title:     gofakeit.ProductName(),
			UnitPrice: pricing.Money(gofakeit.Number(100, 15000)),
			Qty:       gofakeit.Number(1, 12),
		})
	}
	return items
}
