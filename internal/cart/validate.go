package cart

import (
	"fmt"

	"github.com/khadar-dev/backend-suuq/internal/pricing"
)

// InventoryChecker reports whether the requested quantity of a line item
// can be fulfilled. The returned string is a display-ready error message;
// empty means the line is fine.
type InventoryChecker interface {
	Check(item pricing.Item) string
}

// StaticLimit is the default InventoryChecker: a flat per-line quantity
// ceiling standing in for a real stock lookup. A production deployment
// swaps in a checker backed by the inventory system.
type StaticLimit struct {
	Max int
}

// Check flags any line whose quantity exceeds the ceiling.
func (l StaticLimit) Check(item pricing.Item) string {
	max := l.Max
	if max <= 0 {
		max = 10
	}
	if item.Qty > max {
		return fmt.Sprintf("Only %d units of %s are available", max, item.Title)
	}
	return ""
}

// Result carries the outcome of a validation pass. Errors are
// display-ready sentences; Valid is true iff Errors is empty.
type Result struct {
	Valid  bool     `json:"isValid"`
	Errors []string `json:"errors"`
}

// Validator gates checkout entry. All applicable rule violations
// accumulate into the result; nothing short-circuits.
type Validator struct {
	Engine       *pricing.Engine
	Inventory    InventoryChecker
	MinimumOrder pricing.Money
}

// NewValidator wires a validator with the default minimum-order floor
// and the placeholder inventory ceiling.
func NewValidator(engine *pricing.Engine) *Validator {
	return &Validator{
		Engine:       engine,
		Inventory:    StaticLimit{Max: 10},
		MinimumOrder: 1000,
	}
}

// Validate checks the cart for emptiness, per-line inventory problems and
// the minimum-order floor.
func (v *Validator) Validate(items []pricing.Item) Result {
	var errs []string
	if len(items) == 0 {
		errs = append(errs, "Your cart is empty")
	}
	if v.Inventory != nil {
		for _, it := range items {
			if msg := v.Inventory.Check(it); msg != "" {
				errs = append(errs, msg)
			}
		}
	}
	if len(items) > 0 {
		if subtotal := v.Engine.Subtotal(items); subtotal < v.MinimumOrder {
			errs = append(errs, fmt.Sprintf("Minimum order value is $%s", majorUnits(v.MinimumOrder)))
		}
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// majorUnits renders a minor-unit amount in whole major units when the
// cents are zero ("10"), falling back to two decimals otherwise.
func majorUnits(m pricing.Money) string {
	if m%100 == 0 {
		return fmt.Sprintf("%d", m/100)
	}
	return m.Decimal()
}
