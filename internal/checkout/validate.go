package checkout

import (
	"fmt"
	"regexp"
	"strings"

	validator "github.com/go-playground/validator/v10"

	"github.com/khadar-dev/backend-suuq/internal/order"
	"github.com/khadar-dev/backend-suuq/internal/rates"
)

// phonePattern accepts digits with optional leading +, spaces, hyphens
// and parentheses. Digit count is checked separately so formatting
// characters do not pad a short number past the minimum.
var phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]+$`)

const minPhoneDigits = 10

// Result carries a validation outcome. Errors are display-ready
// sentences shown to the buyer verbatim.
type Result struct {
	Valid  bool     `json:"isValid"`
	Errors []string `json:"errors"`
}

// Submission bundles the checkout form values for ValidateAll.
type Submission struct {
	Contact       order.Contact     `json:"contact"`
	Shipping      order.Address     `json:"shipping"`
	PaymentMethod rates.MethodID    `json:"paymentMethod"`
	PaymentData   map[string]string `json:"paymentData"`
}

// Validator performs field-level checkout validation. It consults the
// rate table for payment-method required-field schemas and never touches
// pricing.
type Validator struct {
	Rates    *rates.Table
	validate *validator.Validate
}

// NewValidator wires a checkout validator against the given rate table.
func NewValidator(table *rates.Table) *Validator {
	return &Validator{
		Rates:    table,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ValidateContact checks the buyer's email and phone.
func (v *Validator) ValidateContact(email, phone string) Result {
	var errs []string
	email = strings.TrimSpace(email)
	if email == "" {
		errs = append(errs, "Email address is required")
	} else if err := v.validate.Var(email, "email"); err != nil {
		errs = append(errs, "Please enter a valid email address")
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		errs = append(errs, "Phone number is required")
	} else if !validPhone(phone) {
		errs = append(errs, "Please enter a valid phone number")
	}
	return result(errs)
}

// ValidateShipping checks the delivery address fields. The address line
// must be long enough to plausibly be complete.
func (v *Validator) ValidateShipping(address, city, postalCode, country string) Result {
	var errs []string
	address = strings.TrimSpace(address)
	switch {
	case address == "":
		errs = append(errs, "Shipping address is required")
	case len(address) < 10:
		errs = append(errs, "Please enter a complete address")
	}
	if strings.TrimSpace(city) == "" {
		errs = append(errs, "City is required")
	}
	if strings.TrimSpace(postalCode) == "" {
		errs = append(errs, "Postal code is required")
	}
	if strings.TrimSpace(country) == "" {
		errs = append(errs, "Country is required")
	}
	return result(errs)
}

// ValidatePayment checks that a known payment method is selected and
// that its method-specific required fields are present and well formed.
func (v *Validator) ValidatePayment(methodID rates.MethodID, data map[string]string) Result {
	var errs []string
	if methodID == "" {
		errs = append(errs, "Please select a payment method")
		return result(errs)
	}
	method, ok := v.Rates.PaymentMethod(methodID)
	if !ok {
		errs = append(errs, "Please select a valid payment method")
		return result(errs)
	}
	for _, field := range method.RequiredFields {
		value := strings.TrimSpace(data[field.Key])
		if value == "" {
			errs = append(errs, fmt.Sprintf("%s is required", field.Label))
			continue
		}
		if method.ID == rates.MethodMobileMoney && field.Key == "phoneNumber" && !validPhone(value) {
			errs = append(errs, "Please enter a valid mobile money phone number")
		}
	}
	return result(errs)
}

// ValidateAll runs every validator and concatenates their errors so the
// buyer sees the whole form's problems in one pass.
func (v *Validator) ValidateAll(sub Submission) Result {
	var errs []string
	errs = append(errs, v.ValidateContact(sub.Contact.Email, sub.Contact.Phone).Errors...)
	errs = append(errs, v.ValidateShipping(sub.Shipping.Address, sub.Shipping.City, sub.Shipping.PostalCode, sub.Shipping.Country).Errors...)
	errs = append(errs, v.ValidatePayment(sub.PaymentMethod, sub.PaymentData).Errors...)
	return result(errs)
}

func validPhone(phone string) bool {
	if !phonePattern.MatchString(phone) {
		return false
	}
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= minPhoneDigits
}

func result(errs []string) Result {
	return Result{Valid: len(errs) == 0, Errors: errs}
}
