package checkout

import (
	"errors"
	"net/http"

	"github.com/khadar-dev/backend-suuq/internal/cart"
	"github.com/khadar-dev/backend-suuq/internal/common"
	"github.com/khadar-dev/backend-suuq/internal/order"
	"github.com/khadar-dev/backend-suuq/internal/pricing"
	"github.com/khadar-dev/backend-suuq/internal/rates"
)

// Input is the full checkout submission.
type Input struct {
	Items            []pricing.Item    `json:"items"`
	Location         rates.Location    `json:"location"`
	PromoCode        string            `json:"promoCode"`
	ShippingOptionID string            `json:"shippingOption"`
	Contact          order.Contact     `json:"contact"`
	Shipping         order.Address     `json:"shipping"`
	PaymentMethod    rates.MethodID    `json:"paymentMethod"`
	PaymentData      map[string]string `json:"paymentData"`
}

// Service runs the checkout pipeline: cart validation, field validation,
// pricing, then order-summary assembly. It holds no state and performs
// no I/O.
type Service struct {
	Engine  *pricing.Engine
	Cart    *cart.Validator
	Fields  *Validator
	Builder *order.Builder
	Rates   *rates.Table
}

// Create validates the submission and produces the pending order summary.
// Validation problems come back as a 422 AppError whose Details carry
// every accumulated message.
func (s *Service) Create(in Input) (order.Summary, error) {
	if s == nil || s.Engine == nil || s.Cart == nil || s.Fields == nil || s.Builder == nil {
		return order.Summary{}, errors.New("checkout service not configured")
	}

	var errs []string
	errs = append(errs, s.Cart.Validate(in.Items).Errors...)
	errs = append(errs, s.Fields.ValidateAll(Submission{
		Contact:       in.Contact,
		Shipping:      in.Shipping,
		PaymentMethod: in.PaymentMethod,
		PaymentData:   in.PaymentData,
	}).Errors...)
	if len(errs) > 0 {
		return order.Summary{}, common.NewAppError(
			"VALIDATION_FAILED",
			"checkout submission failed validation",
			http.StatusUnprocessableEntity,
			nil,
		).WithDetails(errs)
	}

	totals := s.Engine.ComputeTotal(in.Items, in.Location, in.PromoCode, in.PaymentMethod)
	option := s.shippingOption(in.Location, in.ShippingOptionID)
	summary := s.Builder.Build(
		in.Items,
		in.Contact,
		in.Shipping,
		order.Payment{Method: in.PaymentMethod, Data: in.PaymentData},
		option,
		totals,
	)
	return summary, nil
}

// shippingOption resolves the chosen option, falling back to the first
// option for the location so the delivery estimate always has a range to
// work from.
func (s *Service) shippingOption(loc rates.Location, id string) rates.ShippingOption {
	if opt, ok := s.Rates.ShippingOptionFor(loc, id); ok {
		return opt
	}
	return s.Rates.ShippingOptionsFor(loc)[0]
}
