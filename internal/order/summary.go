package order

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/khadar-dev/backend-suuq/internal/pricing"
	"github.com/khadar-dev/backend-suuq/internal/rates"
)

// Status tracks an order through its lifecycle. The builder only ever
// produces StatusPending; later transitions belong to order management.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Contact snapshots the buyer's contact details at checkout time.
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Address snapshots the delivery address at checkout time.
type Address struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Payment snapshots the chosen payment method and its extra form fields.
type Payment struct {
	Method rates.MethodID    `json:"method"`
	Data   map[string]string `json:"data,omitempty"`
}

// Line is one priced line item frozen into the order.
type Line struct {
	ProductID string        `json:"productId"`
	Title     string        `json:"title"`
	UnitPrice pricing.Money `json:"unitPrice"`
	Qty       int           `json:"quantity"`
	LineTotal pricing.Money `json:"lineTotal"`
}

// Summary is the immutable order record produced at successful checkout.
type Summary struct {
	OrderNumber           string         `json:"orderNumber"`
	Timestamp             time.Time      `json:"timestamp"`
	Contact               Contact        `json:"contact"`
	Shipping              Address        `json:"shipping"`
	Payment               Payment        `json:"payment"`
	Items                 []Line         `json:"items"`
	Totals                pricing.Totals `json:"totals"`
	Status                Status         `json:"status"`
	EstimatedDeliveryDate string         `json:"estimatedDeliveryDate"`
}

// Builder assembles order summaries. Its only side effect is reading the
// wall clock, and even that is injectable for tests.
type Builder struct {
	Now    func() time.Time
	Prefix string
}

// NewBuilder returns a builder with the production prefix and clock.
func NewBuilder() *Builder {
	return &Builder{Now: time.Now, Prefix: "SUUQ"}
}

func (b *Builder) now() time.Time {
	if b != nil && b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

// OrderNumber generates a human-readable, per-process-unique order number.
// The date keeps it readable; the uuid suffix keeps rapid concurrent
// checkouts from colliding the way a bare timestamp would.
func (b *Builder) OrderNumber() string {
	prefix := b.Prefix
	if prefix == "" {
		prefix = "SUUQ"
	}
	stamp := b.now().UTC().Format("20060102")
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("%s-%s-%s", prefix, stamp, suffix)
}

// DeliveryEstimate adds the lower bound of the option's business-day
// range to the current date and returns an ISO-8601 date. Options with an
// unparsable range fall back to a week out.
func (b *Builder) DeliveryEstimate(opt rates.ShippingOption) string {
	days := leadingInt(opt.EstimatedDays)
	if days <= 0 {
		days = 7
	}
	return b.now().AddDate(0, 0, days).Format("2006-01-02")
}

// Build freezes validated checkout inputs into an order summary. It does
// not re-run validation; that is the caller's job.
func (b *Builder) Build(items []pricing.Item, contact Contact, shipping Address, payment Payment, opt rates.ShippingOption, totals pricing.Totals) Summary {
	lines := make([]Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, Line{
			ProductID: it.ProductID,
			Title:     it.Title,
			UnitPrice: it.UnitPrice,
			Qty:       it.Qty,
			LineTotal: it.UnitPrice * pricing.Money(it.Qty),
		})
	}
	return Summary{
		OrderNumber:           b.OrderNumber(),
		Timestamp:             b.now(),
		Contact:               contact,
		Shipping:              shipping,
		Payment:               payment,
		Items:                 lines,
		Totals:                totals,
		Status:                StatusPending,
		EstimatedDeliveryDate: b.DeliveryEstimate(opt),
	}
}

// leadingInt parses the run of digits at the start of s, returning 0 when
// s does not begin with one.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
