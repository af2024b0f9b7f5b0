package entities

import "time"

// PaymentMethod is the closed set of payment labels recorded on a sale.
//
// Payment processing itself is out of scope for this service; the method is
// stored for reporting only, never sent to a gateway.

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodDebit  PaymentMethod = "debit"
	PaymentMethodCredit PaymentMethod = "credit"
	PaymentMethodPix    PaymentMethod = "pix"
)

// Valid reports whether the payment method is one of the closed set.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodDebit, PaymentMethodCredit, PaymentMethodPix:
		return true
	}
	return false
}

// DiscountType selects how a discount value reduces an order's subtotal.

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// Valid reports whether the discount type is one of the closed set.
func (d DiscountType) Valid() bool {
	return d == DiscountTypePercentage || d == DiscountTypeFixed
}

// Sale is the persisted record of a completed checkout.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariant: immutable once created. TotalAmount carries the pre-discount
// subtotal and FinalAmount the charged total, both captured at commit time.

type Sale struct {
	ID                 string        `json:"id"`
	SaleNumber         string        `json:"sale_number"`
	TotalAmount        float64       `json:"total_amount"`
	DiscountPercentage float64       `json:"discount_percentage"`
	DiscountAmount     float64       `json:"discount_amount"`
	FinalAmount        float64       `json:"final_amount"`
	PaymentMethod      PaymentMethod `json:"payment_method"`
	Notes              string        `json:"notes,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
}

// SaleItem is the persisted snapshot of one order line at commit time.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (sale_id-index): sale_id
//
// ProductName and UnitPrice are denormalized copies so later catalog edits
// never alter historical sales. ProductID is a weak reference only.

type SaleItem struct {
	ID          string    `json:"id"`
	SaleID      string    `json:"sale_id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Subtotal    float64   `json:"subtotal"`
	CreatedAt   time.Time `json:"created_at"`
}
