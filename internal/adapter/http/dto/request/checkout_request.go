package request

import (
	"errors"
	"math"
	"strings"

	"pdv_xpto/internal/domain/entities"
)

var (
	ErrNoItems                = errors.New("checkout requires at least one item")
	ErrInvalidItem            = errors.New("invalid checkout item")
	ErrUnknownPaymentMethod   = errors.New("unknown payment method")
	ErrInvalidDiscountRequest = errors.New("invalid discount")
)

type CheckoutItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required"`
}

type DiscountRequest struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// CheckoutRequest is the payload of POST /v1/sales. Items carry product ids
// and quantities only; prices always come from the live catalog on the
// server side, never from the client.
type CheckoutRequest struct {
	Items         []CheckoutItemRequest `json:"items" binding:"required"`
	Discount      *DiscountRequest      `json:"discount"`
	PaymentMethod string                `json:"payment_method" binding:"required"`
	Notes         string                `json:"notes"`
}

// ResolveItems returns the normalized item list or an error when any entry
// is unusable (blank product id, non-positive or NaN quantity).
func (r CheckoutRequest) ResolveItems() ([]CheckoutItemRequest, error) {
	if len(r.Items) == 0 {
		return nil, ErrNoItems
	}
	items := make([]CheckoutItemRequest, 0, len(r.Items))
	for _, it := range r.Items {
		id := strings.TrimSpace(it.ProductID)
		if id == "" || it.Quantity <= 0 || math.IsNaN(it.Quantity) {
			return nil, ErrInvalidItem
		}
		items = append(items, CheckoutItemRequest{ProductID: id, Quantity: it.Quantity})
	}
	return items, nil
}

func (r CheckoutRequest) ResolvePaymentMethod() (entities.PaymentMethod, error) {
	m := entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod)))
	if !m.Valid() {
		return "", ErrUnknownPaymentMethod
	}
	return m, nil
}

// ResolveDiscount maps the optional discount block to a policy. A missing
// block means no discount (percentage, 0).
func (r CheckoutRequest) ResolveDiscount() (entities.DiscountType, float64, error) {
	if r.Discount == nil {
		return entities.DiscountTypePercentage, 0, nil
	}
	t := entities.DiscountType(strings.ToLower(strings.TrimSpace(r.Discount.Type)))
	if !t.Valid() {
		return "", 0, ErrInvalidDiscountRequest
	}
	if r.Discount.Value < 0 || math.IsNaN(r.Discount.Value) {
		return "", 0, ErrInvalidDiscountRequest
	}
	return t, r.Discount.Value, nil
}
