package order

import (
	"math"

	"pdv_xpto/internal/domain/entities"
)

// Line is one (product, quantity) pairing inside an in-progress order.
//
// Subtotal is always recomputed from Quantity and the product's sale price at
// the time of the last mutation to the line; it never drifts independently.

type Line struct {
	Product  entities.Product
	Quantity float64
	Subtotal float64
}

// DiscountPolicy is the single discount applied to an order's subtotal.

type DiscountPolicy struct {
	Type  entities.DiscountType
	Value float64
}

// Totals are the derived monetary figures for an order.
//
// Invariants: 0 <= DiscountAmount <= Subtotal and Total = Subtotal - DiscountAmount.

type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	Total          float64
}

// Order accumulates the lines of one checkout session.
//
// It is ephemeral and purely in-memory: no I/O, no stock mutation, no
// internal locking. A single caller (the checkout session) owns it and must
// serialize mutations. Malformed numeric input (NaN, non-positive where a
// positive is required) leaves the order unchanged; the input layer is
// responsible for surfacing a message to the user.

type Order struct {
	lines    []Line
	discount DiscountPolicy
}

// New returns an empty order with the default discount policy
// (percentage, 0).
func New() *Order {
	return &Order{discount: DiscountPolicy{Type: entities.DiscountTypePercentage}}
}

// AddLine adds quantity of product to the order. When a line for the product
// already exists the quantities are merged and the subtotal recomputed, so
// the order holds at most one line per product id. Insertion order of
// products is preserved.
func (o *Order) AddLine(p entities.Product, quantity float64) {
	if quantity <= 0 || math.IsNaN(quantity) {
		return
	}
	for i := range o.lines {
		if o.lines[i].Product.ID == p.ID {
			q := o.lines[i].Quantity + quantity
			o.lines[i].Quantity = q
			o.lines[i].Subtotal = q * p.SalePrice
			o.lines[i].Product = p
			return
		}
	}
	o.lines = append(o.lines, Line{Product: p, Quantity: quantity, Subtotal: quantity * p.SalePrice})
}

// RemoveLine deletes the line for productID. Removing an absent product is a
// no-op, not an error.
func (o *Order) RemoveLine(productID string) {
	for i := range o.lines {
		if o.lines[i].Product.ID == productID {
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
			return
		}
	}
}

// SetLineQuantity replaces the quantity of an existing line and recomputes
// its subtotal. A quantity <= 0 removes the line. NaN leaves the order
// unchanged.
func (o *Order) SetLineQuantity(productID string, quantity float64) {
	if math.IsNaN(quantity) {
		return
	}
	if quantity <= 0 {
		o.RemoveLine(productID)
		return
	}
	for i := range o.lines {
		if o.lines[i].Product.ID == productID {
			o.lines[i].Quantity = quantity
			o.lines[i].Subtotal = quantity * o.lines[i].Product.SalePrice
			return
		}
	}
}

// ApplyDiscount replaces the current discount policy wholesale; discounts are
// not additive. A percentage value is not capped here (the resulting amount
// is clamped to the subtotal in Totals). Invalid type or a negative/NaN
// value leaves the current policy unchanged.
func (o *Order) ApplyDiscount(t entities.DiscountType, value float64) {
	if !t.Valid() || value < 0 || math.IsNaN(value) {
		return
	}
	o.discount = DiscountPolicy{Type: t, Value: value}
}

// Clear empties the order and resets the discount policy to (percentage, 0).
func (o *Order) Clear() {
	o.lines = nil
	o.discount = DiscountPolicy{Type: entities.DiscountTypePercentage}
}

// Totals derives subtotal, discount amount and total. It is pure and
// idempotent: calling it any number of times without mutation yields the
// same result and never changes the order.
func (o *Order) Totals() Totals {
	subtotal := 0.0
	for _, l := range o.lines {
		subtotal += l.Subtotal
	}

	var discount float64
	if o.discount.Type == entities.DiscountTypePercentage {
		discount = subtotal * o.discount.Value / 100
	} else {
		discount = o.discount.Value
	}
	// Clamp so the discount never exceeds the subtotal and the total never
	// goes negative.
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		Total:          subtotal - discount,
	}
}

// Lines returns a copy of the order's lines in insertion order.
func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

// Discount returns the active discount policy.
func (o *Order) Discount() DiscountPolicy {
	return o.discount
}

// IsEmpty reports whether the order has no lines.
func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}
