package order

import (
	"math"
	"testing"

	"pdv_xpto/internal/domain/entities"
)

func productFixture(id string, price float64) entities.Product {
	return entities.Product{
		ID:          id,
		Name:        "product-" + id,
		Category:    "grocery",
		SalePrice:   price,
		CostPrice:   price / 2,
		Stock:       100,
		UnitType:    entities.UnitTypeUnit,
		UnitMeasure: "un",
	}
}

func TestOrder_AddLine(t *testing.T) {
	t.Run("appends new line with computed subtotal", func(t *testing.T) {
		o := New()
		o.AddLine(productFixture("p1", 10), 2)

		lines := o.Lines()
		if len(lines) != 1 {
			t.Fatalf("expected 1 line, got %d", len(lines))
		}
		if lines[0].Quantity != 2 || lines[0].Subtotal != 20 {
			t.Fatalf("unexpected line: %+v", lines[0])
		}
	})

	t.Run("merges lines by product id", func(t *testing.T) {
		o := New()
		p := productFixture("p1", 10)
		o.AddLine(p, 2)
		o.AddLine(p, 3)

		lines := o.Lines()
		if len(lines) != 1 {
			t.Fatalf("expected merged line, got %d lines", len(lines))
		}
		if lines[0].Quantity != 5 || lines[0].Subtotal != 50 {
			t.Fatalf("unexpected merged line: %+v", lines[0])
		}
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		o := New()
		o.AddLine(productFixture("p1", 10), 1)
		o.AddLine(productFixture("p2", 5), 1)
		o.AddLine(productFixture("p1", 10), 1)

		lines := o.Lines()
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		if lines[0].Product.ID != "p1" || lines[1].Product.ID != "p2" {
			t.Fatalf("unexpected order: %s, %s", lines[0].Product.ID, lines[1].Product.ID)
		}
	})

	t.Run("ignores non-positive and NaN quantities", func(t *testing.T) {
		o := New()
		o.AddLine(productFixture("p1", 10), 0)
		o.AddLine(productFixture("p1", 10), -1)
		o.AddLine(productFixture("p1", 10), math.NaN())
		if !o.IsEmpty() {
			t.Fatalf("expected empty order, got %d lines", len(o.Lines()))
		}
	})
}

func TestOrder_RemoveLine(t *testing.T) {
	o := New()
	o.AddLine(productFixture("p1", 10), 1)
	o.AddLine(productFixture("p2", 5), 1)

	o.RemoveLine("p1")
	lines := o.Lines()
	if len(lines) != 1 || lines[0].Product.ID != "p2" {
		t.Fatalf("unexpected lines after remove: %+v", lines)
	}

	// Removing an absent product is a no-op.
	o.RemoveLine("missing")
	if len(o.Lines()) != 1 {
		t.Fatalf("expected remove of missing product to be a no-op")
	}
}

func TestOrder_SetLineQuantity(t *testing.T) {
	t.Run("replaces quantity and recomputes subtotal", func(t *testing.T) {
		o := New()
		o.AddLine(productFixture("p1", 10), 2)
		o.SetLineQuantity("p1", 7)

		lines := o.Lines()
		if lines[0].Quantity != 7 || lines[0].Subtotal != 70 {
			t.Fatalf("unexpected line: %+v", lines[0])
		}
	})

	t.Run("non-positive quantity removes the line", func(t *testing.T) {
		o := New()
		o.AddLine(productFixture("p1", 10), 2)
		o.SetLineQuantity("p1", 0)
		if !o.IsEmpty() {
			t.Fatalf("expected line removed")
		}
	})

	t.Run("NaN leaves state unchanged", func(t *testing.T) {
		o := New()
		o.AddLine(productFixture("p1", 10), 2)
		o.SetLineQuantity("p1", math.NaN())

		lines := o.Lines()
		if len(lines) != 1 || lines[0].Quantity != 2 || lines[0].Subtotal != 20 {
			t.Fatalf("expected unchanged line, got %+v", lines)
		}
	})
}

func TestOrder_Totals(t *testing.T) {
	t.Run("no discount", func(t *testing.T) {
		o := New()
		o.AddLine(productFixture("p1", 10), 2)

		tot := o.Totals()
		if tot.Subtotal != 20 || tot.DiscountAmount != 0 || tot.Total != 20 {
			t.Fatalf("unexpected totals: %+v", tot)
		}
	})

	t.Run("percentage discount", func(t *testing.T) {
		o := New()
		o.AddLine(productFixture("p1", 100), 1)
		o.ApplyDiscount(entities.DiscountTypePercentage, 20)

		tot := o.Totals()
		if tot.Subtotal != 100 || tot.DiscountAmount != 20 || tot.Total != 80 {
			t.Fatalf("unexpected totals: %+v", tot)
		}
	})

	t.Run("fixed discount clamped to subtotal", func(t *testing.T) {
		o := New()
		o.AddLine(productFixture("p1", 100), 1)
		o.ApplyDiscount(entities.DiscountTypeFixed, 150)

		tot := o.Totals()
		if tot.DiscountAmount != 100 || tot.Total != 0 {
			t.Fatalf("expected clamp to subtotal, got %+v", tot)
		}
	})

	t.Run("percentage above 100 clamped to subtotal", func(t *testing.T) {
		o := New()
		o.AddLine(productFixture("p1", 50), 2)
		o.ApplyDiscount(entities.DiscountTypePercentage, 250)

		tot := o.Totals()
		if tot.DiscountAmount != 100 || tot.Total != 0 {
			t.Fatalf("expected clamp to subtotal, got %+v", tot)
		}
	})

	t.Run("idempotent without mutation", func(t *testing.T) {
		o := New()
		o.AddLine(productFixture("p1", 33.3), 3)
		o.ApplyDiscount(entities.DiscountTypePercentage, 7.5)

		first := o.Totals()
		second := o.Totals()
		if first != second {
			t.Fatalf("expected identical totals, got %+v and %+v", first, second)
		}
	})

	t.Run("empty order", func(t *testing.T) {
		tot := New().Totals()
		if tot.Subtotal != 0 || tot.DiscountAmount != 0 || tot.Total != 0 {
			t.Fatalf("unexpected totals: %+v", tot)
		}
	})
}

func TestOrder_ApplyDiscount(t *testing.T) {
	o := New()
	o.ApplyDiscount(entities.DiscountTypeFixed, 10)
	if d := o.Discount(); d.Type != entities.DiscountTypeFixed || d.Value != 10 {
		t.Fatalf("unexpected policy: %+v", d)
	}

	// Replacement is wholesale, not additive.
	o.ApplyDiscount(entities.DiscountTypePercentage, 5)
	if d := o.Discount(); d.Type != entities.DiscountTypePercentage || d.Value != 5 {
		t.Fatalf("unexpected policy: %+v", d)
	}

	// Malformed input leaves the current policy untouched.
	o.ApplyDiscount(entities.DiscountType("weird"), 5)
	o.ApplyDiscount(entities.DiscountTypeFixed, -1)
	o.ApplyDiscount(entities.DiscountTypeFixed, math.NaN())
	if d := o.Discount(); d.Type != entities.DiscountTypePercentage || d.Value != 5 {
		t.Fatalf("expected policy preserved, got %+v", d)
	}
}

func TestOrder_Clear(t *testing.T) {
	o := New()
	o.AddLine(productFixture("p1", 10), 2)
	o.ApplyDiscount(entities.DiscountTypeFixed, 5)

	o.Clear()
	if !o.IsEmpty() {
		t.Fatalf("expected empty order")
	}
	if d := o.Discount(); d.Type != entities.DiscountTypePercentage || d.Value != 0 {
		t.Fatalf("expected default policy, got %+v", d)
	}
}
