package response

import (
	"testing"
	"time"

	"pdv_xpto/internal/domain/entities"
)

func TestFromSale(t *testing.T) {
	now := time.Now().UTC()
	s := entities.Sale{
		ID:                 "sale-1",
		SaleNumber:         "VND-000042",
		TotalAmount:        33.333333,
		DiscountPercentage: 10,
		DiscountAmount:     3.3333333,
		FinalAmount:        29.9999997,
		PaymentMethod:      entities.PaymentMethodPix,
		Notes:              "balcão",
		CreatedAt:          now,
	}

	res := FromSale(s)
	if res.ID != "sale-1" || res.SaleNumber != "VND-000042" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.TotalAmount != 33.33 || res.DiscountAmount != 3.33 || res.FinalAmount != 30 {
		t.Fatalf("expected two-decimal rounding, got %+v", res)
	}
	if res.DiscountPercentage != 10 {
		t.Fatalf("discount percentage must pass through unrounded: %+v", res)
	}
	if res.PaymentMethod != "pix" || res.Notes != "balcão" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %+v", res)
	}
}

func TestFromProduct(t *testing.T) {
	p := entities.Product{
		ID:          "p1",
		Name:        "Arroz 5kg",
		Category:    "Mercearia",
		CostPrice:   18.999,
		SalePrice:   24.901,
		Stock:       3,
		MinStock:    5,
		UnitType:    entities.UnitTypeUnit,
		UnitMeasure: "un",
	}

	res := FromProduct(p)
	if res.CostPrice != 19 || res.SalePrice != 24.9 {
		t.Fatalf("expected rounded prices, got %+v", res)
	}
	if res.Stock != 3 || res.MinStock != 5 {
		t.Fatalf("stock values must not be rounded: %+v", res)
	}
	if !res.LowStock {
		t.Fatalf("expected low_stock flag when stock <= min_stock: %+v", res)
	}
}

func TestRoundMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{10.006, 10.01},
		{10.004, 10.0},
		{29.9999997, 30},
		{0, 0},
	}
	for _, c := range cases {
		if got := roundMoney(c.in); got != c.want {
			t.Fatalf("roundMoney(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
