package response

import (
	"pdv_xpto/internal/domain/entities"
)

type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	CostPrice   float64 `json:"cost_price"`
	SalePrice   float64 `json:"sale_price"`
	Stock       float64 `json:"stock"`
	MinStock    float64 `json:"min_stock"`
	UnitType    string  `json:"unit_type"`
	UnitMeasure string  `json:"unit_measure"`
	LowStock    bool    `json:"low_stock"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		CostPrice:   roundMoney(p.CostPrice),
		SalePrice:   roundMoney(p.SalePrice),
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		UnitType:    string(p.UnitType),
		UnitMeasure: p.UnitMeasure,
		LowStock:    p.LowStock(),
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

type LowStockCountResponse struct {
	Count int `json:"count"`
}
