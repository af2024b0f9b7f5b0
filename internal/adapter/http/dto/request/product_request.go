package request

import (
	"strings"

	"pdv_xpto/internal/domain/entities"
)

type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	CostPrice   float64 `json:"cost_price"`
	SalePrice   float64 `json:"sale_price"`
	Stock       float64 `json:"stock"`
	MinStock    float64 `json:"min_stock"`
	UnitType    string  `json:"unit_type" binding:"required"`
	UnitMeasure string  `json:"unit_measure" binding:"required"`
}

// ToEntity maps the payload onto a product; field validation is the catalog
// use case's job.
func (r ProductRequest) ToEntity() entities.Product {
	return entities.Product{
		Name:        strings.TrimSpace(r.Name),
		Category:    strings.TrimSpace(r.Category),
		CostPrice:   r.CostPrice,
		SalePrice:   r.SalePrice,
		Stock:       r.Stock,
		MinStock:    r.MinStock,
		UnitType:    entities.UnitType(strings.ToLower(strings.TrimSpace(r.UnitType))),
		UnitMeasure: strings.TrimSpace(r.UnitMeasure),
	}
}

// StockUpdateRequest carries the absolute new stock value for
// PATCH /v1/products/:id/stock. A pointer distinguishes an omitted field
// from an explicit zero (emptying the shelf is a valid update).
type StockUpdateRequest struct {
	Stock *float64 `json:"stock" binding:"required"`
}
