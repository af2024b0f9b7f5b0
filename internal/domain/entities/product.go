package entities

// UnitType describes how a product's stock is counted.
//
// Domain notes:
//   - "unit" products are sold in whole pieces; stock is integral.
//   - "bulk" products are sold by weight/volume; stock may be fractional
//     (e.g. 1.25 kg) and is displayed with the product's unit measure.

type UnitType string

const (
	UnitTypeUnit UnitType = "unit"
	UnitTypeBulk UnitType = "bulk"
)

// Valid reports whether the unit type is one of the closed set.
func (u UnitType) Valid() bool {
	return u == UnitTypeUnit || u == UnitTypeBulk
}

// Product is a catalog entry owned by the catalog provider.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - CostPrice and SalePrice are non-negative amounts kept at full
//     precision; rounding happens only at the presentation layer.
//
// Stock is the authoritative available quantity. It is never negative at
// rest; the stock validator gates any decrement that would make it so.

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	CostPrice   float64  `json:"cost_price"`
	SalePrice   float64  `json:"sale_price"`
	Stock       float64  `json:"stock"`
	MinStock    float64  `json:"min_stock"`
	UnitType    UnitType `json:"unit_type"`
	UnitMeasure string   `json:"unit_measure"`
}

// LowStock reports whether the product is at or below its restock threshold.
func (p Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
