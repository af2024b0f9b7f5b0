package interfaces

import (
	"context"

	"pdv_xpto/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.
//
// The catalog provider must be able to:
//   - list the catalog for the storefront and reports
//   - read a single product (live stock) right before checkout
//   - write back an absolute stock value after a sale or manual adjustment
//
// GetByID returns a zero-ID product when nothing is stored under id.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	UpdateStock(ctx context.Context, id string, newStock float64) (entities.Product, error)
}
