package interfaces

import (
	"context"
	"time"

	"pdv_xpto/internal/domain/entities"
)

// StockDecrement is one product quantity to subtract inside the atomic
// commit path.

type StockDecrement struct {
	ProductID string
	Quantity  float64
}

// ISaleRepository abstracts DynamoDB persistence for Sale and SaleItem.
//
// The sale committer must be able to:
//   - allocate a unique, creation-ordered sale number from the store's
//     counter facility
//   - persist the sale header, then its items (the sequential path inherits
//     the store's lack of multi-statement transactions)
//   - optionally apply header + items + stock decrements in one atomic
//     multi-row write (the hardened path)
//
// The reporting aggregator reads sales and items by creation date range.

type ISaleRepository interface {
	NextSaleNumber(ctx context.Context) (string, error)
	InsertSale(ctx context.Context, s entities.Sale) (entities.Sale, error)
	InsertSaleItems(ctx context.Context, items []entities.SaleItem) error
	CommitSaleAtomic(ctx context.Context, s entities.Sale, items []entities.SaleItem, decrements []StockDecrement) error
	ListByPeriod(ctx context.Context, start, end time.Time) ([]entities.Sale, error)
	ListItemsByPeriod(ctx context.Context, start, end time.Time) ([]entities.SaleItem, error)
}
